package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sfutils/internal/app"
	"sfutils/internal/store"
)

var (
	home       string
	passphrase string
	keyPool    string
	appVersion string
	channel    string
	device     string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sfutils",
		Short: "CLI for the boluobao novel platform API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sfutils")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg := app.Config{
				Home:        home,
				KeyPool:     keyPool,
				DeviceToken: device,
				AppVersion:  appVersion,
				Channel:     channel,
			}

			// Adopt the stored credential record when one can be opened.
			if passphrase != "" {
				creds, ok, err := store.NewCredentialStore(home).Load(passphrase)
				if err == nil && ok {
					cfg.Token = creds.Token
					cfg.Session = creds.Session
					if cfg.DeviceToken == "" {
						cfg.DeviceToken = creds.DeviceToken
					}
					if cfg.AppVersion == "" {
						cfg.AppVersion = creds.AppVersion
					}
					if cfg.Channel == "" {
						cfg.Channel = creds.Channel
					}
				}
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.sfutils)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored credentials")
	root.PersistentFlags().StringVar(&keyPool, "keys", "", "YAML signing-key pool file")
	root.PersistentFlags().StringVar(&appVersion, "app-version", "", "app version to sign as")
	root.PersistentFlags().StringVar(&channel, "channel", "", "app login channel")
	root.PersistentFlags().StringVar(&device, "device", "", "device token (UUID)")

	root.AddCommand(authCmd(), whoamiCmd(), novelCmd(), chapterCmd(), signInfoCmd())
	return root.Execute()
}

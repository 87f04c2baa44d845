package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sfutils/internal/session"
)

func authCmd() *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication state",
	}
	auth.AddCommand(loginCmd(), logoutCmd(), statusCmd())
	return auth
}

func loginCmd() *cobra.Command {
	var account, password, token, sessionToken string
	var force bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with boluobao",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Session.Login(cmd.Context(), session.LoginOptions{
				Account:  account,
				Password: password,
				Token:    token,
				Session:  sessionToken,
				Force:    force,
			}); err != nil {
				return err
			}
			if !wire.Session.LoggedIn() {
				return errors.New("login failed: credentials were not accepted")
			}
			if passphrase != "" {
				if err := wire.Credentials.Save(passphrase, wire.Session.Credentials()); err != nil {
					return fmt.Errorf("saving credentials: %w", err)
				}
			}
			fmt.Printf("Logged in. Device %s\n", wire.Session.DeviceToken())
			return nil
		},
	}

	cmd.Flags().StringVarP(&account, "account", "u", "", "account name")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&token, "token", "", "cookie .SFCommunity")
	cmd.Flags().StringVar(&sessionToken, "session", "", "cookie session_APP")
	cmd.Flags().BoolVar(&force, "force", false, "log out first if already logged in")
	return cmd
}

func logoutCmd() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Drop the logged-in state",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Session.Logout()
			if forget {
				if err := wire.Credentials.Clear(); err != nil {
					return err
				}
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "also remove stored credentials")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session identity and login state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := wire.Session
			fmt.Printf("device:     %s\n", s.DeviceToken())
			fmt.Printf("appversion: %s\n", s.AppVersion())
			fmt.Printf("channel:    %s\n", s.Channel())
			fmt.Printf("logged in:  %v\n", s.LoggedIn())
			return nil
		},
	}
}

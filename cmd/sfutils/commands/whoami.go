package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, ok, err := wire.Session.Me(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("not logged in")
			}
			fmt.Printf("%s (account %d)\n", profile.NickName, profile.AccountID)
			if profile.UserName != "" {
				fmt.Printf("user:      %s\n", profile.UserName)
			}
			fmt.Printf("firemoney: %d\n", profile.FireMoney)
			return nil
		},
	}
}

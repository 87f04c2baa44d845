package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func signInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signinfo",
		Short: "Show the current user's sign-in record",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := wire.API.SignInfo(cmd.Context())
			if err != nil {
				return err
			}
			if !env.OK() {
				return fmt.Errorf("signinfo: %s", env.Status.Msg)
			}
			fmt.Println(string(env.Data))
			return nil
		},
	}
}

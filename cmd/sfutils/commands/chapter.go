package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func chapterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapter <id>",
		Short: "Fetch one chapter, content included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("chapter id must be an integer: %q", args[0])
			}

			env, err := wire.API.Chapter(cmd.Context(), id, []string{"content"}, false)
			if err != nil {
				return err
			}
			if !env.OK() {
				return fmt.Errorf("chapter %d: %s", id, env.Status.Msg)
			}

			var data struct {
				Title  string `json:"title"`
				Expand struct {
					Content string `json:"content"`
				} `json:"expand"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				return err
			}
			fmt.Println(data.Title)
			fmt.Println()
			fmt.Println(data.Expand.Content)
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sfutils/internal/novel"
)

func novelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "novel <id>",
		Short: "Show a novel's info and volumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("novel id must be an integer: %q", args[0])
			}

			n, ok, err := novel.Lookup(cmd.Context(), wire.API, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("novel %d not found", id)
			}

			info, ok, err := n.Info(cmd.Context())
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("%s by %s\n", info.NovelName, info.AuthorName)
				fmt.Printf("chapters: %d  chars: %d  finished: %v\n",
					info.ChapterCount, info.CharCount, info.IsFinish)
			}

			vols, err := n.Volumes(cmd.Context())
			if err != nil {
				return err
			}
			for i, v := range vols {
				fmt.Printf("%3d  %-8d %s (%d chapters, %d chars)\n",
					i, v.VolumeID, v.Title, v.ChapterCount, v.CharCount)
			}
			return nil
		},
	}
}

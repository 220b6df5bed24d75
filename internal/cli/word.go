package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/royalsquare/internal/api/response"
)

func newWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Word commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <id> <word>",
		Short: "Check a word against the dictionary and the game's used words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordCheck

			if err := client.Get(cmd.Context(), gamePath(args[0], "words", url.PathEscape(args[1])), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}

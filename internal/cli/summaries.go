package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/royalsquare/internal/api/response"
)

func newSummariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summaries",
		Short: "List completed games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.GameSummary

			if err := client.Get(cmd.Context(), "/api/v1/summaries", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

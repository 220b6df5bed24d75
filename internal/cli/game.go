package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/royalsquare/internal/api/response"
)

func gamePath(id string, parts ...string) string {
	path := "/api/v1/games/" + url.PathEscape(id)
	for _, p := range parts {
		path += "/" + p
	}
	return path
}

func parseCell(rowArg, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col: %w", err)
	}
	return row, col, nil
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameSelectCmd())
	cmd.AddCommand(newGameMoveCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Post(cmd.Context(), "/api/v1/games", nil, &result); err != nil {
				return err
			}
			if start {
				if err := client.Post(cmd.Context(), gamePath(result.ID, "new"), nil, &result); err != nil {
					return err
				}
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&start, "start", false, "Start the game immediately")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Get(cmd.Context(), gamePath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <id>",
		Short: "Start the game, or restart it with an empty board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(args[0], "new"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), gamePath(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}

func newGameSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> <row> <col>",
		Short: "Select the starting cell for the next word",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCell(args[1], args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"row": row, "col": col}
			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(args[0], "select"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <word> <direction> [row col]",
		Short: "Play a word for the current player",
		Long: `Play a word for the current player.

Direction is horizontal (h) or vertical (v). The word starts at row, col
when given, otherwise at the selected cell.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 && len(args) != 5 {
				return fmt.Errorf("accepts 3 or 5 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"word": args[1], "direction": args[2]}
			if len(args) == 5 {
				row, col, err := parseCell(args[3], args[4])
				if err != nil {
					return err
				}
				req["row"] = row
				req["col"] = col
			}

			var result response.Move

			if err := client.Post(cmd.Context(), gamePath(args[0], "moves"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/fairychess/internal/api/request"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameTouchCmd())
	cmd.AddCommand(newGameReadyCmd())
	cmd.AddCommand(newGameRestartCmd())
	cmd.AddCommand(newGameSwitchCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var (
		name     string
		mode     string
		ai       bool
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{
				Name:     name,
				Mode:     mode,
				Strategy: strategy,
			}
			if cmd.Flags().Changed("ai") {
				req.AI = &ai
			}

			result, err := client.CreateGame(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (generated when empty)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: chess, checkers, fantasy-small, fantasy-large")
	cmd.Flags().BoolVar(&ai, "ai", true, "Play against the computer as black")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Computer strategy: minimax, random")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hosted games",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <id> <x> <y>",
		Short: "Click a square: select a piece or play a highlighted move",
		Long: `Click the square at column x and row y. Row 0 is black's home row.

Clicking a piece of the side to move selects it and highlights its moves;
clicking a highlighted square plays the move. Rows below 0 and from the
board size upward address the capture pools.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y: %w", err)
			}

			result, err := client.Touch(cmd.Context(), args[0], x, y)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready <id>",
		Short: "Let the computer play its move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Ready(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <id>",
		Short: "Start over in the current mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Restart(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameSwitchCmd() *cobra.Command {
	var (
		mode string
		ai   bool
	)

	cmd := &cobra.Command{
		Use:   "switch <id>",
		Short: "Start a new game with another mode or opponent",
		Long: `Switch the game to a mode and opponent setting. The current board is
kept when both already match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.NewGameRequest{Mode: mode}
			if cmd.Flags().Changed("ai") {
				req.AI = &ai
			}

			result, err := client.NewGame(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Game mode (fantasy-small when empty)")
	cmd.Flags().BoolVar(&ai, "ai", true, "Play against the computer as black")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.DeleteGame(cmd.Context(), id); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted game %s", id))
			return nil
		},
	}
}

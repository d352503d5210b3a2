package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/fairychess/internal/api/response"
	"github.com/mcoot/fairychess/internal/dependencies/random"
	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
	"github.com/mcoot/fairychess/internal/session"
)

const playHelp = `Commands:
  <x> <y>        click a square (row 0 is black's home row)
  moves          list the legal moves of the side to move
  mode <name>    start a new game in another mode
  ai on|off      start a new game with or without the computer
  restart        start over in the current mode
  quit           leave`

func newPlayCmd() *cobra.Command {
	var (
		mode     string
		ai       bool
		depth    int
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game in the terminal",
		Long: `Play a game against the computer, or both sides yourself, without a server.

` + playHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := rules.ParseMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q", mode)
			}
			strat, ok := search.Strategies(depth, random.New())[strategy]
			if !ok {
				return fmt.Errorf("unknown strategy %q", strategy)
			}

			logger := newLogger(cmd.ErrOrStderr())
			sess := session.New(session.Config{Mode: m, AI: ai, Depth: depth}, strat, logger)
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", rules.DefaultMode.String(), "Game mode: chess, checkers, fantasy-small, fantasy-large")
	cmd.Flags().BoolVar(&ai, "ai", true, "Let the computer play black")
	cmd.Flags().IntVar(&depth, "depth", search.DefaultDepth, "Minimax search depth")
	cmd.Flags().StringVar(&strategy, "strategy", search.StrategyMinimax, "Computer strategy: minimax, random")

	return cmd
}

// runPlay reads commands from in until quit or end of input
func runPlay(in io.Reader, out io.Writer, sess *session.Session) error {
	printPlayBoard(out, sess)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(out, playHelp)
		case "moves":
			printMoves(out, sess)
		case "restart":
			sess.Restart()
			printPlayBoard(out, sess)
		case "mode":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: mode <name>")
				continue
			}
			m, ok := rules.ParseMode(fields[1])
			if !ok {
				fmt.Fprintf(out, "unknown mode %q\n", fields[1])
				continue
			}
			sess.StartNewGame(m, sess.AI())
			printPlayBoard(out, sess)
		case "ai":
			if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
				fmt.Fprintln(out, "usage: ai on|off")
				continue
			}
			sess.StartNewGame(sess.Mode(), fields[1] == "on")
			printPlayBoard(out, sess)
		default:
			x, y, err := parseSquare(fields)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if sess.Touch(x, y) && sess.AwaitingAI() {
				if m, ok := sess.Ready(); ok {
					fmt.Fprintf(out, "Computer played %s\n", m)
				}
			}
			printPlayBoard(out, sess)
		}
	}
}

func parseSquare(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected <x> <y>, try help")
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q", fields[1])
	}
	return x, y, nil
}

func printPlayBoard(out io.Writer, sess *session.Session) {
	fmt.Fprint(out, RenderBoard(response.BoardFromSnapshot(sess.Snapshot(), "")))
}

func printMoves(out io.Writer, sess *session.Session) {
	b := sess.Board()
	moves := search.LegalMoves(b, b.Turn())
	if len(moves) == 0 {
		fmt.Fprintln(out, "No legal moves")
		return
	}
	seen := make(map[string]bool, len(moves))
	for _, m := range moves {
		s := m.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		fmt.Fprintln(out, s)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg != nil && cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
)

// BenchPly is one searched move of a self-play run
type BenchPly struct {
	Ply      int           `json:"ply"`
	Side     string        `json:"side"`
	Move     string        `json:"move"`
	Score    int           `json:"score"`
	Legal    int           `json:"legal"`
	Duration time.Duration `json:"duration_ns"`
}

// BenchResult summarises a self-play run
type BenchResult struct {
	Mode  string        `json:"mode"`
	Depth int           `json:"depth"`
	Plies []BenchPly    `json:"plies"`
	State string        `json:"state"`
	Total time.Duration `json:"total_ns"`
}

func newSearchCmd() *cobra.Command {
	var (
		mode  string
		depth int
		plies int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Time the minimax search by letting it play itself",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := rules.ParseMode(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q", mode)
			}
			if depth < 1 {
				return fmt.Errorf("depth must be at least 1")
			}

			result := runBench(m, depth, plies)

			if cfg.Output == "json" {
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
				return nil
			}
			printBench(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", rules.ModeChess.String(), "Game mode")
	cmd.Flags().IntVar(&depth, "depth", search.DefaultDepth, "Search depth")
	cmd.Flags().IntVar(&plies, "plies", 4, "Number of plies to play")

	return cmd
}

// runBench plays up to plies moves from the starting position of mode,
// stopping early when the side to move has none
func runBench(mode rules.Mode, depth, plies int) BenchResult {
	b := rules.NewGame(mode, false)
	result := BenchResult{Mode: mode.String(), Depth: depth}

	start := time.Now()
	for i := 0; i < plies; i++ {
		side := b.Turn()
		b.Warm()
		legal := len(search.LegalMoves(b, side))

		t := time.Now()
		m, ok := search.SelectMove(b, side, depth)
		took := time.Since(t)
		if !ok {
			break
		}

		b.Apply(m)
		b.NextTurn()
		b.RefreshCheck()
		result.Plies = append(result.Plies, BenchPly{
			Ply:      i + 1,
			Side:     side.String(),
			Move:     m.String(),
			Score:    m.Score,
			Legal:    legal,
			Duration: took,
		})
	}
	result.Total = time.Since(start)
	result.State = b.State().String()
	return result
}

func printBench(w io.Writer, r BenchResult) {
	fmt.Fprintf(w, "%s at depth %d\n", r.Mode, r.Depth)
	for _, p := range r.Plies {
		fmt.Fprintf(w, "%3d. %-5s %-20s score=%-6d legal=%-3d %s\n",
			p.Ply, p.Side, p.Move, p.Score, p.Legal, p.Duration.Round(time.Microsecond))
	}
	fmt.Fprintf(w, "state: %s, total %s\n", r.State, r.Total.Round(time.Millisecond))
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/geom"
)

func kindOf(templates ...Template) *PieceKind {
	return &PieceKind{Type: "X", Value: 100, Templates: templates}
}

func blocker() *PieceKind {
	return &PieceKind{Type: "D", Value: 100}
}

func destinations(moves []PlayerMove) []geom.Point {
	out := make([]geom.Point, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Destination())
	}
	return out
}

func moveTo(t *testing.T, moves []PlayerMove, dest geom.Point) PlayerMove {
	t.Helper()
	m, ok := FindByDestination(moves, dest)
	require.True(t, ok, "no move to %s in %v", dest, moves)
	return m
}

// play applies the first check-safe move from -> to and passes the turn
func play(t *testing.T, b *Board, from, to geom.Point) PlayerMove {
	t.Helper()
	pc := b.At(from)
	require.NotNil(t, pc, "no piece on %s", from)
	m := moveTo(t, pc.Moves(true), to)
	b.Apply(m)
	b.NextTurn()
	return m
}

func occupancy(b *Board) map[geom.Point]string {
	out := make(map[geom.Point]string)
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if pc := b.At(geom.Pt(x, y)); pc != nil {
				out[geom.Pt(x, y)] = pc.Side().Code() + pc.Type()
			}
		}
	}
	return out
}

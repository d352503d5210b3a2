package rules

import (
	"fmt"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/geom"
)

// Orthodox chess mode is checked against two independent move generators.
// Castling and under-promotion do not exist here, so the sequences avoid them.

func algebraic(p geom.Point) string {
	return fmt.Sprintf("%c%d", 'a'+p.X, 8-p.Y)
}

func fromAlgebraic(sq string) geom.Point {
	return geom.Pt(int(sq[0]-'a'), 8-int(sq[1]-'0'))
}

func engineMoveSet(b *Board) map[string]bool {
	set := make(map[string]bool)
	for _, pc := range b.Pieces(b.Turn()) {
		for _, m := range pc.Moves(true) {
			set[algebraic(m.Origin())+algebraic(m.Destination())] = true
		}
	}
	return set
}

func notnilMoveSet(g *chess.Game) map[string]bool {
	set := make(map[string]bool)
	for _, m := range g.ValidMoves() {
		set[m.S1().String()+m.S2().String()] = true
	}
	return set
}

func dragontoothMoveSet(fen string) (map[string]bool, bool) {
	board := dragontoothmg.ParseFen(fen)
	set := make(map[string]bool)
	for _, m := range board.GenerateLegalMoves() {
		set[m.String()[:4]] = true
	}
	return set, board.OurKingInCheck()
}

func replay(t *testing.T, moves []string) (*Board, *chess.Game) {
	t.Helper()
	b := NewGame(ModeChess, false)
	g := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	for _, uci := range moves {
		require.NoError(t, g.MoveStr(uci), "reference rejected %s", uci)
		play(t, b, fromAlgebraic(uci[:2]), fromAlgebraic(uci[2:4]))
	}
	return b, g
}

func TestChessParity(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"start", nil},
		{"king pawn", []string{"e2e4"}},
		{"open game", []string{"e2e4", "e7e5"}},
		{"pawn capture", []string{"e2e4", "d7d5", "e4d5"}},
		{"en passant available", []string{"e2e4", "a7a6", "e4e5", "d7d5"}},
		{"en passant taken", []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"}},
		{"minor pieces out", []string{"g1f3", "b8c6", "b1c3", "g8f6", "d2d4", "e7e6"}},
		{"queen check", []string{"e2e4", "f7f6", "d1h5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, g := replay(t, tt.moves)
			fen := g.Position().String()

			ours := engineMoveSet(b)
			assert.Equal(t, notnilMoveSet(g), ours)

			reference, inCheck := dragontoothMoveSet(fen)
			assert.Equal(t, reference, ours)
			assert.Equal(t, inCheck, b.InCheck(b.Turn()))
		})
	}
}

func TestChessStartHasTwentyMoves(t *testing.T) {
	b := NewGame(ModeChess, false)

	assert.Len(t, engineMoveSet(b), 20)
}

func TestChessCheckmateParity(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
	}{
		{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{"scholar's mate", []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, g := replay(t, tt.moves)

			assert.Equal(t, chess.Checkmate, g.Method())
			reference, inCheck := dragontoothMoveSet(g.Position().String())
			assert.Empty(t, reference)
			assert.True(t, inCheck)

			assert.Empty(t, engineMoveSet(b))
			assert.Equal(t, StateCheckmate, b.State())
		})
	}
}

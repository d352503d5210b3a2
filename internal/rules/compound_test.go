package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/geom"
)

func TestTwoLegExtendsEveryFirstLeg(t *testing.T) {
	b := NewBoard(8)
	gryphon := b.Place(gryphonKind(8, 900), White, geom.Pt(3, 3))

	moves := gryphon.Moves(false)

	// four diagonal steps, each followed by fourteen rook moves
	assert.Len(t, moves, 60)
	single, merged := 0, 0
	for _, m := range moves {
		switch len(m.Legs) {
		case 1:
			single++
		case 2:
			merged++
			assert.Equal(t, m.Legs[0].To, m.Legs[1].From)
			assert.Nil(t, m.Ghost)
		}
	}
	assert.Equal(t, 4, single)
	assert.Equal(t, 56, merged)
}

func TestTwoLegWithoutMultiKillStopsAfterCapture(t *testing.T) {
	b := NewBoard(8)
	gryphon := b.Place(gryphonKind(8, 900), White, geom.Pt(3, 3))
	b.Place(blocker(), Black, geom.Pt(4, 4))
	b.Place(blocker(), Black, geom.Pt(2, 6))

	moves := gryphon.Moves(false)

	capture := moveTo(t, moves, geom.Pt(4, 4))
	assert.Equal(t, []geom.Point{{X: 4, Y: 4}}, capture.Captures)
	for _, m := range moves {
		if len(m.Legs) > 1 {
			assert.NotEqual(t, geom.Pt(4, 4), m.Legs[0].To, "capturing first leg was extended: %s", m)
		}
	}

	var secondLegCapture bool
	for _, m := range moves {
		if len(m.Legs) == 2 && m.CapturesSquare(geom.Pt(2, 6)) {
			secondLegCapture = true
			assert.Equal(t, geom.Pt(2, 6), m.Final())
		}
	}
	assert.True(t, secondLegCapture)
}

func checkersChainBoard() (*Board, *Piece) {
	b := NewBoard(8)
	b.mode = ModeCheckers
	man := b.Place(checkerKind(White), White, geom.Pt(1, 6))
	b.Place(checkerKind(Black), Black, geom.Pt(2, 5))
	b.Place(checkerKind(Black), Black, geom.Pt(4, 3))
	return b, man
}

func TestChainProducesMultiLegCaptures(t *testing.T) {
	_, man := checkersChainBoard()

	moves := man.Moves(true)

	require.Len(t, moves, 3)
	assert.Equal(t, []Leg{{From: geom.Pt(1, 6), To: geom.Pt(3, 4)}}, moves[0].Legs)
	assert.Equal(t, []geom.Point{{X: 2, Y: 5}}, moves[0].Captures)

	double := moves[1]
	assert.Equal(t, []Leg{
		{From: geom.Pt(1, 6), To: geom.Pt(3, 4)},
		{From: geom.Pt(3, 4), To: geom.Pt(5, 2)},
	}, double.Legs)
	assert.Equal(t, []geom.Point{{X: 2, Y: 5}, {X: 4, Y: 3}}, double.Captures)

	assert.Equal(t, geom.Pt(0, 5), moves[2].Destination())
	assert.False(t, moves[2].HasCaptures())
}

func TestChainMoveAppliesEveryLeg(t *testing.T) {
	b, man := checkersChainBoard()
	double := man.Moves(true)[1]

	b.Apply(double)

	assert.Nil(t, b.At(geom.Pt(2, 5)))
	assert.Nil(t, b.At(geom.Pt(4, 3)))
	assert.Nil(t, b.At(geom.Pt(1, 6)))
	assert.Same(t, man, b.At(geom.Pt(5, 2)))
	assert.Len(t, b.Captured(White), 2)
	assert.Same(t, man, b.LastMoved())
}

func TestChainIsEmptyWithoutACapture(t *testing.T) {
	b := NewBoard(8)
	man := b.Place(checkerKind(White), White, geom.Pt(1, 6))

	assert.Equal(t, []geom.Point{{X: 2, Y: 5}, {X: 0, Y: 5}}, destinations(man.Moves(false)))
}

func TestClickMatchesFirstLegOnly(t *testing.T) {
	b, _ := checkersChainBoard()

	b.Touch(1, 6)
	require.Len(t, b.LegalMoves(), 3)
	assert.True(t, b.Touch(3, 4))

	// the single jump is listed first and wins the click
	assert.NotNil(t, b.At(geom.Pt(4, 3)))
	assert.NotNil(t, b.At(geom.Pt(3, 4)))
	assert.Len(t, b.Captured(White), 1)
}

func generateAll(templates []Template, pc *Piece, b *Board, reverse bool) []PlayerMove {
	var out []PlayerMove
	for _, t := range templates {
		out = append(out, t.generate(pc, b, make(squareSet), reverse)...)
	}
	return out
}

func TestMimicCopiesTheLastMove(t *testing.T) {
	b := NewGame(ModeFantasySmall, false)
	blackJoker := b.At(geom.Pt(1, 0))
	require.Equal(t, "J", blackJoker.Type())
	assert.Empty(t, blackJoker.Moves(true))
	assert.True(t, blackJoker.Valid())

	champion := b.At(geom.Pt(2, 7))
	require.Equal(t, "C", champion.Type())
	play(t, b, geom.Pt(2, 7), geom.Pt(2, 5))

	assert.False(t, blackJoker.Valid())
	moves := blackJoker.Moves(false)
	assert.ElementsMatch(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 2}}, destinations(moves))

	expected := generateAll(championKind().Templates, blackJoker, b, true)
	assert.ElementsMatch(t, destinations(expected), destinations(moves))
}

func TestMimicMovesAreNotCopyable(t *testing.T) {
	b := NewGame(ModeFantasySmall, false)
	play(t, b, geom.Pt(2, 7), geom.Pt(2, 5))
	play(t, b, geom.Pt(1, 0), geom.Pt(1, 2))

	require.NotNil(t, b.lastCopyable)
	assert.Equal(t, White, b.lastCopyable.side)
	assert.Equal(t, "J", b.LastMoved().Type())

	whiteJoker := b.At(geom.Pt(1, 7))
	moves := whiteJoker.Moves(false)
	assert.ElementsMatch(t, []geom.Point{{X: 2, Y: 7}, {X: 1, Y: 5}, {X: 3, Y: 5}}, destinations(moves))
	assert.ElementsMatch(t,
		destinations(generateAll(championKind().Templates, whiteJoker, b, false)),
		destinations(moves))
}

func TestMimicDependsOnEnemySquares(t *testing.T) {
	b := NewGame(ModeFantasySmall, false)
	play(t, b, geom.Pt(2, 7), geom.Pt(2, 5))

	blackJoker := b.At(geom.Pt(1, 0))
	blackJoker.Moves(false)

	for _, enemy := range b.Pieces(White) {
		assert.Contains(t, blackJoker.Dependencies(), enemy.Pos())
	}
}

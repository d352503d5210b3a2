package rules

import (
	"fmt"
	"strings"

	"github.com/mcoot/fairychess/internal/geom"
)

// PieceView is a read-only description of a piece for renderers
type PieceView struct {
	Square geom.Point
	Type   string
	Side   Side
	Value  int
	Key    string
	Royal  bool
}

// Highlight is a legal destination of the selected piece
type Highlight struct {
	Square    geom.Point
	TestGroup int
}

// Snapshot is everything a renderer needs to draw the board. Captured pieces
// carry their pool square.
type Snapshot struct {
	Size       int
	Mode       Mode
	Turn       Side
	State      GameState
	AI         bool
	Pieces     []PieceView
	Captured   [2][]PieceView
	Selected   *PieceView
	LastMoved  *PieceView
	Highlights []Highlight
	Checks     []PieceView
}

func viewOf(pc *Piece, sq geom.Point) PieceView {
	return PieceView{
		Square: sq,
		Type:   pc.typ,
		Side:   pc.side,
		Value:  pc.value,
		Key:    pc.Key(),
		Royal:  pc.royal,
	}
}

func (b *Board) viewPtr(pc *Piece) *PieceView {
	if pc == nil {
		return nil
	}
	v := viewOf(pc, b.squareOf(pc))
	return &v
}

// squareOf is the on-board square, or the pool square for captured pieces
func (b *Board) squareOf(pc *Piece) geom.Point {
	if !pc.captured {
		return pc.pos
	}
	by := pc.side.Opposite()
	for i, c := range b.captured[by] {
		if c == pc {
			return b.PoolSquare(by, i)
		}
	}
	return pc.pos
}

// Snapshot captures the current state for rendering
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Size:      b.size,
		Mode:      b.mode,
		Turn:      b.turn,
		State:     b.State(),
		AI:        b.aiEnabled,
		Selected:  b.viewPtr(b.selected),
		LastMoved: b.viewPtr(b.lastMoved),
	}
	for _, side := range bothSides() {
		s.Pieces = append(s.Pieces, b.piecesView(side)...)
		for i, pc := range b.captured[side] {
			s.Captured[side] = append(s.Captured[side], viewOf(pc, b.PoolSquare(side, i)))
		}
	}
	for _, m := range b.legal {
		s.Highlights = append(s.Highlights, Highlight{Square: m.Destination(), TestGroup: m.TestGroup})
	}
	for _, pc := range b.checks {
		s.Checks = append(s.Checks, viewOf(pc, pc.pos))
	}
	return s
}

func (b *Board) piecesView(side Side) []PieceView {
	pieces := b.Pieces(side)
	out := make([]PieceView, 0, len(pieces))
	for _, pc := range pieces {
		out = append(out, viewOf(pc, pc.pos))
	}
	return out
}

// String dumps the grid row by row, e.g. "WP" for a white pawn and "--" for
// an empty square
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		cells := make([]string, b.size)
		for x := 0; x < b.size; x++ {
			cells[x] = "--"
			if pc := b.At(geom.Pt(x, y)); pc != nil {
				cells[x] = pc.side.Code() + pc.typ
			}
		}
		fmt.Fprintln(&sb, strings.Join(cells, " "))
	}
	return sb.String()
}

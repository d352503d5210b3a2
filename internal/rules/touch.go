package rules

import "github.com/mcoot/fairychess/internal/geom"

// PoolSquare is where the n-th piece captured by side is shown. Pieces taken
// by White are laid out below the board, pieces taken by Black above it.
func (b *Board) PoolSquare(by Side, n int) geom.Point {
	if by == White {
		return geom.Pt(n%b.size, b.size+n/b.size)
	}
	return geom.Pt(n%b.size, -1-n/b.size)
}

// PoolIndex maps a square outside the board rows back to a capture pool slot
func (b *Board) PoolIndex(p geom.Point) (Side, int, bool) {
	if p.X < 0 || p.X >= b.size {
		return White, 0, false
	}
	switch {
	case p.Y < 0:
		return Black, (-1-p.Y)*b.size + p.X, true
	case p.Y >= b.size:
		return White, (p.Y-b.size)*b.size + p.X, true
	}
	return White, 0, false
}

// Touch handles a click on a logical square and reports whether a move was
// played. Clicks that mean nothing are ignored.
func (b *Board) Touch(x, y int) bool {
	p := geom.Pt(x, y)

	if by, n, ok := b.PoolIndex(p); ok {
		if n < len(b.captured[by]) {
			b.selected = b.captured[by][n]
		}
		return false
	}

	b.selected = nil
	if b.aiEnabled && b.turn == Black {
		return false
	}
	if !b.OnBoard(p) {
		return false
	}

	if pc := b.At(p); pc != nil && pc.side == b.turn {
		b.selected = pc
		b.legal = pc.Moves(true)
		return false
	}

	m, ok := FindByDestination(b.legal, p)
	if !ok {
		return false
	}
	b.Apply(m)
	b.legal = nil
	b.NextTurn()
	b.RefreshCheck()
	return true
}

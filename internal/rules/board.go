package rules

import "github.com/mcoot/fairychess/internal/geom"

// copyableMove is what a mimic replays: the side that moved and the templates
// of the piece that made the move
type copyableMove struct {
	side      Side
	templates []Template
}

// Board is the authoritative game state. It is not safe for concurrent use.
type Board struct {
	size      int
	mode      Mode
	grid      []*Piece
	captured  [2][]*Piece
	graph     depGraph
	turn      Side
	aiEnabled bool

	selected *Piece
	legal    []PlayerMove
	checks   []*Piece

	lastMoved    *Piece
	lastCopyable *copyableMove
	ghost        *geom.Point
}

// NewBoard returns an empty size×size board with White to move
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		mode:  ModeCustom,
		grid:  make([]*Piece, size*size),
		graph: newDepGraph(size),
		turn:  White,
	}
}

func (b *Board) Size() int            { return b.size }
func (b *Board) Mode() Mode           { return b.mode }
func (b *Board) Turn() Side           { return b.turn }
func (b *Board) SetTurn(s Side)       { b.turn = s }
func (b *Board) AIEnabled() bool      { return b.aiEnabled }
func (b *Board) SetAIEnabled(on bool) { b.aiEnabled = on }
func (b *Board) LastMoved() *Piece    { return b.lastMoved }
func (b *Board) Selected() *Piece     { return b.selected }

// Ghost returns the square a piece passed through on the last move, if any
func (b *Board) Ghost() (geom.Point, bool) {
	if b.ghost == nil {
		return geom.Point{}, false
	}
	return *b.ghost, true
}

// Captured returns the pieces taken by the given side, in capture order
func (b *Board) Captured(by Side) []*Piece {
	return b.captured[by]
}

// LegalMoves returns the moves highlighted for the selected piece
func (b *Board) LegalMoves() []PlayerMove {
	return b.legal
}

// CheckPieces returns the royal pieces in check and their attackers as of the
// last RefreshCheck
func (b *Board) CheckPieces() []*Piece {
	return b.checks
}

func (b *Board) OnBoard(p geom.Point) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// At returns the piece on p, or nil for empty and off-board squares
func (b *Board) At(p geom.Point) *Piece {
	if !b.OnBoard(p) {
		return nil
	}
	return b.grid[p.Y*b.size+p.X]
}

// Pieces lists the side's pieces column by column, top to bottom
func (b *Board) Pieces(side Side) []*Piece {
	var out []*Piece
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if pc := b.grid[y*b.size+x]; pc != nil && pc.side == side {
				out = append(out, pc)
			}
		}
	}
	return out
}

// Place puts a new piece of the given kind on an empty square
func (b *Board) Place(kind *PieceKind, side Side, at geom.Point) *Piece {
	invariant(b.At(at) == nil, "place on occupied square %s", at)
	pc := newPiece(b, kind, side, at)
	b.set(at, pc)
	return pc
}

// set writes a square and invalidates everything that depended on it
func (b *Board) set(p geom.Point, pc *Piece) {
	b.grid[p.Y*b.size+p.X] = pc
	b.graph.notify(p)
}

func (b *Board) setGhost(g *geom.Point) {
	old := b.ghost
	b.ghost = nil
	if g != nil {
		sq := *g
		b.ghost = &sq
	}
	if old != nil && b.OnBoard(*old) {
		b.graph.notify(*old)
	}
	if b.ghost != nil && b.OnBoard(*b.ghost) {
		b.graph.notify(*b.ghost)
	}
}

// Apply performs a move: captures first, then each leg in order
func (b *Board) Apply(m PlayerMove) {
	if len(m.Legs) == 0 {
		return
	}
	mover := b.At(m.Origin())
	invariant(mover != nil, "move %s starts on an empty square", m)

	b.setGhost(m.Ghost)

	for _, sq := range m.Captures {
		victim := b.At(sq)
		if victim == nil {
			continue
		}
		b.set(sq, nil)
		b.graph.unsubscribe(victim, victim.deps)
		victim.deps = nil
		victim.valid = false
		victim.captured = true
		by := victim.side.Opposite()
		b.captured[by] = append(b.captured[by], victim)
	}

	for _, leg := range m.Legs {
		pc := b.At(leg.From)
		if pc == nil {
			continue
		}
		invariant(b.At(leg.To) == nil || leg.From == leg.To, "leg %s lands on an occupied square", leg.To)
		b.set(leg.From, nil)
		b.set(leg.To, pc)
		pc.applyMove(leg.To)
	}

	b.lastMoved = mover
	if mover != nil && !mover.mimics() {
		b.lastCopyable = &copyableMove{side: mover.side, templates: mover.templates}
		b.invalidateMimics()
	}
}

func (b *Board) invalidateMimics() {
	for _, pc := range b.grid {
		if pc != nil && pc.mimics() {
			pc.Invalidate(pc.version)
		}
	}
}

// NextTurn passes the move to the other side, skipping a side with no pieces
func (b *Board) NextTurn() {
	b.turn = b.turn.Opposite()
	if len(b.Pieces(b.turn)) == 0 {
		b.turn = b.turn.Opposite()
	}
}

// Warm fills every piece's move cache
func (b *Board) Warm() {
	for _, pc := range b.grid {
		if pc != nil {
			pc.Moves(false)
		}
	}
}

// Clone returns an independent deep copy. Valid caches are carried over and
// subscribed in the copy's own dependency graph. Selection state is not copied.
func (b *Board) Clone() *Board {
	c := &Board{
		size:         b.size,
		mode:         b.mode,
		grid:         make([]*Piece, len(b.grid)),
		graph:        newDepGraph(b.size),
		turn:         b.turn,
		aiEnabled:    b.aiEnabled,
		lastCopyable: b.lastCopyable,
	}
	if b.ghost != nil {
		g := *b.ghost
		c.ghost = &g
	}
	for i, pc := range b.grid {
		if pc == nil {
			continue
		}
		cp := pc.cloneOnto(c)
		c.grid[i] = cp
		if cp.valid {
			c.graph.subscribe(cp, cp.version, cp.deps)
		}
		if pc == b.lastMoved {
			c.lastMoved = cp
		}
	}
	for side := range b.captured {
		for _, pc := range b.captured[side] {
			cp := pc.cloneOnto(c)
			c.captured[side] = append(c.captured[side], cp)
			if pc == b.lastMoved {
				c.lastMoved = cp
			}
		}
	}
	return c
}

func (b *Board) leavesInCheck(m PlayerMove, side Side) bool {
	scratch := b.Clone()
	scratch.Apply(m)
	return scratch.InCheck(side)
}

// offBoard returns how far a coordinate lies outside [0, size)
func (b *Board) offBoard(v int) int {
	switch {
	case v < 0:
		return -v
	case v >= b.size:
		return v - b.size + 1
	}
	return 0
}

// bounce reflects p and dir off any edge the next step would cross
func (b *Board) bounce(p, dir geom.Point) (geom.Point, geom.Point) {
	if off := b.offBoard(p.X + dir.X); off != 0 {
		inside := abs(dir.X) - off
		p.X += sign(dir.X) * inside * 2
		dir.X = -dir.X
	}
	if off := b.offBoard(p.Y + dir.Y); off != 0 {
		inside := abs(dir.Y) - off
		p.Y += sign(dir.Y) * inside * 2
		dir.Y = -dir.Y
	}
	return p, dir
}

// stunned reports whether an enemy stunner stands orthogonally next to pc.
// All neighbours are recorded so a stunner arriving later invalidates the cache.
func (b *Board) stunned(pc *Piece, deps squareSet) bool {
	stunned := false
	for _, d := range geom.Orthogonal() {
		sq := pc.pos.Add(d)
		if !b.OnBoard(sq) {
			continue
		}
		deps.add(sq)
		if other := b.At(sq); other != nil && other.stunner && other.side != pc.side {
			stunned = true
		}
	}
	return stunned
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

package rules

import (
	"math"
	"strings"

	"github.com/mcoot/fairychess/internal/geom"
)

const (
	// RoyalBonus is added to the worth of royal pieces so that losing one
	// outweighs any material
	RoyalBonus = 1_000_000
	// NoPromotion is the promotion distance of a piece without a promotion rule
	NoPromotion = -1
)

// Promotion turns a piece into Into once it is within Rows of the far edge
type Promotion struct {
	Into *PieceKind
	Rows int
}

// PieceKind is the static description a piece is created from
type PieceKind struct {
	Type      string
	Value     int
	Templates []Template
	Royal     bool
	Stunner   bool
	Promotion *Promotion
}

// Piece is a piece on (or captured from) a board. It caches its raw moves and
// tracks the squares they were computed from.
type Piece struct {
	board *Board

	pos       geom.Point
	side      Side
	typ       string
	value     int
	templates []Template
	royal     bool
	stunner   bool
	promotion *Promotion
	moved     bool
	captured  bool

	cache   []PlayerMove
	valid   bool
	deps    squareSet
	version int

	promoBonus int
	promoKnown bool
}

func newPiece(b *Board, kind *PieceKind, side Side, pos geom.Point) *Piece {
	return &Piece{
		board:     b,
		pos:       pos,
		side:      side,
		typ:       kind.Type,
		value:     kind.Value,
		templates: kind.Templates,
		royal:     kind.Royal,
		stunner:   kind.Stunner,
		promotion: kind.Promotion,
	}
}

func (p *Piece) Pos() geom.Point        { return p.pos }
func (p *Piece) Side() Side             { return p.side }
func (p *Piece) Type() string           { return p.typ }
func (p *Piece) Value() int             { return p.value }
func (p *Piece) Royal() bool            { return p.royal }
func (p *Piece) Stunner() bool          { return p.stunner }
func (p *Piece) Moved() bool            { return p.moved }
func (p *Piece) Captured() bool         { return p.captured }
func (p *Piece) Templates() []Template  { return p.templates }
func (p *Piece) Promotion() *Promotion  { return p.promotion }

// Key identifies the piece's artwork, e.g. "wp" or "bpr"
func (p *Piece) Key() string {
	return strings.ToLower(p.side.Code() + p.typ)
}

func (p *Piece) mimics() bool {
	for _, t := range p.templates {
		if t.Kind == Mimic {
			return true
		}
	}
	return false
}

// Moves returns the piece's candidate moves. With checkSafe set, moves that
// would leave the piece's own side in check are dropped.
func (p *Piece) Moves(checkSafe bool) []PlayerMove {
	if !p.valid {
		p.rebuild()
	}
	if !checkSafe {
		return p.cache
	}
	// warm enemy caches here so every scratch clone inherits them
	for _, enemy := range p.board.Pieces(p.side.Opposite()) {
		enemy.Moves(false)
	}
	safe := make([]PlayerMove, 0, len(p.cache))
	for _, m := range p.cache {
		if !p.board.leavesInCheck(m, p.side) {
			safe = append(safe, m)
		}
	}
	return safe
}

func (p *Piece) rebuild() {
	b := p.board
	b.graph.unsubscribe(p, p.deps)

	deps := make(squareSet)
	var moves []PlayerMove
	if !p.captured {
		for _, t := range p.templates {
			moves = append(moves, t.generate(p, b, deps, false)...)
		}
	}

	p.version++
	p.cache = moves
	p.deps = deps
	p.valid = true
	if !p.captured {
		b.graph.subscribe(p, p.version, deps)
	}
}

// Invalidate marks the cache dirty if tag matches the current cache version.
// Stale tags from earlier rebuilds are ignored.
func (p *Piece) Invalidate(tag int) {
	invariant(tag <= p.version, "invalidate tag %d ahead of version %d", tag, p.version)
	if tag == p.version {
		p.valid = false
	}
}

// Valid reports whether the move cache is current
func (p *Piece) Valid() bool {
	return p.valid
}

// Dependencies returns the squares the current cache was computed from
func (p *Piece) Dependencies() []geom.Point {
	out := make([]geom.Point, 0, len(p.deps))
	for sq := range p.deps {
		out = append(out, sq)
	}
	return out
}

func (p *Piece) applyMove(to geom.Point) {
	p.pos = to
	p.moved = true
	p.Invalidate(p.version)
	p.promoKnown = false
	if p.promotion != nil && p.DistanceToPromotion() == 0 {
		p.promote()
	}
}

func (p *Piece) promote() {
	into := p.promotion.Into
	p.typ = into.Type
	p.value = into.Value
	p.templates = into.Templates
	p.promotion = into.Promotion
	p.promoKnown = false
	p.valid = false
}

// DistanceToPromotion counts the rows left before the piece promotes, or
// NoPromotion when it never does
func (p *Piece) DistanceToPromotion() int {
	if p.promotion == nil {
		return NoPromotion
	}
	if p.side.Forward().Y == 1 {
		return max(p.board.size-p.promotion.Rows-p.pos.Y, 0)
	}
	return max(p.pos.Y-p.promotion.Rows+1, 0)
}

// PromotionBonus is the value gained by promoting, halved for every row still
// to go
func (p *Piece) PromotionBonus() int {
	if !p.promoKnown {
		p.promoBonus = 0
		if d := p.DistanceToPromotion(); d != NoPromotion {
			gain := float64(p.promotion.Into.Value - p.value)
			p.promoBonus = int(gain / math.Pow(2, float64(d)))
		}
		p.promoKnown = true
	}
	return p.promoBonus
}

// Worth is the piece's contribution to a static evaluation
func (p *Piece) Worth() int {
	w := p.value + p.PromotionBonus()
	if p.royal {
		w += RoyalBonus
	}
	return w
}

// cloneOnto copies the piece for another board. A valid cache is carried over;
// the caller re-subscribes it.
func (p *Piece) cloneOnto(b *Board) *Piece {
	c := *p
	c.board = b
	if !c.valid {
		c.cache = nil
		c.deps = nil
	}
	return &c
}

package rules

import (
	"slices"

	"github.com/mcoot/fairychess/internal/geom"
)

// Kind selects how a template walks the board
type Kind uint8

const (
	// Slide moves along a ray until blocked; it may capture the blocker.
	Slide Kind = iota + 1
	// Hop ignores blockers: every square on the ray is a candidate landing.
	Hop
	// Leap passes over exactly one occupied square and lands just beyond it.
	Leap
	// Locust marks the first enemy on the ray as a victim and stops there.
	// It produces no landing on its own.
	Locust
	// Jump captures the first enemy on the ray and lands on the empty square
	// directly behind it.
	Jump
	// TwoLeg follows every move of its first part with its second part.
	TwoLeg
	// Chain repeats its step for as long as the step has moves.
	Chain
	// Mimic replays the templates of the last copyable move.
	Mimic
)

func (k Kind) String() string {
	switch k {
	case Slide:
		return "slide"
	case Hop:
		return "hop"
	case Leap:
		return "leap"
	case Locust:
		return "locust"
	case Jump:
		return "jump"
	case TwoLeg:
		return "two-leg"
	case Chain:
		return "chain"
	case Mimic:
		return "mimic"
	}
	return "unknown"
}

// CapturePolicy filters the moves a template emits
type CapturePolicy uint8

const (
	CaptureAny CapturePolicy = iota
	CaptureOnly
	MoveOnly
)

// Template is a declarative movement rule. Primitive kinds use the ray fields;
// compound kinds own their parts by value. Templates are immutable once a
// piece kind is built.
type Template struct {
	Kind       Kind
	Directions []geom.Point
	Distance   int
	Capture    CapturePolicy
	FirstOnly  bool
	Ghost      *geom.Point
	GhostEater bool
	Cleave     []geom.Point
	Bounce     bool

	Parts     []Template
	MultiKill bool
}

func newPrimitive(kind Kind, dirs []geom.Point, distance int) Template {
	return Template{Kind: kind, Directions: dirs, Distance: distance}
}

func NewSlide(dirs []geom.Point, distance int) Template {
	return newPrimitive(Slide, dirs, distance)
}

func NewHop(dirs []geom.Point, distance int) Template {
	return newPrimitive(Hop, dirs, distance)
}

func NewLeap(dirs []geom.Point, distance int) Template {
	return newPrimitive(Leap, dirs, distance)
}

func NewLocust(dirs []geom.Point, distance int) Template {
	return newPrimitive(Locust, dirs, distance)
}

func NewJump(dirs []geom.Point, distance int) Template {
	return newPrimitive(Jump, dirs, distance)
}

// NewTwoLeg builds a move whose second part starts where the first ended.
// Without multiKill a capturing first leg is not extended.
func NewTwoLeg(first, second Template, multiKill bool) Template {
	return Template{Kind: TwoLeg, Parts: []Template{first, second}, MultiKill: multiKill}
}

// NewChain repeats step from each landing square
func NewChain(step Template, multiKill bool) Template {
	return Template{Kind: Chain, Parts: []Template{step}, MultiKill: multiKill}
}

func NewMimic() Template {
	return Template{Kind: Mimic}
}

func (t Template) CaptureOnly() Template {
	t.Capture = CaptureOnly
	return t
}

func (t Template) MoveOnly() Template {
	t.Capture = MoveOnly
	return t
}

// FirstMoveOnly restricts the template to pieces that have not moved yet
func (t Template) FirstMoveOnly() Template {
	t.FirstOnly = true
	return t
}

// WithGhost attaches a ghost square at offset from the origin to every move
func (t Template) WithGhost(offset geom.Point) Template {
	t.Ghost = &offset
	return t
}

// EatsGhost lets the template capture the last mover through its ghost square
func (t Template) EatsGhost() Template {
	t.GhostEater = true
	return t
}

// WithCleave also captures enemies at these offsets around the landing square
func (t Template) WithCleave(offsets []geom.Point) Template {
	t.Cleave = offsets
	return t
}

// Bouncing reflects rays off the board edges
func (t Template) Bouncing() Template {
	t.Bounce = true
	return t
}

// generate evaluates the template for pc on b, recording every examined square
// in deps. reverse mirrors direction Y components.
func (t Template) generate(pc *Piece, b *Board, deps squareSet, reverse bool) []PlayerMove {
	switch t.Kind {
	case TwoLeg:
		return twoLegMoves(t.Parts[0], t.Parts[1], t.MultiKill, pc, b, deps, reverse)
	case Chain:
		return t.chainMoves(pc, b, deps, reverse)
	case Mimic:
		return mimicMoves(pc, b, deps)
	default:
		return t.primitiveMoves(pc, b, deps, reverse)
	}
}

func (t Template) primitiveMoves(pc *Piece, b *Board, deps squareSet, reverse bool) []PlayerMove {
	if b.stunned(pc, deps) {
		return nil
	}
	if t.FirstOnly && pc.moved {
		return nil
	}

	origin := pc.pos
	var ghost *geom.Point
	if t.Ghost != nil {
		offset := *t.Ghost
		if reverse {
			offset = offset.FlipY()
		}
		g := origin.Add(offset)
		ghost = &g
	}

	var moves []PlayerMove
	for _, dir := range t.Directions {
		if reverse {
			dir = dir.FlipY()
		}
		var leapt *Piece
		p := origin
	ray:
		for step := 1; step <= t.Distance; step++ {
			if t.Bounce {
				p, dir = b.bounce(p, dir)
			}
			p = p.Add(dir)
			if !b.OnBoard(p) {
				break
			}
			deps.add(p)

			other := b.At(p)
			if t.GhostEater && b.ghost != nil && p == *b.ghost {
				other = b.lastMoved
			}
			friendly := other != nil && other.side == pc.side

			switch t.Kind {
			case Slide:
				if friendly {
					break ray
				}
				moves = append(moves, t.newMove(pc, b, p, other, ghost, deps))
				if other != nil {
					break ray
				}
			case Hop:
				if friendly {
					continue
				}
				moves = append(moves, t.newMove(pc, b, p, other, ghost, deps))
			case Leap:
				if leapt != nil {
					if !friendly {
						moves = append(moves, t.newMove(pc, b, p, other, ghost, deps))
					}
					break ray
				}
				if other != nil {
					leapt = other
				}
			case Locust:
				if other != nil {
					break ray
				}
			case Jump:
				if leapt != nil {
					if other == nil {
						moves = append(moves, t.newMove(pc, b, p, leapt, ghost, deps))
					}
					break ray
				}
				if other == nil {
					continue
				}
				if friendly {
					break ray
				}
				leapt = other
			}
		}
	}
	return t.filterCaptures(moves)
}

func (t Template) newMove(pc *Piece, b *Board, to geom.Point, victim *Piece, ghost *geom.Point, deps squareSet) PlayerMove {
	m := PlayerMove{
		Legs:      []Leg{{From: pc.pos, To: to}},
		Ghost:     ghost,
		TestGroup: NoTestGroup,
	}
	if victim != nil {
		m.Captures = append(m.Captures, victim.pos)
	}
	for _, offset := range t.Cleave {
		sq := to.Add(offset)
		if !b.OnBoard(sq) {
			continue
		}
		deps.add(sq)
		if other := b.At(sq); other != nil && other.side != pc.side {
			m.addCapture(sq)
		}
	}
	return m
}

func (t Template) filterCaptures(moves []PlayerMove) []PlayerMove {
	switch t.Capture {
	case CaptureOnly:
		return slices.DeleteFunc(moves, func(m PlayerMove) bool { return !m.HasCaptures() })
	case MoveOnly:
		return slices.DeleteFunc(moves, func(m PlayerMove) bool { return m.HasCaptures() })
	}
	return moves
}

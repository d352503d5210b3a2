package rules

import (
	"fmt"
	"strings"

	"github.com/mcoot/fairychess/internal/geom"
)

// NoTestGroup marks a move without a debug visualisation group
const NoTestGroup = -1

// Leg is a single relocation of the moving piece
type Leg struct {
	From geom.Point `json:"from"`
	To   geom.Point `json:"to"`
}

// PlayerMove is a concrete candidate move. Legs are applied in order; captured
// squares are cleared before any leg is applied. Slices are shared with piece
// caches and must not be modified in place.
type PlayerMove struct {
	Legs      []Leg
	Captures  []geom.Point
	Ghost     *geom.Point
	TestGroup int

	// Score is only meaningful on moves returned by the search
	Score int
}

// Origin is the square the moving piece starts on
func (m PlayerMove) Origin() geom.Point {
	return m.Legs[0].From
}

// Destination is the first leg's target. This is what a click is matched against.
func (m PlayerMove) Destination() geom.Point {
	return m.Legs[0].To
}

// Final is the square the moving piece ends on after every leg
func (m PlayerMove) Final() geom.Point {
	return m.Legs[len(m.Legs)-1].To
}

func (m PlayerMove) HasCaptures() bool {
	return len(m.Captures) > 0
}

// CapturesSquare reports whether the piece on sq is removed by this move
func (m PlayerMove) CapturesSquare(sq geom.Point) bool {
	for _, c := range m.Captures {
		if c == sq {
			return true
		}
	}
	return false
}

// SameCandidate reports whether two moves would be selected by the same click
func (m PlayerMove) SameCandidate(other PlayerMove) bool {
	return m.Destination() == other.Destination()
}

func (m PlayerMove) String() string {
	var sb strings.Builder
	for i, leg := range m.Legs {
		if i == 0 {
			sb.WriteString(leg.From.String())
		}
		sb.WriteString("->")
		sb.WriteString(leg.To.String())
	}
	for _, c := range m.Captures {
		fmt.Fprintf(&sb, " x%s", c)
	}
	return sb.String()
}

// Merge chains b after a: legs are concatenated and captures unioned. The
// merged move never creates a ghost square.
func Merge(a, b PlayerMove) PlayerMove {
	merged := PlayerMove{
		Legs:      make([]Leg, 0, len(a.Legs)+len(b.Legs)),
		TestGroup: NoTestGroup,
	}
	merged.Legs = append(merged.Legs, a.Legs...)
	merged.Legs = append(merged.Legs, b.Legs...)
	for _, c := range a.Captures {
		merged.addCapture(c)
	}
	for _, c := range b.Captures {
		merged.addCapture(c)
	}
	return merged
}

func (m *PlayerMove) addCapture(sq geom.Point) {
	if !m.CapturesSquare(sq) {
		m.Captures = append(m.Captures, sq)
	}
}

// FindByDestination returns the first move whose first leg lands on dest
func FindByDestination(moves []PlayerMove, dest geom.Point) (PlayerMove, bool) {
	for _, m := range moves {
		if m.Destination() == dest {
			return m, true
		}
	}
	return PlayerMove{}, false
}

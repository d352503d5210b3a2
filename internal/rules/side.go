package rules

import "github.com/mcoot/fairychess/internal/geom"

// Side identifies a player. White starts at the bottom of the board and moves
// toward row 0.
type Side uint8

const (
	White Side = iota
	Black
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns the unit step toward the opponent's home rows
func (s Side) Forward() geom.Point {
	if s == White {
		return geom.Pt(0, -1)
	}
	return geom.Pt(0, 1)
}

// Code is the single-letter side code used in piece keys and board dumps
func (s Side) Code() string {
	if s == White {
		return "W"
	}
	return "B"
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// homeRow returns the row `offset` rows in from the side's back edge
func homeRow(side Side, size, offset int) int {
	if side == White {
		return size - 1 - offset
	}
	return offset
}

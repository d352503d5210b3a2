package rules

import "github.com/mcoot/fairychess/internal/geom"

// GameState describes whether the side to move can still play
type GameState uint8

const (
	StateNone GameState = iota
	StateCheckmate
	StateStalemate
)

func (s GameState) String() string {
	switch s {
	case StateCheckmate:
		return "checkmate"
	case StateStalemate:
		return "stalemate"
	}
	return "none"
}

// Check is a royal piece under attack together with the pieces attacking it
type Check struct {
	Royal     *Piece
	Attackers []*Piece
}

func (b *Board) royalSquares(side Side) []geom.Point {
	var out []geom.Point
	for _, pc := range b.Pieces(side) {
		if pc.royal {
			out = append(out, pc.pos)
		}
	}
	return out
}

// InCheck reports whether any raw enemy move captures one of side's royal pieces
func (b *Board) InCheck(side Side) bool {
	royals := b.royalSquares(side)
	if len(royals) == 0 {
		return false
	}
	for _, enemy := range b.Pieces(side.Opposite()) {
		for _, m := range enemy.Moves(false) {
			for _, sq := range royals {
				if m.CapturesSquare(sq) {
					return true
				}
			}
		}
	}
	return false
}

// Checks lists every royal piece of side that is attacked, with its attackers
func (b *Board) Checks(side Side) []Check {
	var checks []Check
	enemies := b.Pieces(side.Opposite())
	for _, royal := range b.Pieces(side) {
		if !royal.royal {
			continue
		}
		var attackers []*Piece
		for _, enemy := range enemies {
			for _, m := range enemy.Moves(false) {
				if m.CapturesSquare(royal.pos) {
					attackers = append(attackers, enemy)
					break
				}
			}
		}
		if len(attackers) > 0 {
			checks = append(checks, Check{Royal: royal, Attackers: attackers})
		}
	}
	return checks
}

// CanMove reports whether side has at least one check-safe move
func (b *Board) CanMove(side Side) bool {
	for _, pc := range b.Pieces(side) {
		if len(pc.Moves(true)) > 0 {
			return true
		}
	}
	return false
}

// State evaluates the side to move
func (b *Board) State() GameState {
	if b.CanMove(b.turn) {
		return StateNone
	}
	if b.InCheck(b.turn) {
		return StateCheckmate
	}
	return StateStalemate
}

// RefreshCheck recomputes the highlighted check pieces for the side to move
func (b *Board) RefreshCheck() {
	b.checks = nil
	for _, c := range b.Checks(b.turn) {
		b.checks = append(b.checks, c.Royal)
		b.checks = append(b.checks, c.Attackers...)
	}
}

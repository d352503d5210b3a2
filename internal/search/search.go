package search

import "github.com/mcoot/fairychess/internal/rules"

// DefaultDepth is the number of plies the built-in opponent looks ahead
const DefaultDepth = 2

// SelectMove runs a fixed-depth minimax for side and returns the best move
// with its score. Pieces are visited in board scan order and moves in template
// order; the first move reaching the maximum wins. ok is false when side has
// no move that keeps its royal pieces safe.
func SelectMove(b *rules.Board, side rules.Side, depth int) (best rules.PlayerMove, ok bool) {
	for _, pc := range b.Pieces(side) {
		for _, m := range pc.Moves(false) {
			scratch := b.Clone()
			scratch.Apply(m)
			if scratch.InCheck(side) {
				continue
			}

			var score int
			reply, replied := rules.PlayerMove{}, false
			if depth > 1 {
				reply, replied = SelectMove(scratch, side.Opposite(), depth-1)
			}
			if replied {
				score = -reply.Score
			} else {
				score = Evaluate(scratch, side)
			}

			if !ok || score > best.Score {
				best = m
				best.Score = score
				ok = true
			}
		}
	}
	return best, ok
}

// Evaluate is the material balance from side's point of view
func Evaluate(b *rules.Board, side rules.Side) int {
	score := 0
	for _, pc := range b.Pieces(side) {
		score += pc.Worth()
	}
	for _, pc := range b.Pieces(side.Opposite()) {
		score -= pc.Worth()
	}
	return score
}

// LegalMoves lists side's check-safe moves in scan order
func LegalMoves(b *rules.Board, side rules.Side) []rules.PlayerMove {
	var moves []rules.PlayerMove
	for _, pc := range b.Pieces(side) {
		moves = append(moves, pc.Moves(true)...)
	}
	return moves
}

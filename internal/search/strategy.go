package search

import (
	"github.com/mcoot/fairychess/internal/dependencies/random"
	"github.com/mcoot/fairychess/internal/rules"
)

const (
	StrategyMinimax = "minimax"
	StrategyRandom  = "random"
)

// Strategy decides the computer opponent's move
type Strategy interface {
	// ChooseMove returns the move to play for side, or false if there is none
	ChooseMove(b *rules.Board, side rules.Side) (rules.PlayerMove, bool)
}

// Minimax searches Depth plies without pruning
type Minimax struct {
	Depth int
}

var _ Strategy = Minimax{}

func (m Minimax) ChooseMove(b *rules.Board, side rules.Side) (rules.PlayerMove, bool) {
	depth := m.Depth
	if depth < 1 {
		depth = DefaultDepth
	}
	return SelectMove(b, side, depth)
}

// RandomStrategy plays a uniformly random legal move
type RandomStrategy struct {
	random random.Random
}

var _ Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (s *RandomStrategy) ChooseMove(b *rules.Board, side rules.Side) (rules.PlayerMove, bool) {
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return rules.PlayerMove{}, false
	}
	return moves[s.random.Intn(len(moves))], true
}

// Strategies returns the built-in strategies by name
func Strategies(depth int, rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		StrategyMinimax: Minimax{Depth: depth},
		StrategyRandom:  NewRandomStrategy(rnd),
	}
}

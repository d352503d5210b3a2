package rules

import "slices"

func twoLegMoves(first, second Template, multiKill bool, pc *Piece, b *Board, deps squareSet, reverse bool) []PlayerMove {
	var moves []PlayerMove
	for _, m1 := range first.generate(pc, b, deps, reverse) {
		moves = append(moves, m1)

		scratch := b.Clone()
		scratch.Apply(m1)
		mover := scratch.At(m1.Final())
		if mover == nil {
			continue
		}
		follow := second.generate(mover, scratch, deps, reverse)
		if !multiKill && m1.HasCaptures() {
			continue
		}
		for _, m2 := range follow {
			moves = append(moves, Merge(m1, m2))
		}
	}
	return moves
}

func (t Template) chainMoves(pc *Piece, b *Board, deps squareSet, reverse bool) []PlayerMove {
	step := t.Parts[0]
	if len(step.generate(pc, b, deps, reverse)) == 0 {
		return nil
	}
	return twoLegMoves(step, t, t.MultiKill, pc, b, deps, reverse)
}

// mimicMoves replays the last copyable move from pc's square. Results come out
// newest-first. Every enemy square is a dependency since any enemy move can
// change what is copyable.
func mimicMoves(pc *Piece, b *Board, deps squareSet) []PlayerMove {
	last := b.lastCopyable
	if last == nil {
		return nil
	}
	reverse := last.side != pc.side
	var moves []PlayerMove
	for _, t := range last.templates {
		moves = append(moves, t.generate(pc, b, deps, reverse)...)
	}
	slices.Reverse(moves)
	for _, enemy := range b.Pieces(pc.side.Opposite()) {
		deps.add(enemy.pos)
	}
	return moves
}

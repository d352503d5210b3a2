package rules

import "github.com/mcoot/fairychess/internal/geom"

// squareSet collects the squares a move generation examined
type squareSet map[geom.Point]struct{}

func (s squareSet) add(p geom.Point) {
	s[p] = struct{}{}
}

type subscription struct {
	piece   *Piece
	version int
}

// depGraph maps each square to the pieces whose cached moves were computed
// from it. A mutation of the square invalidates every subscriber whose tag
// still matches its current cache version.
type depGraph struct {
	size int
	subs [][]subscription
}

func newDepGraph(size int) depGraph {
	return depGraph{size: size, subs: make([][]subscription, size*size)}
}

func (g *depGraph) index(p geom.Point) int {
	return p.Y*g.size + p.X
}

func (g *depGraph) subscribe(pc *Piece, version int, squares squareSet) {
	for sq := range squares {
		i := g.index(sq)
		g.subs[i] = append(g.subs[i], subscription{piece: pc, version: version})
	}
}

func (g *depGraph) unsubscribe(pc *Piece, squares squareSet) {
	for sq := range squares {
		i := g.index(sq)
		kept := g.subs[i][:0]
		for _, s := range g.subs[i] {
			if s.piece != pc {
				kept = append(kept, s)
			}
		}
		clear(g.subs[i][len(kept):])
		g.subs[i] = kept
	}
}

func (g *depGraph) notify(sq geom.Point) {
	for _, s := range g.subs[g.index(sq)] {
		s.piece.Invalidate(s.version)
	}
}

func (g *depGraph) subscribers(sq geom.Point) []subscription {
	return g.subs[g.index(sq)]
}

package rules

import "github.com/mcoot/fairychess/internal/geom"

func pawnKind(side Side, promoteTo *PieceKind) *PieceKind {
	fwd := side.Forward()
	return &PieceKind{
		Type:  "P",
		Value: 100,
		Templates: []Template{
			NewSlide([]geom.Point{fwd}, 1).MoveOnly(),
			NewSlide([]geom.Point{fwd}, 2).FirstMoveOnly().MoveOnly().WithGhost(fwd),
			NewSlide(geom.Offset([]geom.Point{{X: -1}, {X: 1}}, fwd), 1).CaptureOnly().EatsGhost(),
		},
		Promotion: &Promotion{Into: promoteTo, Rows: 1},
	}
}

func checkerKind(side Side) *PieceKind {
	forward := geom.Offset(geom.HorizontalOnly(), side.Forward())
	return &PieceKind{
		Type:  "P",
		Value: 100,
		Templates: []Template{
			NewChain(NewJump(forward, 2).CaptureOnly(), true),
			NewSlide(forward, 1).MoveOnly(),
		},
	}
}

func rookKind(size int) *PieceKind {
	return &PieceKind{Type: "R", Value: 500, Templates: []Template{NewSlide(geom.Orthogonal(), size)}}
}

func knightKind() *PieceKind {
	return &PieceKind{Type: "N", Value: 350, Templates: []Template{NewSlide(geom.Knight(1, 2), 1)}}
}

func bishopKind(size int) *PieceKind {
	return &PieceKind{Type: "B", Value: 350, Templates: []Template{NewSlide(geom.Diagonal(), size)}}
}

func queenKind(size int) *PieceKind {
	return &PieceKind{Type: "Q", Value: 900, Templates: []Template{NewSlide(geom.AllEight(), size)}}
}

func kingKind(value int) *PieceKind {
	return &PieceKind{Type: "K", Value: value, Royal: true, Templates: []Template{NewSlide(geom.AllEight(), 1)}}
}

// wizardKind stuns orthogonally adjacent enemies
func wizardKind() *PieceKind {
	return &PieceKind{
		Type:    "Z",
		Value:   500,
		Stunner: true,
		Templates: []Template{
			NewSlide(geom.Diagonal(), 1),
			NewSlide(geom.Knight(1, 3), 1),
		},
	}
}

func jokerKind(value int) *PieceKind {
	return &PieceKind{Type: "J", Value: value, Templates: []Template{NewMimic()}}
}

func championKind() *PieceKind {
	return &PieceKind{
		Type:  "C",
		Value: 350,
		Templates: []Template{
			NewHop(geom.Orthogonal(), 2),
			NewHop(geom.Scale(geom.Diagonal(), 2), 1),
		},
	}
}

// gryphonKind steps one square diagonally, then may continue as a rook
func gryphonKind(size, value int) *PieceKind {
	return &PieceKind{
		Type:  "G",
		Value: value,
		Templates: []Template{
			NewTwoLeg(NewSlide(geom.Diagonal(), 1), NewSlide(geom.Orthogonal(), size), false),
		},
	}
}

// princessKind is the royal piece of the small fantasy game. It never captures.
func princessKind(size int) *PieceKind {
	return &PieceKind{
		Type:  "PR",
		Value: 350,
		Royal: true,
		Templates: []Template{
			NewLeap(geom.HorizontalOnly(), size).FirstMoveOnly().MoveOnly(),
			NewSlide(geom.HorizontalOnly(), size).FirstMoveOnly().MoveOnly(),
			NewLeap(geom.AllEight(), 2).MoveOnly(),
			NewSlide(geom.Orthogonal(), 1).MoveOnly(),
		},
	}
}

func nightriderKind(size int) *PieceKind {
	return &PieceKind{Type: "O", Value: 1350, Templates: []Template{NewSlide(geom.Knight(1, 2), size)}}
}

func paladinKind(size int) *PieceKind {
	return &PieceKind{
		Type:  "L",
		Value: 1100,
		Templates: []Template{
			NewSlide(geom.Diagonal(), size),
			NewSlide(geom.Knight(1, 2), size),
		},
	}
}

func amazonKind(size int) *PieceKind {
	return &PieceKind{
		Type:  "A",
		Value: 1100,
		Templates: []Template{
			NewSlide(geom.AllEight(), size),
			NewSlide(geom.Knight(1, 2), size),
		},
	}
}

// beastKind cleaves: every enemy next to its landing square is taken too
func beastKind() *PieceKind {
	return &PieceKind{
		Type:  "E",
		Value: 1900,
		Templates: []Template{
			NewHop(geom.Knight(1, 2), 2).WithCleave(geom.AllEight()),
			NewHop(geom.Scale(geom.Orthogonal(), 4), 1).WithCleave(geom.AllEight()),
		},
	}
}

package rules

import "github.com/mcoot/fairychess/internal/geom"

// Mode selects a board size and starting position
type Mode uint8

const (
	ModeChess Mode = iota
	ModeCheckers
	ModeFantasySmall
	ModeFantasyLarge
	// ModeCustom is an empty board populated by the caller
	ModeCustom
)

// DefaultMode is the mode a fresh session starts in
const DefaultMode = ModeFantasySmall

var modeNames = map[Mode]string{
	ModeChess:        "chess",
	ModeCheckers:     "checkers",
	ModeFantasySmall: "fantasy-small",
	ModeFantasyLarge: "fantasy-large",
	ModeCustom:       "custom",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Size is the board edge length for the mode
func (m Mode) Size() int {
	if m == ModeFantasyLarge {
		return 10
	}
	return 8
}

// Modes lists the playable modes
func Modes() []Mode {
	return []Mode{ModeChess, ModeCheckers, ModeFantasySmall, ModeFantasyLarge}
}

// ParseMode resolves a playable mode by name
func ParseMode(name string) (Mode, bool) {
	for _, m := range Modes() {
		if m.String() == name {
			return m, true
		}
	}
	return ModeCustom, false
}

// NewGame sets up a fresh board for mode with White to move
func NewGame(mode Mode, ai bool) *Board {
	b := NewBoard(mode.Size())
	b.mode = mode
	b.aiEnabled = ai

	switch mode {
	case ModeChess:
		setupChess(b)
	case ModeCheckers:
		setupCheckers(b)
	case ModeFantasySmall:
		setupFantasySmall(b)
	case ModeFantasyLarge:
		setupFantasyLarge(b)
	}
	return b
}

func bothSides() []Side {
	return []Side{White, Black}
}

func (b *Board) placeRow(side Side, offset int, kinds []*PieceKind) {
	y := homeRow(side, b.size, offset)
	for x, kind := range kinds {
		b.Place(kind, side, geom.Pt(x, y))
	}
}

func (b *Board) placePawns(side Side, offset int, kind *PieceKind) {
	y := homeRow(side, b.size, offset)
	for x := 0; x < b.size; x++ {
		b.Place(kind, side, geom.Pt(x, y))
	}
}

func setupChess(b *Board) {
	n := b.size
	queen := queenKind(n)
	rook, knight, bishop, king := rookKind(n), knightKind(), bishopKind(n), kingKind(350)
	for _, side := range bothSides() {
		b.placeRow(side, 0, []*PieceKind{rook, knight, bishop, queen, king, bishop, knight, rook})
		b.placePawns(side, 1, pawnKind(side, queen))
	}
}

func setupCheckers(b *Board) {
	n := b.size
	white, black := checkerKind(White), checkerKind(Black)
	for i := 0; i < 12; i++ {
		y2 := i / 4
		y1 := n - y2 - 1
		x1 := (i % 4) * 2
		if y1%2 != 0 {
			x1++
		}
		x2 := n - x1 - 1
		b.Place(white, White, geom.Pt(x1, y1))
		b.Place(black, Black, geom.Pt(x2, y2))
	}
}

func setupFantasySmall(b *Board) {
	n := b.size
	gryphon := gryphonKind(n, 900)
	wizard, joker, champion := wizardKind(), jokerKind(350), championKind()
	for _, side := range bothSides() {
		b.placeRow(side, 0, []*PieceKind{wizard, joker, champion, gryphon, princessKind(n), champion, joker, wizard})
		b.placePawns(side, 1, pawnKind(side, gryphon))
	}
}

func setupFantasyLarge(b *Board) {
	n := b.size
	queen := queenKind(n)
	rook, champion, knight, bishop, king := rookKind(n), championKind(), knightKind(), bishopKind(n), kingKind(250)
	joker, wizard, nightrider := jokerKind(900), wizardKind(), nightriderKind(n)
	for _, side := range bothSides() {
		b.placeRow(side, 0, []*PieceKind{
			joker, wizard, nightrider, paladinKind(n), amazonKind(n),
			beastKind(), gryphonKind(n, 750), nightrider, wizard, joker,
		})
		b.placeRow(side, 1, []*PieceKind{rook, champion, knight, bishop, queen, king, bishop, knight, champion, rook})
		b.placePawns(side, 2, pawnKind(side, queen))
	}
}

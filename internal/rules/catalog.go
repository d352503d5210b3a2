package rules

import "sort"

// KindByCode builds the standard piece type named by code for a board of the
// given size. Pawns promote to a queen. ok is false for an unknown code.
func KindByCode(code string, side Side, size int) (kind *PieceKind, ok bool) {
	switch code {
	case "P":
		return pawnKind(side, queenKind(size)), true
	case "CH":
		return checkerKind(side), true
	case "R":
		return rookKind(size), true
	case "N":
		return knightKind(), true
	case "B":
		return bishopKind(size), true
	case "Q":
		return queenKind(size), true
	case "K":
		return kingKind(350), true
	case "Z":
		return wizardKind(), true
	case "J":
		return jokerKind(350), true
	case "C":
		return championKind(), true
	case "G":
		return gryphonKind(size, 900), true
	case "PR":
		return princessKind(size), true
	case "O":
		return nightriderKind(size), true
	case "L":
		return paladinKind(size), true
	case "A":
		return amazonKind(size), true
	case "E":
		return beastKind(), true
	}
	return nil, false
}

// KindCodes lists the codes accepted by Kind
func KindCodes() []string {
	codes := []string{"P", "CH", "R", "N", "B", "Q", "K", "Z", "J", "C", "G", "PR", "O", "L", "A", "E"}
	sort.Strings(codes)
	return codes
}

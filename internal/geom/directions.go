package geom

// Orthogonal returns the four rook directions
func Orthogonal() []Point {
	return []Point{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}
}

// Diagonal returns the four bishop directions
func Diagonal() []Point {
	return []Point{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
}

// AllEight returns the orthogonal directions followed by the diagonal ones
func AllEight() []Point {
	return append(Orthogonal(), Diagonal()...)
}

// HorizontalOnly returns left and right
func HorizontalOnly() []Point {
	return []Point{{1, 0}, {-1, 0}}
}

// VerticalOnly returns down and up
func VerticalOnly() []Point {
	return []Point{{0, 1}, {0, -1}}
}

// Knight returns the eight (x, y) leaper offsets. Knight(1, 2) is the orthodox
// knight, Knight(1, 3) the camel.
func Knight(x, y int) []Point {
	return []Point{
		{x, y}, {y, x}, {x, -y}, {y, -x},
		{-x, -y}, {-y, -x}, {-x, y}, {-y, x},
	}
}

// Scale multiplies every direction by m
func Scale(dirs []Point, m int) []Point {
	out := make([]Point, len(dirs))
	for i, d := range dirs {
		out[i] = d.Mul(m)
	}
	return out
}

// Offset adds delta to every direction
func Offset(dirs []Point, delta Point) []Point {
	out := make([]Point, len(dirs))
	for i, d := range dirs {
		out[i] = d.Add(delta)
	}
	return out
}

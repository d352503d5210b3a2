package geom

import "fmt"

// Point is a board coordinate or a displacement vector. X grows to the right,
// Y grows downward (row 0 is the top row).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul scales both components
func (p Point) Mul(m int) Point {
	return Point{X: p.X * m, Y: p.Y * m}
}

// Horizontal keeps only the X component
func (p Point) Horizontal() Point {
	return Point{X: p.X}
}

// Vertical keeps only the Y component
func (p Point) Vertical() Point {
	return Point{Y: p.Y}
}

// FlipY mirrors the vector across the horizontal axis
func (p Point) FlipY() Point {
	return Point{X: p.X, Y: -p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

package shapegen

// Point is a position or displacement in the canonical asset space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q. Relative path coordinates resolve by adding the pen
// position.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s. Smooth path commands reflect the previous
// control point through the pen as pen.Mul(2).Sub(ctrl).
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

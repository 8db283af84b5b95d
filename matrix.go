package shapegen

// Matrix is a 2D affine transform in row-major 2x3 form, mapping (x, y) to
// (A*x + B*y + C, D*x + E*y + F).
//
// Placement chains compose out of Translate and Scale only, so B and D stay
// zero; a flip is a scale with a negative factor. Elements expose their chain
// through Element.Matrix.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns the transform moving points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns the transform scaling points by (x, y) about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Multiply returns m * other: the transform that applies other first, then m.
// Chains read left to right in application order when built as
// last.Multiply(first).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through the transform.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

package shapegen

import (
	"math"
	"testing"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale by one", Scale(1, 1), true},
		{"zero offset", Translate(0, 0), true},
		{"offset", Translate(10, 20), false},
		{"half scale", Scale(0.5, 0.5), false},
		{"mirror", Scale(-1, 1), false},
		{"placement chain", Translate(100, 100).Multiply(Scale(2, 2)).Multiply(Translate(-32, -32)), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.IsIdentity()
			if got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, 20), Pt(3, 4), Pt(13, 24)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"mirror x", Scale(-1, 1), Pt(3, 4), Pt(-3, 4)},
		{"mirror y", Scale(1, -1), Pt(3, 4), Pt(3, -4)},
		{"translate then scale", Translate(10, 20).Multiply(Scale(2, 2)), Pt(3, 4), Pt(16, 28)},
		{"scale then translate", Scale(2, 2).Multiply(Translate(10, 20)), Pt(3, 4), Pt(26, 48)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !pointNear(got, tt.want) {
				t.Errorf("Matrix%+v.TransformPoint(%+v) = %+v, want %+v", tt.m, tt.p, got, tt.want)
			}
		})
	}
}

func TestMultiplyAssociative(t *testing.T) {
	a := Translate(100, 100)
	b := Scale(2, -2)
	c := Translate(-32, -32)

	p := Pt(48, 16)
	left := a.Multiply(b).Multiply(c).TransformPoint(p)
	right := a.Multiply(b.Multiply(c)).TransformPoint(p)

	if !pointNear(left, right) {
		t.Errorf("(a*b)*c and a*(b*c) disagree: %+v vs %+v", left, right)
	}
}

func TestPlacementChain(t *testing.T) {
	// The placement chain recenters canonical coordinates on the canvas
	// point: translate(x,y) * scale(s,s) * translate(-32,-32).
	// The canonical center (32,32) must land exactly on (x,y) for any scale.
	for _, s := range []float64{0.25, 0.5, 1, 2, 10} {
		m := Translate(100, 200).Multiply(Scale(s, s)).Multiply(Translate(-32, -32))
		got := m.TransformPoint(Pt(32, 32))
		if !pointNear(got, Pt(100, 200)) {
			t.Errorf("chain(scale=%v).TransformPoint(32,32) = %+v, want {100 200}", s, got)
		}
	}
}

func TestPlacementChainMirrors(t *testing.T) {
	// With a negative X factor the chain mirrors about the placement point:
	// canonical (48,32) is 16 right of center, so it lands 16 left of (100,200).
	m := Translate(100, 200).Multiply(Scale(-1, 1)).Multiply(Translate(-32, -32))
	got := m.TransformPoint(Pt(48, 32))
	want := Pt(84, 200)
	if !pointNear(got, want) {
		t.Errorf("mirror chain moved (48,32) to %+v, want %+v", got, want)
	}
}

// pointNear reports whether two points agree within floating-point tolerance.
func pointNear(a, b Point) bool {
	const epsilon = 1e-9
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

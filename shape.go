package shapegen

import (
	"math"
	"strconv"
	"strings"
)

// Class identifies how a shape renders. The pipeline assigns it from the
// asset's slot tags and it never changes afterwards.
type Class int

const (
	// ClassSimple is a shape with a single untagged region, drawn in one color.
	ClassSimple Class = iota

	// ClassMulti is a shape whose regions carry slot tags and composite into
	// independent color channels, backgrounds first.
	ClassMulti
)

// String returns "simple" or "multi".
func (c Class) String() string {
	if c == ClassMulti {
		return "multi"
	}
	return "simple"
}

// Shape is the generated artifact for one asset: everything needed to place
// the shape anywhere on a canvas. Shapes are immutable data; Place is the one
// evaluator shared by all of them.
type Shape struct {
	Name    string
	Label   string
	Class   Class
	Regions []Region
}

// NewShape builds a shape from its regions, deriving the class: a region list
// carrying slot tags is multi-slot, a single untagged region is simple.
// Generated registry code calls it with regions already in paint order.
func NewShape(name, label string, regions ...Region) Shape {
	class := ClassSimple
	for _, r := range regions {
		if r.Slot > 0 {
			class = ClassMulti
			break
		}
	}
	return Shape{Name: name, Label: label, Class: class, Regions: regions}
}

// PlaceFunc is the signature of a placement function: position of the shape
// center, size in canvas units, and optional flips. It returns drawable
// elements in paint order.
type PlaceFunc func(x, y, size float64, opts ...PlaceOption) []Element

// PlaceOption configures a single placement.
type PlaceOption func(*placement)

type placement struct {
	flipX, flipY float64
}

// FlipX mirrors the placement horizontally about the placement point.
func FlipX() PlaceOption {
	return func(p *placement) { p.flipX = -1 }
}

// FlipY mirrors the placement vertically about the placement point.
func FlipY() PlaceOption {
	return func(p *placement) { p.flipY = -1 }
}

// Element is one drawable region produced by a placement, in final canvas
// coordinates. The Kind field indicates which parameters are meaningful.
//
// Slot carries over from the source region so the renderer can pick the fill
// color; elements of a simple shape have Slot 0.
type Element struct {
	Kind Kind
	Slot int

	CX float64 // Center X coordinate (circle).
	CY float64 // Center Y coordinate (circle).
	R  float64 // Radius (circle).

	X float64 // Left edge (rect).
	Y float64 // Top edge (rect).
	W float64 // Total width (rect).
	H float64 // Total height (rect).

	Path   string // Path data, verbatim from the asset (path).
	Points string // Coordinate pairs, verbatim from the asset (polygon).

	// Placement chain for path and polygon elements:
	// translate(TX, TY) * scale(SX, SY) * translate(-32, -32).
	TX, TY, SX, SY float64
}

// Matrix returns the placement transform of a path or polygon element as a
// single affine matrix. Circle and rect elements carry resolved coordinates
// instead of a chain; for those Matrix returns the identity.
func (e Element) Matrix() Matrix {
	if e.Kind != KindPath && e.Kind != KindPolygon {
		return Identity()
	}
	m := Translate(e.TX, e.TY)
	m = m.Multiply(Scale(e.SX, e.SY))
	return m.Multiply(Translate(-canvasCenter, -canvasCenter))
}

// Transform returns the placement chain in SVG transform-list syntax, e.g.
//
//	translate(100,100) scale(1,1) translate(-32,-32)
//
// Numbers are emitted exactly, without rounding.
func (e Element) Transform() string {
	var b strings.Builder
	b.WriteString("translate(")
	b.WriteString(fnum(e.TX))
	b.WriteString(",")
	b.WriteString(fnum(e.TY))
	b.WriteString(") scale(")
	b.WriteString(fnum(e.SX))
	b.WriteString(",")
	b.WriteString(fnum(e.SY))
	b.WriteString(") translate(-32,-32)")
	return b.String()
}

// fnum formats a coordinate with the shortest exact representation.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Place evaluates the shape at center (x, y) with the given size in canvas
// units. Size 64 reproduces the asset at authored scale. Elements come back
// in paint order: for multi-slot shapes the slot-1 background first, then the
// remaining regions in asset order.
func (s Shape) Place(x, y, size float64, opts ...PlaceOption) []Element {
	p := placement{flipX: 1, flipY: 1}
	for _, opt := range opts {
		opt(&p)
	}
	scale := size / CanvasSize
	sx := scale * p.flipX
	sy := scale * p.flipY

	if s.Class == ClassSimple {
		if len(s.Regions) == 0 {
			return nil
		}
		return []Element{placeSimple(s.Regions[0], x, y, size, scale, sx, sy)}
	}

	elems := make([]Element, 0, len(s.Regions))
	for _, r := range s.Regions {
		elems = append(elems, placeRegion(r, x, y, scale, sx, sy))
	}
	return elems
}

// placeSimple resolves the single region of a simple shape. Simple circles
// and rects are centered on the placement point directly, so flips are
// no-ops for them; paths keep their authored offset through the chain.
func placeSimple(r Region, x, y, size, scale, sx, sy float64) Element {
	switch r.Kind {
	case KindCircle:
		return Element{Kind: KindCircle, CX: x, CY: y, R: r.R * scale}
	case KindRect:
		return Element{Kind: KindRect, X: x - size/2, Y: y - size/2, W: size, H: size}
	default:
		return Element{Kind: r.Kind, Path: r.Path, Points: r.Points, TX: x, TY: y, SX: sx, SY: sy}
	}
}

// placeRegion maps one canonical region of a multi-slot shape onto the canvas.
// Canonical coordinates are recentered on (32, 32) so that flips mirror the
// geometry about the placement point.
func placeRegion(r Region, x, y, scale, sx, sy float64) Element {
	switch r.Kind {
	case KindCircle:
		return Element{
			Kind: KindCircle,
			Slot: r.Slot,
			CX:   x + (r.CX-canvasCenter)*sx,
			CY:   y + (r.CY-canvasCenter)*sy,
			R:    r.R * scale,
		}
	case KindRect:
		// Transform both corners and take the minimum so a mirrored rect
		// keeps positive extents.
		x1 := x + (r.X-canvasCenter)*sx
		x2 := x + (r.X+r.W-canvasCenter)*sx
		y1 := y + (r.Y-canvasCenter)*sy
		y2 := y + (r.Y+r.H-canvasCenter)*sy
		return Element{
			Kind: KindRect,
			Slot: r.Slot,
			X:    math.Min(x1, x2),
			Y:    math.Min(y1, y2),
			W:    math.Abs(x2 - x1),
			H:    math.Abs(y2 - y1),
		}
	default:
		return Element{
			Kind:   r.Kind,
			Slot:   r.Slot,
			Path:   r.Path,
			Points: r.Points,
			TX:     x,
			TY:     y,
			SX:     sx,
			SY:     sy,
		}
	}
}

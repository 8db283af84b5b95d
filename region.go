package shapegen

// CanvasSize is the linear extent of the canonical coordinate space all asset
// geometry is authored in: 64x64 units, origin at the top-left corner.
// Placement rescales from this space to the requested size.
const CanvasSize = 64.0

// canvasCenter is the midpoint of the canonical space on either axis.
const canvasCenter = CanvasSize / 2

// Kind identifies the geometric primitive a region describes.
type Kind int

const (
	// KindCircle is a circle given by center and radius.
	KindCircle Kind = iota

	// KindRect is an axis-aligned rectangle given by its top-left corner,
	// width and height.
	KindRect

	// KindPath is an SVG path-command string. Path data is opaque to the
	// pipeline: it is carried verbatim and positioned with an affine chain,
	// never rewritten coordinate by coordinate.
	KindPath

	// KindPolygon is an SVG coordinate-pair list, carried and positioned like
	// path data.
	KindPolygon
)

// String returns the lowercase primitive name, matching the asset element tag.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Region holds one drawable primitive extracted from an asset, in canonical
// coordinates. The Kind field indicates which parameters are meaningful.
//
// Slot is the color channel the region composites into. Slot 1 is the
// background layer of a multi-slot shape; higher slots paint on top in region
// order. Slot 0 means untagged: the single region of a simple shape.
type Region struct {
	Kind Kind
	Slot int

	CX float64 // Center X coordinate (circle).
	CY float64 // Center Y coordinate (circle).
	R  float64 // Radius (circle).

	X float64 // Left edge (rect).
	Y float64 // Top edge (rect).
	W float64 // Total width (rect).
	H float64 // Total height (rect).

	Path   string // Path data, verbatim (path).
	Points string // Coordinate pairs, verbatim (polygon).
}

// Circle returns an untagged circle region.
func Circle(cx, cy, r float64) Region {
	return Region{Kind: KindCircle, CX: cx, CY: cy, R: r}
}

// Rect returns an untagged rectangle region.
func Rect(x, y, w, h float64) Region {
	return Region{Kind: KindRect, X: x, Y: y, W: w, H: h}
}

// Path returns an untagged path region wrapping the given path data.
func Path(d string) Region {
	return Region{Kind: KindPath, Path: d}
}

// Polygon returns an untagged polygon region wrapping the given point list.
func Polygon(points string) Region {
	return Region{Kind: KindPolygon, Points: points}
}

// InSlot returns a copy of the region tagged with the given color slot.
// Generated registry code uses it to build multi-slot shapes.
func (r Region) InSlot(slot int) Region {
	r.Slot = slot
	return r
}

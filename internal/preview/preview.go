// Package preview renders registry shapes onto a contact sheet image.
//
// The sheet is a developer aid for eyeballing extraction results: one grid
// cell per shape, slots tinted from a small palette, every shape placed
// through the same placement functions consumers call. It plays no part in
// code generation.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/image/vector"

	"github.com/patternlab/shapegen"
	"github.com/patternlab/shapegen/internal/svgpath"
)

// Options configures a contact sheet.
type Options struct {
	// Cell is the pixel size of one grid cell. Defaults to 96.
	Cell int
	// Columns is the number of cells per row. Defaults to 8.
	Columns int
	// All includes shapes from disabled sets. By default only enabled sets
	// are drawn.
	All bool
}

var (
	ink   = color.NRGBA{R: 0x26, G: 0x26, B: 0x2b, A: 0xff}
	paper = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xf7, A: 0xff}

	// palette tints slot n with palette[(n-1) % len(palette)]. Slot 1 stays
	// muted so foreground slots read against it.
	palette = []color.NRGBA{
		{R: 0xe8, G: 0xe6, B: 0xdf, A: 0xff},
		{R: 0xc2, G: 0x41, B: 0x3c, A: 0xff},
		{R: 0x2f, G: 0x6f, B: 0xb8, A: 0xff},
		{R: 0xd9, G: 0xa4, B: 0x41, A: 0xff},
		{R: 0x3e, G: 0x8f, B: 0x5a, A: 0xff},
		{R: 0x6a, G: 0x4f, B: 0x94, A: 0xff},
	}
)

// Sheet draws every selected shape into a grid and returns the image.
// Shapes are drawn in sorted name order, left to right, top to bottom.
// An element whose path data cannot be rasterized is skipped with a warning;
// a sheet with nothing to draw at all is an error.
func Sheet(reg shapegen.Registry, opts Options) (*image.NRGBA, error) {
	if opts.Cell <= 0 {
		opts.Cell = 96
	}
	if opts.Columns <= 0 {
		opts.Columns = 8
	}

	shapes := reg.Enabled()
	if opts.All {
		shapes = reg.All()
	}
	if len(shapes) == 0 {
		return nil, errors.New("preview: no shapes to draw")
	}
	names := maps.Keys(shapes)
	slices.Sort(names)

	cell := opts.Cell
	cols := min(opts.Columns, len(names))
	rows := (len(names) + cols - 1) / cols

	img := image.NewNRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	log := shapegen.Logger()
	z := vector.NewRasterizer(cell, cell)
	for i, name := range names {
		sh := shapes[name]
		x0 := (i % cols) * cell
		y0 := (i / cols) * cell
		cx := float64(x0) + float64(cell)/2
		cy := float64(y0) + float64(cell)/2
		size := float64(cell) * 0.75

		for _, el := range sh.Place(cx, cy, size) {
			z.Reset(cell, cell)
			if err := rasterize(z, el, float64(x0), float64(y0)); err != nil {
				log.Warn("preview element skipped", "shape", name, "err", err)
				continue
			}
			src := image.NewUniform(slotColor(el.Slot))
			z.Draw(img, image.Rect(x0, y0, x0+cell, y0+cell), src, image.Point{})
		}
	}
	return img, nil
}

func slotColor(slot int) color.NRGBA {
	if slot <= 0 {
		return ink
	}
	return palette[(slot-1)%len(palette)]
}

// rasterize appends one placed element to the rasterizer, in coordinates
// relative to the cell origin (ox, oy).
func rasterize(z *vector.Rasterizer, el shapegen.Element, ox, oy float64) error {
	switch el.Kind {
	case shapegen.KindCircle:
		circle(z, el.CX-ox, el.CY-oy, el.R)
	case shapegen.KindRect:
		x, y := el.X-ox, el.Y-oy
		z.MoveTo(float32(x), float32(y))
		z.LineTo(float32(x+el.W), float32(y))
		z.LineTo(float32(x+el.W), float32(y+el.H))
		z.LineTo(float32(x), float32(y+el.H))
		z.ClosePath()
	case shapegen.KindPath:
		return path(z, el, ox, oy)
	case shapegen.KindPolygon:
		return polygon(z, el, ox, oy)
	default:
		return fmt.Errorf("preview: element kind %v", el.Kind)
	}
	return nil
}

// circle approximates the circle with four cubic segments.
func circle(z *vector.Rasterizer, x, y, r float64) {
	const k = 0.5522847498307936
	o := r * k

	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y+o), float32(x+o), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x-o), float32(y+r), float32(x-r), float32(y+o), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y-o), float32(x-o), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x+o), float32(y-r), float32(x+r), float32(y-o), float32(x+r), float32(y))
	z.ClosePath()
}

func path(z *vector.Rasterizer, el shapegen.Element, ox, oy float64) error {
	cmds, err := svgpath.Parse(el.Path)
	if err != nil {
		return err
	}
	m := el.Matrix()
	at := func(p shapegen.Point) (float32, float32) {
		q := m.TransformPoint(p)
		return float32(q.X - ox), float32(q.Y - oy)
	}
	for _, c := range cmds {
		switch c.Op {
		case svgpath.MoveTo:
			x, y := at(c.End)
			z.MoveTo(x, y)
		case svgpath.LineTo:
			x, y := at(c.End)
			z.LineTo(x, y)
		case svgpath.QuadTo:
			cx, cy := at(c.P1)
			x, y := at(c.End)
			z.QuadTo(cx, cy, x, y)
		case svgpath.CubeTo:
			c1x, c1y := at(c.P1)
			c2x, c2y := at(c.P2)
			x, y := at(c.End)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case svgpath.Close:
			z.ClosePath()
		}
	}
	return nil
}

func polygon(z *vector.Rasterizer, el shapegen.Element, ox, oy float64) error {
	pts, err := svgpath.ParsePoints(el.Points)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return nil
	}
	m := el.Matrix()
	for i, p := range pts {
		q := m.TransformPoint(p)
		if i == 0 {
			z.MoveTo(float32(q.X-ox), float32(q.Y-oy))
			continue
		}
		z.LineTo(float32(q.X-ox), float32(q.Y-oy))
	}
	z.ClosePath()
	return nil
}

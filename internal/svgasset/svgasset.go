// Package svgasset extracts drawable regions from vector asset markup.
//
// Assets are small SVG documents in the canonical 64x64 space. The package
// recognizes the four region elements (circle, rect, path, polygon) and the
// slot_<n> class convention, and ignores everything else. It is
// deliberately not a general SVG parser: the fixed asset grammar is lexed
// with tdewolff/parse so attribute order, quoting style and whitespace never
// matter, but no DOM is built.
package svgasset

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"github.com/patternlab/shapegen"
)

// ErrNoRegions reports an asset with no recognizable region element. Such
// assets cannot become shapes and are skipped by the generator.
var ErrNoRegions = errors.New("svgasset: no recognizable region")

// regionTags are the element names that can carry shape geometry.
var regionTags = map[string]bool{
	"circle":  true,
	"rect":    true,
	"path":    true,
	"polygon": true,
}

// containerTags are elements whose content never paints; region elements
// inside them (clip rects, reusable defs) are not extraction candidates.
var containerTags = map[string]bool{
	"defs":     true,
	"clipPath": true,
}

// IsContainer reports whether name is a non-painting container element.
// The normalizer uses it to keep injected backgrounds out of subtrees that
// Scan ignores.
func IsContainer(name string) bool {
	return containerTags[name]
}

// Element is one region start tag with its attributes, in document order.
type Element struct {
	Name string
	Attr map[string]string
}

// Result is the parse outcome for one asset: a simple shape with a single
// untagged region, or a multi-slot shape with its tagged regions in paint
// order (slot 1 first, the rest in document order).
type Result struct {
	Name    string
	Class   shapegen.Class
	Regions []shapegen.Region

	// Dropped counts region elements that were discarded from a multi-slot
	// asset: untagged regions, and tagged regions with no usable geometry.
	Dropped int
}

// Scan lexes an asset document and collects every paintable region element
// with its attributes, in document order.
func Scan(data []byte) ([]Element, error) {
	lex := xml.NewLexer(parse.NewInputBytes(data))

	var (
		elems            []Element
		cur              *Element
		skip             int // nesting depth of container elements
		pendingContainer bool
	)
	for {
		tt, _ := lex.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("svgasset: lex: %w", err)
			}
			return elems, nil
		case xml.StartTagToken:
			name := string(lex.Text())
			cur = nil
			switch {
			case containerTags[name]:
				pendingContainer = true
			case skip == 0 && regionTags[name]:
				cur = &Element{Name: name, Attr: make(map[string]string)}
			}
		case xml.AttributeToken:
			if cur != nil {
				cur.Attr[string(lex.Text())] = unquote(lex.AttrVal())
			}
		case xml.StartTagCloseToken:
			if pendingContainer {
				skip++
				pendingContainer = false
			}
			if cur != nil {
				elems = append(elems, *cur)
				cur = nil
			}
		case xml.StartTagCloseVoidToken:
			pendingContainer = false
			if cur != nil {
				elems = append(elems, *cur)
				cur = nil
			}
		case xml.EndTagToken:
			if containerTags[string(lex.Text())] && skip > 0 {
				skip--
			}
		}
	}
}

// Slot extracts the color slot from a class attribute value: the first
// whitespace-separated token of the form slot_<positive integer>. Tokens
// that merely resemble slot tags (slot_0, slot_x, slot_) do not count.
func Slot(class string) (int, bool) {
	for _, tok := range strings.Fields(class) {
		num, ok := strings.CutPrefix(tok, "slot_")
		if !ok || num == "" || !allDigits(num) {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil || n <= 0 {
			continue
		}
		return n, true
	}
	return 0, false
}

// Parse extracts the shape regions of a single asset. Assets with slot-tagged
// regions classify as multi-slot and keep every valid tagged region; assets
// without them classify as simple and keep one region, preferring circles
// over rects over paths. ErrNoRegions is returned when neither works.
func Parse(name string, data []byte) (Result, error) {
	elems, err := Scan(data)
	if err != nil {
		return Result{}, err
	}

	log := shapegen.Logger()
	res := Result{Name: name}

	var tagged []shapegen.Region
	untagged := 0
	for _, el := range elems {
		slot, ok := Slot(el.Attr["class"])
		if !ok {
			untagged++
			continue
		}
		r, ok := el.region(slot)
		if !ok {
			res.Dropped++
			log.Warn("tagged region has no usable geometry",
				"asset", name, "element", el.Name, "slot", slot)
			continue
		}
		tagged = append(tagged, r)
	}

	if len(tagged) > 0 {
		res.Class = shapegen.ClassMulti
		res.Regions = slotOneFirst(tagged)
		res.Dropped += untagged
		if untagged > 0 {
			log.Warn("untagged regions dropped from multi-slot asset",
				"asset", name, "count", untagged)
		}
		return res, nil
	}

	// Single-region selection: the first circle, else the first rect, else
	// the first usable path. Polygons only occur slot-tagged.
	for _, kind := range [...]string{"circle", "rect", "path"} {
		for _, el := range elems {
			if el.Name != kind {
				continue
			}
			if r, ok := el.region(0); ok {
				res.Class = shapegen.ClassSimple
				res.Regions = []shapegen.Region{r}
				return res, nil
			}
		}
	}
	return Result{}, fmt.Errorf("%s: %w", name, ErrNoRegions)
}

// region converts the element into a canonical-space region. Geometry
// attributes default to the full canvas; path and polygon elements without
// their data attribute are unusable.
func (el Element) region(slot int) (shapegen.Region, bool) {
	switch el.Name {
	case "circle":
		r := shapegen.Circle(
			el.num("cx", shapegen.CanvasSize/2),
			el.num("cy", shapegen.CanvasSize/2),
			el.num("r", shapegen.CanvasSize/2),
		)
		return r.InSlot(slot), true
	case "rect":
		r := shapegen.Rect(
			el.num("x", 0),
			el.num("y", 0),
			el.num("width", shapegen.CanvasSize),
			el.num("height", shapegen.CanvasSize),
		)
		return r.InSlot(slot), true
	case "path":
		d := strings.TrimSpace(el.Attr["d"])
		if d == "" {
			return shapegen.Region{}, false
		}
		return shapegen.Path(d).InSlot(slot), true
	case "polygon":
		points := strings.TrimSpace(el.Attr["points"])
		if points == "" {
			return shapegen.Region{}, false
		}
		return shapegen.Polygon(points).InSlot(slot), true
	}
	return shapegen.Region{}, false
}

// num parses a numeric attribute, falling back to def when the attribute is
// absent or not a plain number.
func (el Element) num(name string, def float64) float64 {
	v, ok := el.Attr[name]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// slotOneFirst moves slot-1 regions to the front, keeping document order
// within both groups, so backgrounds always paint first.
func slotOneFirst(regions []shapegen.Region) []shapegen.Region {
	out := make([]shapegen.Region, 0, len(regions))
	for _, r := range regions {
		if r.Slot == 1 {
			out = append(out, r)
		}
	}
	for _, r := range regions {
		if r.Slot != 1 {
			out = append(out, r)
		}
	}
	return out
}

// unquote strips the surrounding quotes the lexer keeps on attribute values.
func unquote(v []byte) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return string(v)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

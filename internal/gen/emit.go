package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/patternlab/shapegen"
)

// Emit renders the registry as the source of a committed Go package. The
// output is deterministic: sets ordered by key, shapes by name, regions in
// extraction order. Emitting the same registry twice yields identical bytes,
// so a clean `go generate` run leaves a committed file untouched.
func Emit(reg shapegen.Registry, cfg *Config) ([]byte, error) {
	ident := runtimeIdent(cfg.Runtime)
	var b bytes.Buffer

	b.WriteString("// Code generated by shapegen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "// Package %s holds the shape registry extracted from the asset tree.\n", cfg.Package)
	b.WriteString("//\n")
	b.WriteString("// Edit the SVG assets and regenerate; do not edit this file.\n")
	fmt.Fprintf(&b, "package %s\n\n", cfg.Package)
	fmt.Fprintf(&b, "import %q\n\n", cfg.Runtime)

	b.WriteString("// Sets is the full registry, one ShapeSet per configured asset directory.\n")
	fmt.Fprintf(&b, "var Sets = %s.NewRegistry(\n", ident)

	keys := maps.Keys(reg)
	slices.Sort(keys)
	for _, key := range keys {
		set := reg[key]
		fmt.Fprintf(&b, "\t%s.NewSet(%q,\n", ident, key)
		m := set.Meta
		fmt.Fprintf(&b, "\t\t%s.SetMeta{Name: %q, Description: %q, Icon: %q, Enabled: %t},\n",
			ident, m.Name, m.Description, m.Icon, m.Enabled)

		names := maps.Keys(set.Shapes)
		slices.Sort(names)
		for _, name := range names {
			sh := set.Shapes[name]
			fmt.Fprintf(&b, "\t\t%s.NewShape(%q, %q,\n", ident, sh.Name, sh.Label)
			for _, r := range sh.Regions {
				expr, err := regionExpr(ident, r)
				if err != nil {
					return nil, fmt.Errorf("gen: shape %q: %w", sh.Name, err)
				}
				fmt.Fprintf(&b, "\t\t\t%s,\n", expr)
			}
			b.WriteString("\t\t),\n")
		}
		b.WriteString("\t),\n")
	}
	b.WriteString(")\n\n")

	b.WriteString("// All returns every shape keyed by name, merged across all sets.\n")
	fmt.Fprintf(&b, "func All() map[string]%s.Shape {\n\treturn Sets.All()\n}\n\n", ident)
	b.WriteString("// Enabled returns the shapes of enabled sets only, keyed by name.\n")
	fmt.Fprintf(&b, "func Enabled() map[string]%s.Shape {\n\treturn Sets.Enabled()\n}\n\n", ident)
	b.WriteString("// Shapes maps every shape name to its placement function.\n")
	b.WriteString("var Shapes = Sets.Funcs()\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting output: %w", err)
	}
	return src, nil
}

func regionExpr(ident string, r shapegen.Region) (string, error) {
	var expr string
	switch r.Kind {
	case shapegen.KindCircle:
		expr = fmt.Sprintf("%s.Circle(%s, %s, %s)", ident, num(r.CX), num(r.CY), num(r.R))
	case shapegen.KindRect:
		expr = fmt.Sprintf("%s.Rect(%s, %s, %s, %s)", ident, num(r.X), num(r.Y), num(r.W), num(r.H))
	case shapegen.KindPath:
		expr = fmt.Sprintf("%s.Path(%q)", ident, r.Path)
	case shapegen.KindPolygon:
		expr = fmt.Sprintf("%s.Polygon(%q)", ident, r.Points)
	default:
		return "", fmt.Errorf("region kind %d has no constructor", r.Kind)
	}
	if r.Slot > 0 {
		expr += fmt.Sprintf(".InSlot(%d)", r.Slot)
	}
	return expr, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// runtimeIdent returns the package identifier the generated code uses to
// refer to the runtime import path.
func runtimeIdent(importPath string) string {
	base := path.Base(importPath)
	if len(base) > 1 && base[0] == 'v' && strings.TrimLeft(base[1:], "0123456789") == "" {
		base = path.Base(path.Dir(importPath))
	}
	return base
}

package shapegen

import (
	"slices"

	"golang.org/x/exp/maps"
)

// SetMeta describes a shape set to set pickers and other UI.
type SetMeta struct {
	Name        string // Display name.
	Description string // One-line description.
	Icon        string // Representative glyph or icon reference.
	Enabled     bool   // Whether the set ships turned on.

	// MultiColor reports whether any member shape is multi-slot, i.e. the set
	// needs more than one fill color to render faithfully. NewSet derives it
	// from the member shapes.
	MultiColor bool
}

// ShapeSet is a named collection of shapes sharing UI metadata.
type ShapeSet struct {
	Key    string
	Meta   SetMeta
	Shapes map[string]Shape
}

// NewSet builds a shape set from its members, keyed by shape name. The
// MultiColor flag of the metadata is recomputed from the members.
func NewSet(key string, meta SetMeta, shapes ...Shape) ShapeSet {
	meta.MultiColor = false
	set := ShapeSet{Key: key, Meta: meta, Shapes: make(map[string]Shape, len(shapes))}
	for _, s := range shapes {
		set.Shapes[s.Name] = s
		if s.Class == ClassMulti {
			set.Meta.MultiColor = true
		}
	}
	return set
}

// Registry maps set keys to shape sets. It is built once, either by the
// generator or by NewRegistry in generated code, and is read-only afterwards.
type Registry map[string]ShapeSet

// NewRegistry builds a registry from shape sets, keyed by set key.
func NewRegistry(sets ...ShapeSet) Registry {
	reg := make(Registry, len(sets))
	for _, set := range sets {
		reg[set.Key] = set
	}
	return reg
}

// All returns every shape across every set, keyed by shape name. Sets merge
// in ascending key order, so a name collision resolves to the lexically last
// set. The generator refuses to emit colliding registries, so merges over
// generated data are collision-free.
func (r Registry) All() map[string]Shape {
	out := make(map[string]Shape)
	for _, key := range r.sortedKeys() {
		for name, s := range r[key].Shapes {
			out[name] = s
		}
	}
	return out
}

// Enabled returns the shapes of enabled sets only, keyed by shape name.
// Merge order matches All.
func (r Registry) Enabled() map[string]Shape {
	out := make(map[string]Shape)
	for _, key := range r.sortedKeys() {
		set := r[key]
		if !set.Meta.Enabled {
			continue
		}
		for name, s := range set.Shapes {
			out[name] = s
		}
	}
	return out
}

// Funcs returns a flat shape-name to placement-function map over every set,
// for callers that predate shape sets.
func (r Registry) Funcs() map[string]PlaceFunc {
	shapes := r.All()
	out := make(map[string]PlaceFunc, len(shapes))
	for name, s := range shapes {
		out[name] = s.Place
	}
	return out
}

func (r Registry) sortedKeys() []string {
	keys := maps.Keys(r)
	slices.Sort(keys)
	return keys
}

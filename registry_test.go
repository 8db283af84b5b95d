package shapegen

import (
	"testing"
)

func testRegistry() Registry {
	return NewRegistry(
		NewSet("basic",
			SetMeta{Name: "Basic", Enabled: true},
			NewShape("circle", "Circle", Circle(32, 32, 30)),
			NewShape("square", "Square", Rect(8, 8, 48, 48)),
		),
		NewSet("flags",
			SetMeta{Name: "Flags", Enabled: false},
			NewShape("stripes", "Stripes",
				Rect(0, 0, 64, 64).InSlot(1),
				Rect(0, 0, 64, 21).InSlot(2),
			),
		),
	)
}

func TestNewSetDerivesMultiColor(t *testing.T) {
	reg := testRegistry()

	if reg["basic"].Meta.MultiColor {
		t.Error("basic set has only simple shapes, MultiColor should be false")
	}
	if !reg["flags"].Meta.MultiColor {
		t.Error("flags set has a multi-slot shape, MultiColor should be true")
	}

	// An explicitly set flag is overridden by what the members actually are.
	set := NewSet("x", SetMeta{MultiColor: true}, NewShape("dot", "Dot", Circle(32, 32, 4)))
	if set.Meta.MultiColor {
		t.Error("MultiColor not recomputed from members")
	}
}

func TestRegistryAll(t *testing.T) {
	all := testRegistry().All()

	want := []string{"circle", "square", "stripes"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d shapes, want %d", len(all), len(want))
	}
	for _, name := range want {
		s, ok := all[name]
		if !ok {
			t.Errorf("All() is missing %q", name)
			continue
		}
		if s.Name != name {
			t.Errorf("All()[%q].Name = %q", name, s.Name)
		}
	}
}

func TestRegistryEnabled(t *testing.T) {
	enabled := testRegistry().Enabled()

	if len(enabled) != 2 {
		t.Fatalf("Enabled() returned %d shapes, want 2", len(enabled))
	}
	if _, ok := enabled["stripes"]; ok {
		t.Error("Enabled() included a shape from a disabled set")
	}
	for _, name := range []string{"circle", "square"} {
		if _, ok := enabled[name]; !ok {
			t.Errorf("Enabled() is missing %q", name)
		}
	}
}

func TestRegistryFuncs(t *testing.T) {
	funcs := testRegistry().Funcs()

	place, ok := funcs["circle"]
	if !ok {
		t.Fatal("Funcs() is missing circle")
	}
	elems := place(100, 50, 32)
	if len(elems) != 1 || elems[0].Kind != KindCircle {
		t.Fatalf("placement function returned %+v, want one circle", elems)
	}
	if !near(elems[0].CX, 100) || !near(elems[0].CY, 50) || !near(elems[0].R, 15) {
		t.Errorf("circle = (%v, %v, r=%v), want (100, 50, r=15)", elems[0].CX, elems[0].CY, elems[0].R)
	}
}

func TestRegistryMergeOrderDeterministic(t *testing.T) {
	// When two sets carry the same shape name, the merge resolves to the
	// lexically last set, every time. The generator refuses such registries,
	// but hand-assembled ones must still behave deterministically.
	reg := NewRegistry(
		NewSet("aaa", SetMeta{Enabled: true}, NewShape("dot", "Dot A", Circle(32, 32, 4))),
		NewSet("zzz", SetMeta{Enabled: true}, NewShape("dot", "Dot Z", Circle(32, 32, 8))),
	)

	for i := 0; i < 50; i++ {
		got := reg.All()["dot"]
		if got.Label != "Dot Z" {
			t.Fatalf("All()[dot].Label = %q, want shape from lexically last set", got.Label)
		}
	}
}

func TestRegistryEmpty(t *testing.T) {
	var reg Registry
	if got := reg.All(); len(got) != 0 {
		t.Errorf("All() on empty registry = %v, want empty", got)
	}
	if got := reg.Enabled(); len(got) != 0 {
		t.Errorf("Enabled() on empty registry = %v, want empty", got)
	}
	if got := reg.Funcs(); len(got) != 0 {
		t.Errorf("Funcs() on empty registry = %v, want empty", got)
	}
}

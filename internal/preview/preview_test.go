package preview

import (
	"testing"

	"github.com/patternlab/shapegen"
)

func previewRegistry() shapegen.Registry {
	return shapegen.NewRegistry(
		shapegen.NewSet("basic",
			shapegen.SetMeta{Name: "Basic", Enabled: true},
			shapegen.NewShape("circle", "Circle", shapegen.Circle(32, 32, 30)),
		),
		shapegen.NewSet("flags",
			shapegen.SetMeta{Name: "Flags"},
			shapegen.NewShape("stripes", "Stripes",
				shapegen.Rect(0, 0, 64, 64).InSlot(1),
				shapegen.Rect(0, 22, 64, 20).InSlot(2),
			),
		),
	)
}

func TestSheet(t *testing.T) {
	img, err := Sheet(previewRegistry(), Options{Cell: 32, Columns: 8, All: true})
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	if got := img.Bounds(); got.Dx() != 64 || got.Dy() != 32 {
		t.Fatalf("Sheet() bounds = %v, want 64x32 (two cells, one row)", got)
	}

	// Cell 0 holds the circle: r = 30 * (24/64) = 11.25 around the cell
	// center, so the center pixel is ink and the corner stays paper.
	if got := img.NRGBAAt(16, 16); got != ink {
		t.Errorf("circle center pixel = %v, want ink %v", got, ink)
	}
	if got := img.NRGBAAt(2, 2); got != paper {
		t.Errorf("circle corner pixel = %v, want paper %v", got, paper)
	}

	// Cell 1 holds the stripes: the slot-2 band (y 12.25..19.75) overlays
	// the slot-1 background (36..60 x 4..28).
	if got, want := img.NRGBAAt(48, 16), palette[1]; got != want {
		t.Errorf("stripe band pixel = %v, want slot-2 tint %v", got, want)
	}
	if got, want := img.NRGBAAt(48, 6), palette[0]; got != want {
		t.Errorf("background pixel = %v, want slot-1 tint %v", got, want)
	}
	if got := img.NRGBAAt(34, 2); got != paper {
		t.Errorf("outside-background pixel = %v, want paper %v", got, paper)
	}
}

func TestSheetEnabledOnly(t *testing.T) {
	img, err := Sheet(previewRegistry(), Options{Cell: 32})
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	if got := img.Bounds(); got.Dx() != 32 || got.Dy() != 32 {
		t.Fatalf("Sheet() bounds = %v, want a single cell (flags set is disabled)", got)
	}
	if got := img.NRGBAAt(16, 16); got != ink {
		t.Errorf("center pixel = %v, want ink %v", got, ink)
	}
}

func TestSheetEmpty(t *testing.T) {
	if _, err := Sheet(shapegen.Registry{}, Options{All: true}); err == nil {
		t.Error("Sheet() on an empty registry returned nil error")
	}
	disabledOnly := shapegen.NewRegistry(
		shapegen.NewSet("flags",
			shapegen.SetMeta{Name: "Flags"},
			shapegen.NewShape("dot", "Dot", shapegen.Circle(32, 32, 4)),
		),
	)
	if _, err := Sheet(disabledOnly, Options{}); err == nil {
		t.Error("Sheet() with only disabled sets returned nil error")
	}
}

func TestSheetSkipsUnparseablePath(t *testing.T) {
	reg := shapegen.NewRegistry(
		shapegen.NewSet("flags",
			shapegen.SetMeta{Name: "Flags", Enabled: true},
			shapegen.NewShape("bad", "Bad",
				shapegen.Rect(0, 0, 64, 64).InSlot(1),
				shapegen.Path("X9").InSlot(2),
			),
		),
	)
	img, err := Sheet(reg, Options{Cell: 32, Columns: 1})
	if err != nil {
		t.Fatalf("Sheet() error = %v", err)
	}
	// The background still lands; the broken path is skipped.
	if got, want := img.NRGBAAt(16, 16), palette[0]; got != want {
		t.Errorf("center pixel = %v, want slot-1 tint %v", got, want)
	}
}

func TestSlotColor(t *testing.T) {
	tests := []struct {
		name string
		slot int
		want [3]uint8
	}{
		{"untagged uses ink", 0, [3]uint8{ink.R, ink.G, ink.B}},
		{"slot one", 1, [3]uint8{palette[0].R, palette[0].G, palette[0].B}},
		{"slot two", 2, [3]uint8{palette[1].R, palette[1].G, palette[1].B}},
		{"cycles past palette end", 7, [3]uint8{palette[0].R, palette[0].G, palette[0].B}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotColor(tt.slot)
			if [3]uint8{got.R, got.G, got.B} != tt.want {
				t.Errorf("slotColor(%d) = %v, want %v", tt.slot, got, tt.want)
			}
		})
	}
}

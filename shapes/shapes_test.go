package shapes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/patternlab/shapegen"
	"github.com/patternlab/shapegen/internal/gen"
	"github.com/patternlab/shapegen/internal/normalize"
)

func TestRegistryContents(t *testing.T) {
	if len(Sets) != 3 {
		t.Fatalf("len(Sets) = %d, want 3", len(Sets))
	}
	all := All()
	if len(all) != 16 {
		t.Errorf("len(All()) = %d, want 16", len(all))
	}
	enabled := Enabled()
	if len(enabled) != 12 {
		t.Errorf("len(Enabled()) = %d, want 12", len(enabled))
	}
	if len(Shapes) != len(all) {
		t.Errorf("len(Shapes) = %d, want %d", len(Shapes), len(all))
	}

	if got := all["stripes"].Class; got != shapegen.ClassMulti {
		t.Errorf("stripes class = %v, want %v", got, shapegen.ClassMulti)
	}
	if _, ok := enabled["stripes"]; ok {
		t.Error("Enabled() includes stripes from the disabled flags set")
	}
	for name := range enabled {
		if _, ok := all[name]; !ok {
			t.Errorf("Enabled() shape %q missing from All()", name)
		}
	}
	if !Sets["flags"].Meta.MultiColor {
		t.Error("flags Meta.MultiColor = false, want true")
	}
	if Sets["basic"].Meta.MultiColor {
		t.Error("basic Meta.MultiColor = true, want false")
	}
}

// TestRegenerate proves the committed file is exactly what the pipeline
// produces from the committed assets.
func TestRegenerate(t *testing.T) {
	cfg, err := gen.LoadConfig(filepath.Join("..", "assets", "shapegen.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// Committed assets must already carry their backgrounds; check before
	// Build so a stale tree fails without being rewritten.
	for _, sc := range cfg.Sets {
		rep, err := normalize.Dir(filepath.Join("..", "assets", sc.Dir), normalize.WithDryRun())
		if err != nil {
			t.Fatalf("normalize.Dir(%s) error = %v", sc.Dir, err)
		}
		if rep.Changed() {
			t.Fatalf("assets in %s need normalization (%v); run shapegen normalize", sc.Dir, rep.Injected)
		}
	}

	reg, rep, err := gen.Build(cfg, filepath.Join("..", "assets"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rep.Injected != 0 || rep.Dropped != 0 || len(rep.Skipped) != 0 {
		t.Fatalf("Build() report = %+v, want a clean pass over committed assets", rep)
	}

	src, err := gen.Emit(reg, cfg)
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	disk, err := os.ReadFile("shapes.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, disk) {
		t.Errorf("shapes.go is stale; run go generate (-want disk +got pipeline):\n%s",
			cmp.Diff(string(disk), string(src)))
	}
}

func TestPlaceThroughRegistry(t *testing.T) {
	els := Shapes["circle"](100, 50, 32)
	if len(els) != 1 {
		t.Fatalf("circle placed %d elements, want 1", len(els))
	}
	if el := els[0]; el.CX != 100 || el.CY != 50 || el.R != 15 {
		t.Errorf("circle at (100,50,32) = (%v,%v r=%v), want (100,50 r=15)", el.CX, el.CY, el.R)
	}

	els = Shapes["stripes"](100, 100, 64)
	if len(els) != 3 {
		t.Fatalf("stripes placed %d elements, want 3", len(els))
	}
	bg := els[0]
	if bg.Slot != 1 || bg.X != 68 || bg.Y != 68 || bg.W != 64 || bg.H != 64 {
		t.Errorf("stripes background = %+v, want full canvas at (68,68)", bg)
	}
	if band := els[1]; band.Y != 80 || band.H != 12 {
		t.Errorf("first band at y=%v h=%v, want y=80 h=12", band.Y, band.H)
	}

	// A mirrored multi-slot rect keeps positive extents.
	els = Shapes["banner"](0, 0, 64, shapegen.FlipY())
	pole := els[2]
	if pole.Y != -20 || pole.H != 8 {
		t.Errorf("flipped banner footer at y=%v h=%v, want y=-20 h=8", pole.Y, pole.H)
	}
}

package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/patternlab/shapegen"
	"github.com/patternlab/shapegen/internal/normalize"
	"github.com/patternlab/shapegen/internal/svgasset"
)

// ErrShapeCollision reports a shape name appearing in more than one set.
// The flat lookup maps would silently shadow one of the shapes, so the build
// refuses instead; rename the asset file in one of the sets.
var ErrShapeCollision = errors.New("gen: shape name collision")

// Report summarizes one Build: what made it into the registry and what did
// not. Skipped assets and dropped regions are expected during asset
// authoring; they surface here (and in the log) instead of failing the build.
type Report struct {
	// Shapes is the number of shapes across all sets.
	Shapes int
	// Injected is the number of backgrounds added by the normalize phase.
	Injected int
	// Skipped lists assets excluded from the registry, as "set/file: reason".
	Skipped []string
	// Dropped is the number of region elements discarded from multi-slot
	// assets (untagged regions and tagged regions without geometry).
	Dropped int
}

func (rep *Report) skip(key, file string, err error) {
	rep.Skipped = append(rep.Skipped, fmt.Sprintf("%s/%s: %v", key, file, err))
}

// Build assembles the registry from the configured asset tree. Each set
// directory is normalized first and parsed after, in that order; extraction
// must only ever see normalized documents.
//
// Unreadable or unparseable assets are skipped with a warning. Only
// configuration-level problems fail the build: a missing set directory, or
// two sets claiming the same shape name.
func Build(cfg *Config, assetRoot string) (shapegen.Registry, *Report, error) {
	log := shapegen.Logger()
	titler := cases.Title(language.English)

	reg := make(shapegen.Registry, len(cfg.Sets))
	rep := &Report{}
	owner := make(map[string]string) // shape name -> set key

	for _, sc := range cfg.Sets {
		dir := filepath.Join(assetRoot, sc.Dir)

		nrep, err := normalize.Dir(dir)
		if err != nil {
			return nil, rep, fmt.Errorf("gen: set %s: %w", sc.Key, err)
		}
		rep.Injected += len(nrep.Injected)
		for file, ferr := range nrep.Failed {
			// The asset may still parse without a background; extraction
			// decides whether it survives.
			log.Warn("normalize failed", "set", sc.Key, "asset", file, "err", ferr)
		}

		set := shapegen.ShapeSet{
			Key: sc.Key,
			Meta: shapegen.SetMeta{
				Name:        sc.Name,
				Description: sc.Description,
				Icon:        sc.Icon,
				Enabled:     sc.Enabled,
			},
			Shapes: make(map[string]shapegen.Shape),
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, rep, fmt.Errorf("gen: set %s: %w", sc.Key, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				rep.skip(sc.Key, e.Name(), err)
				log.Warn("asset unreadable", "asset", path, "err", err)
				continue
			}

			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			res, err := svgasset.Parse(name, data)
			if err != nil {
				rep.skip(sc.Key, e.Name(), err)
				log.Warn("asset skipped", "asset", path, "err", err)
				continue
			}
			rep.Dropped += res.Dropped

			if prev, taken := owner[name]; taken {
				return nil, rep, fmt.Errorf("%w: %q in sets %q and %q",
					ErrShapeCollision, name, prev, sc.Key)
			}
			owner[name] = sc.Key

			shape := shapegen.NewShape(name, label(titler, name), res.Regions...)
			set.Shapes[name] = shape
			if shape.Class == shapegen.ClassMulti {
				set.Meta.MultiColor = true
			}
			rep.Shapes++
			log.Debug("shape extracted",
				"set", sc.Key, "shape", name, "class", shape.Class, "regions", len(shape.Regions))
		}

		reg[sc.Key] = set
		log.Info("set built",
			"set", sc.Key, "shapes", len(set.Shapes), "multiColor", set.Meta.MultiColor)
	}
	return reg, rep, nil
}

// label derives the display label from an asset file name:
// "half-moon" becomes "Half Moon".
func label(titler cases.Caser, name string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titler.String(words)
}

// Run executes the whole pipeline: build the registry from assetRoot per cfg,
// render it, and write the generated file to outPath. Per-asset problems are
// in the report; an error means the run produced no output.
func Run(cfg *Config, assetRoot, outPath string) (*Report, error) {
	reg, rep, err := Build(cfg, assetRoot)
	if err != nil {
		return rep, err
	}
	src, err := Emit(reg, cfg)
	if err != nil {
		return rep, err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rep, err
		}
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return rep, err
	}
	shapegen.Logger().Info("registry written", "path", outPath, "shapes", rep.Shapes)
	return rep, nil
}

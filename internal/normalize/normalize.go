// Package normalize rewrites multi-slot assets so every one of them carries
// an explicit slot-1 background region.
//
// Authors usually draw the foreground slots and leave the background implied.
// The extraction pipeline depends on slot 1 being present and first, so this
// package splices a full-canvas background into any slot-tagged asset missing
// one, right inside the asset's outermost group. Assets that already have a
// slot-1 region, and assets with no slot tags at all, pass through untouched,
// so a second run never changes a file again.
package normalize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"github.com/patternlab/shapegen"
	"github.com/patternlab/shapegen/internal/svgasset"
)

// Background is the region spliced into multi-slot assets that lack a slot-1
// background: the full canonical canvas with a placeholder fill.
const Background = `<rect class="slot_1" x="0" y="0" width="64" height="64" fill="#ffffff"/>`

// indent precedes the injected background so it reads like hand-authored markup.
const indent = "\n  "

// ErrNoAnchor reports an asset with no group and no svg root to insert a
// background into.
var ErrNoAnchor = errors.New("normalize: no insertion anchor")

// Status tells what happened to one asset.
type Status int

const (
	// StatusSkipped means the asset needed no change: it already has a
	// slot-1 region, or it carries no slot tags at all.
	StatusSkipped Status = iota

	// StatusInjected means a background was spliced in.
	StatusInjected
)

// String returns "skipped" or "injected".
func (s Status) String() string {
	if s == StatusInjected {
		return "injected"
	}
	return "skipped"
}

// Inject splices a slot-1 background into one asset document. The input
// comes back unchanged (same bytes) when the asset is not a normalization
// candidate, so running Inject twice equals running it once.
func Inject(data []byte) ([]byte, Status, error) {
	candidate, err := needsBackground(data)
	if err != nil {
		return nil, StatusSkipped, err
	}
	if !candidate {
		return data, StatusSkipped, nil
	}

	anchor, err := insertionOffset(data)
	if err != nil {
		return nil, StatusSkipped, err
	}

	out := make([]byte, 0, len(data)+len(indent)+len(Background))
	out = append(out, data[:anchor]...)
	out = append(out, indent...)
	out = append(out, Background...)
	out = append(out, data[anchor:]...)
	return out, StatusInjected, nil
}

// needsBackground reports whether the asset carries slot tags but no slot-1
// region. Only such assets are normalization candidates; anything else must
// not be touched.
func needsBackground(data []byte) (bool, error) {
	elems, err := svgasset.Scan(data)
	if err != nil {
		return false, err
	}
	hasSlot := false
	for _, el := range elems {
		slot, ok := svgasset.Slot(el.Attr["class"])
		if !ok {
			continue
		}
		if slot == 1 {
			return false, nil
		}
		hasSlot = true
	}
	return hasSlot, nil
}

// insertionOffset locates the byte offset right after the opening tag the
// background belongs under: the first non-void <g> in the paint tree, or
// failing that the <svg> root. Groups inside non-painting containers are
// not anchors; a background spliced into a defs or clipPath subtree would
// be invisible to extraction, so every later pass would inject it again.
func insertionOffset(data []byte) (int, error) {
	input := parse.NewInputBytes(data)
	lex := xml.NewLexer(input)

	groupEnd, rootEnd := -1, -1
	tag := ""
	skip := 0 // nesting depth of container elements, as in svgasset.Scan
	pendingContainer := false
	for {
		tt, _ := lex.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("normalize: lex: %w", err)
			}
			if groupEnd >= 0 {
				return groupEnd, nil
			}
			if rootEnd >= 0 {
				return rootEnd, nil
			}
			return 0, ErrNoAnchor
		case xml.StartTagToken:
			tag = string(lex.Text())
			if svgasset.IsContainer(tag) {
				pendingContainer = true
			}
		case xml.StartTagCloseToken:
			if pendingContainer {
				skip++
				pendingContainer = false
			}
			// Offset is the input position just past the ">".
			switch {
			case tag == "g" && skip == 0 && groupEnd < 0:
				groupEnd = input.Offset()
			case tag == "svg" && skip == 0 && rootEnd < 0:
				rootEnd = input.Offset()
			}
			tag = ""
		case xml.StartTagCloseVoidToken:
			pendingContainer = false
			tag = ""
		case xml.EndTagToken:
			if svgasset.IsContainer(string(lex.Text())) && skip > 0 {
				skip--
			}
		}
	}
}

// File normalizes the asset at path, rewriting it in place only when a
// background had to be added.
func File(path string) (Status, error) {
	return normalizeFile(path, false)
}

func normalizeFile(path string, dry bool) (Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StatusSkipped, err
	}
	out, status, err := Inject(data)
	if err != nil {
		return StatusSkipped, err
	}
	if status == StatusInjected && !dry {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return StatusSkipped, err
		}
	}
	return status, nil
}

// DirOption configures a directory pass.
type DirOption func(*dirOptions)

type dirOptions struct {
	dryRun bool
}

// WithDryRun reports what would change without rewriting any file.
func WithDryRun() DirOption {
	return func(o *dirOptions) {
		o.dryRun = true
	}
}

// Report summarizes one directory pass. File names are relative to the
// directory, in the order they were visited.
type Report struct {
	Injected []string
	Skipped  []string
	Failed   map[string]error
}

// Changed reports whether any file was (or in a dry run, would be) rewritten.
func (r Report) Changed() bool { return len(r.Injected) > 0 }

// Dir normalizes every .svg file directly inside dir, in name order.
// Per-file failures land in the report and do not stop the pass; the
// returned error is reserved for an unreadable directory.
func Dir(dir string, opts ...DirOption) (Report, error) {
	var o dirOptions
	for _, opt := range opts {
		opt(&o)
	}

	rep := Report{Failed: make(map[string]error)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return rep, err
	}

	log := shapegen.Logger()
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		status, err := normalizeFile(path, o.dryRun)
		switch {
		case err != nil:
			rep.Failed[e.Name()] = err
			log.Warn("normalize failed", "asset", path, "err", err)
		case status == StatusInjected:
			rep.Injected = append(rep.Injected, e.Name())
			log.Debug("background injected", "asset", path, "dryRun", o.dryRun)
		default:
			rep.Skipped = append(rep.Skipped, e.Name())
		}
	}
	log.Info("normalize pass done",
		"dir", dir, "injected", len(rep.Injected), "skipped", len(rep.Skipped), "failed", len(rep.Failed))
	return rep, nil
}

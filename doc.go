// Package shapegen turns vector shape assets into parameterized placement
// functions for pattern-layout engines.
//
// # Overview
//
// shapegen is a build-time pipeline: it reads a tree of small SVG assets,
// extracts the drawable regions of each one, and generates a Go package of
// shape sets whose shapes can be placed anywhere on a canvas at any size,
// optionally mirrored. The pattern engine consuming the generated package
// never touches SVG; it works with the plain geometry this package defines.
//
// # Quick Start
//
//	import (
//		"github.com/patternlab/shapegen"
//		"github.com/patternlab/shapegen/shapes"
//	)
//
//	// Look up a shape and place it (position, then size in canvas units)
//	elems := shapes.Shapes["circle"](100, 100, 64)
//
//	// Mirror a placement
//	elems = shapes.Shapes["pennant"](100, 100, 64, shapegen.FlipX())
//
//	for _, el := range elems {
//		// el.Kind tells what to draw, el.Slot which color to fill with
//	}
//
// # Canonical Space
//
// All asset geometry lives in a 64x64 unit space with the origin at the
// top-left corner and (32, 32) at the center. Placement rescales from this
// space: size 64 reproduces the asset at authored scale, size 32 at half
// scale. Path and polygon data is never rewritten; it is placed with the
// affine chain translate(x, y) * scale(s) * translate(-32, -32).
//
// # Shape Classes
//
// An asset with slot-tagged regions (class="slot_1", "slot_2", ...) becomes a
// multi-slot shape: an ordered region list where each region carries the color
// slot it composites into, backgrounds (slot 1) first. An asset without slot
// tags becomes a simple shape: a single region, single color.
//
// # Pipeline
//
// The pipeline runs from go generate or the shapegen command:
//   - normalize: inject missing slot-1 backgrounds into multi-slot assets
//   - extract: parse region elements out of each asset
//   - generate: emit the registry package (shapes/) consumed at runtime
//
// This package holds the runtime data model only; the pipeline itself lives
// in the internal packages and in cmd/shapegen.
package shapegen

//go:generate go run ./cmd/shapegen generate -config assets/shapegen.yaml -assets assets -out shapes/shapes.go

// Version information
const (
	// Version is the current version of the pipeline
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

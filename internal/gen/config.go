// Package gen builds the shape registry from an asset tree and emits it as a
// generated Go package.
//
// A build runs in fixed phases per configured set: normalize the set's asset
// directory (backgrounds must exist before extraction reads a file), extract
// regions from every asset, assemble shapes into the registry. Emit then
// renders the registry deterministically, so rebuilding unchanged assets
// reproduces the generated file byte for byte.
package gen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Errors reported while loading a pipeline config.
var (
	ErrNoSets       = errors.New("gen: config names no shape sets")
	ErrDuplicateKey = errors.New("gen: duplicate set key")
)

// defaultRuntime is the import path of the runtime package the generated
// code depends on.
const defaultRuntime = "github.com/patternlab/shapegen"

// Config drives one pipeline run: what the generated package is called and
// which asset directories feed which shape sets.
type Config struct {
	// Package is the package name of the generated registry.
	Package string
	// Runtime is the import path of the shapegen runtime package.
	Runtime string
	// Sets lists the shape sets to build, one asset directory each. Output
	// order does not depend on list order; sets emit sorted by key.
	Sets []SetConfig
}

// SetConfig describes one shape set and the directory it is built from.
type SetConfig struct {
	// Key identifies the set in the registry.
	Key string
	// Dir is the asset directory, relative to the asset root.
	Dir string
	// Name is the display name shown by set pickers.
	Name string
	// Description is a one-line description of the set.
	Description string
	// Icon is the representative glyph for the set.
	Icon string
	// Enabled marks the set as shipped turned on.
	Enabled bool
}

func (c *Config) init() {
	if c.Package == "" {
		c.Package = "shapes"
	}
	if c.Runtime == "" {
		c.Runtime = defaultRuntime
	}
	for i := range c.Sets {
		if c.Sets[i].Dir == "" {
			c.Sets[i].Dir = c.Sets[i].Key
		}
	}
}

func (c *Config) validate() error {
	if len(c.Sets) == 0 {
		return ErrNoSets
	}
	seen := make(map[string]bool, len(c.Sets))
	for _, sc := range c.Sets {
		if sc.Key == "" {
			return errors.New("gen: set with empty key")
		}
		if seen[sc.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, sc.Key)
		}
		seen[sc.Key] = true
	}
	return nil
}

// LoadConfig reads and validates a pipeline config. Unknown fields are
// rejected so a typo fails the build instead of silently dropping metadata.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means an empty document; validation turns that into the
		// clearer ErrNoSets.
		return nil, fmt.Errorf("gen: reading %s: %w", filename, err)
	}
	c.init()
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &c, nil
}

// load.go - user preset files layered over the built-in catalog.

package style

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk schema: a single document holding a
// presets list. Unknown keys are rejected to catch typos early.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Parse decodes a preset document from r and validates every entry.
// An empty document yields an empty list.
func Parse(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc presetFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("style: decode presets: %w", err)
	}
	for _, p := range doc.Presets {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	return doc.Presets, nil
}

// LoadFile reads a preset file and merges it over the built-in catalog:
// same-name entries replace built-ins, new names append after the
// curated order.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("style: open presets: %w", err)
	}
	defer f.Close()

	extra, err := Parse(f)
	if err != nil {
		return Catalog{}, err
	}

	return Builtin().Merge(extra), nil
}

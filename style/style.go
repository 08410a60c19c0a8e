// style.go - preset and tuning types plus catalog lookups.

package style

import (
	"errors"
	"fmt"
)

// ControlKind selects the structural conditioning mode a preset renders
// under. Geometric styles prefer canny edges; organic ones line art.
type ControlKind string

const (
	// ControlLineart conditions on extracted line art.
	ControlLineart ControlKind = "lineart"
	// ControlCanny conditions on hard edges, best for geometric styles.
	ControlCanny ControlKind = "canny"
	// ControlScribble conditions on rough strokes.
	ControlScribble ControlKind = "scribble"
)

// validControls is the closed set accepted by Parse.
var validControls = map[ControlKind]struct{}{
	ControlLineart:  {},
	ControlCanny:    {},
	ControlScribble: {},
}

var (
	// ErrUnknownStyle reports a Lookup for a name the catalog lacks.
	ErrUnknownStyle = errors.New("style: unknown preset")

	// ErrInvalidPreset reports a parsed preset violating the schema
	// (missing name, unknown control kind, out-of-range override).
	ErrInvalidPreset = errors.New("style: invalid preset")
)

// Preset describes one named enhancement style.
type Preset struct {
	Name           string      `yaml:"name"`
	Control        ControlKind `yaml:"control"`
	Prompt         string      `yaml:"prompt"`
	NegativePrompt string      `yaml:"negative_prompt"`

	// Tuning overrides; zero means "inherit the pipeline default".
	DenoiseStrength   float64 `yaml:"denoise_strength,omitempty"`
	ConditioningScale float64 `yaml:"conditioning_scale,omitempty"`
	GuidanceScale     float64 `yaml:"guidance_scale,omitempty"`
}

// Tuning is the effective parameter set a rendition runs with.
type Tuning struct {
	ConditioningScale float64 `yaml:"conditioning_scale"`
	GuidanceStart     float64 `yaml:"guidance_start"`
	GuidanceEnd       float64 `yaml:"guidance_end"`
	GuidanceScale     float64 `yaml:"guidance_scale"`
	InferenceSteps    int     `yaml:"inference_steps"`
	DenoiseStrength   float64 `yaml:"denoise_strength"`
}

// DefaultTuning carries the pipeline-level defaults presets override.
// Structure preservation is the priority: conditioning runs high and
// hot, guidance stays low so prompts cannot redraw geometry.
var DefaultTuning = Tuning{
	ConditioningScale: 1.15,
	GuidanceStart:     0.0,
	GuidanceEnd:       0.95,
	GuidanceScale:     5.0,
	InferenceSteps:    35,
	DenoiseStrength:   0.28,
}

// Resolved returns the effective tuning for the preset: overrides apply
// where set (positive), base values elsewhere.
func (p Preset) Resolved(base Tuning) Tuning {
	if p.DenoiseStrength > 0 {
		base.DenoiseStrength = p.DenoiseStrength
	}
	if p.ConditioningScale > 0 {
		base.ConditioningScale = p.ConditioningScale
	}
	if p.GuidanceScale > 0 {
		base.GuidanceScale = p.GuidanceScale
	}

	return base
}

// validate checks the schema rules shared by built-ins and loaded files.
func (p Preset) validate() error {
	if p.Name == "" {
		return fmt.Errorf("missing name: %w", ErrInvalidPreset)
	}
	if _, ok := validControls[p.Control]; !ok {
		return fmt.Errorf("preset %q: control %q: %w", p.Name, p.Control, ErrInvalidPreset)
	}
	if p.DenoiseStrength < 0 || p.DenoiseStrength > 1 {
		return fmt.Errorf("preset %q: denoise_strength %v: %w", p.Name, p.DenoiseStrength, ErrInvalidPreset)
	}
	if p.ConditioningScale < 0 {
		return fmt.Errorf("preset %q: conditioning_scale %v: %w", p.Name, p.ConditioningScale, ErrInvalidPreset)
	}

	return nil
}

// Catalog is an ordered, immutable preset collection.
type Catalog struct {
	byName map[string]Preset
	order  []string
}

// Builtin returns the curated catalog in presentation order.
func Builtin() Catalog {
	c := Catalog{byName: make(map[string]Preset, len(builtinOrder))}
	for _, name := range builtinOrder {
		c.byName[name] = builtinPresets[name]
		c.order = append(c.order, name)
	}

	return c
}

// Lookup resolves name within the catalog.
func (c Catalog) Lookup(name string) (Preset, error) {
	p, ok := c.byName[name]
	if !ok {
		return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
	}

	return p, nil
}

// Names lists the presets in catalog order. The slice is a copy.
func (c Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Len reports the number of presets.
func (c Catalog) Len() int {
	return len(c.order)
}

// Merge returns a copy of c with extra presets applied: a known name
// replaces in place, new names append in their given order.
func (c Catalog) Merge(extra []Preset) Catalog {
	out := Catalog{
		byName: make(map[string]Preset, len(c.byName)+len(extra)),
		order:  append([]string(nil), c.order...),
	}
	for name, p := range c.byName {
		out.byName[name] = p
	}
	for _, p := range extra {
		if _, known := out.byName[p.Name]; !known {
			out.order = append(out.order, p.Name)
		}
		out.byName[p.Name] = p
	}

	return out
}

// Lookup resolves name against the built-in catalog.
func Lookup(name string) (Preset, error) {
	return Builtin().Lookup(name)
}

// Names lists the built-in presets in curated order.
func Names() []string {
	return Builtin().Names()
}

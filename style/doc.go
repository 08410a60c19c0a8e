// Package style catalogs the named enhancement presets: prompt material,
// control mode and tuning overrides for stylized re-rendering of sigils.
//
// The six built-in presets (watercolor, ink_brush, sacred_geometry,
// gold_leaf, cosmic, minimal_line) are tuned for geometry preservation:
// prompts insist on surface treatment only, negative prompts veto shape
// reinterpretation, and conditioning/denoise overrides tighten control
// for the geometric styles.
//
// ⚙️ Usage:
//
//	p, err := style.Lookup("watercolor")
//	tuning := p.Resolved(style.DefaultTuning)
//
// Additional presets can be layered from YAML with LoadFile; same-name
// entries replace built-ins, new names append after the curated order.
package style

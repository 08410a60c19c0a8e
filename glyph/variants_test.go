package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorforge/sigil/glyph"
)

// TestVariantsOrder pins the canonical presentation order relied on by
// GenerateAll and every UI consumer.
func TestVariantsOrder(t *testing.T) {
	require.Equal(t,
		[]glyph.Variant{glyph.Dense, glyph.Balanced, glyph.Minimal},
		glyph.Variants())
}

// TestConfigForTotal: known variants resolve to their own records, any
// unknown string resolves to Balanced.
func TestConfigForTotal(t *testing.T) {
	dense := glyph.ConfigFor(glyph.Dense)
	balanced := glyph.ConfigFor(glyph.Balanced)
	minimal := glyph.ConfigFor(glyph.Minimal)

	assert.NotEqual(t, dense, balanced)
	assert.NotEqual(t, balanced, minimal)
	assert.True(t, dense.Decorations)
	assert.True(t, balanced.Decorations)
	assert.False(t, minimal.Decorations)

	for _, odd := range []glyph.Variant{"", "cosmic", "DENSE", "Balanced "} {
		assert.Equal(t, balanced, glyph.ConfigFor(odd), "unknown %q must fall back to Balanced", odd)
	}
}

// TestMetadataForTotal mirrors the ConfigFor fallback rule and checks the
// display strings are present.
func TestMetadataForTotal(t *testing.T) {
	for _, v := range glyph.Variants() {
		md := glyph.MetadataFor(v)
		assert.NotEmpty(t, md.Title, "variant %s", v)
		assert.NotEmpty(t, md.Description, "variant %s", v)
	}
	assert.Equal(t, glyph.MetadataFor(glyph.Balanced), glyph.MetadataFor("unknown"))
}

// TestVariantMetadataCopy: the returned table is a detached copy.
func TestVariantMetadataCopy(t *testing.T) {
	table := glyph.VariantMetadata()
	require.Len(t, table, 3)

	table[glyph.Dense] = glyph.Metadata{Title: "mutated"}
	assert.Equal(t, "Dense", glyph.MetadataFor(glyph.Dense).Title,
		"registry must be immune to caller mutation")
}

// renderer.go - the injected backend port.

package enhance

import (
	"context"
	"image"

	"github.com/anchorforge/sigil/style"
)

// Request carries everything a backend needs for one rendition.
type Request struct {
	// Control is the preprocessed conditioning image: white strokes on
	// black, centered behind a protective margin.
	Control *image.Gray

	// Prompt and Negative come from the style preset verbatim.
	Prompt   string
	Negative string

	// Style is the preset name, for backends that route by style.
	Style string

	// Seed pins the rendition; equal requests must yield equal images
	// from a well-behaved backend.
	Seed int64

	// Tuning is the resolved parameter set. Retry rounds tighten it in
	// favor of structure adherence.
	Tuning style.Tuning
}

// Renderer turns a control image into a styled rendition. Implementations
// wrap a diffusion backend; tests use in-process fakes. Render must honor
// ctx and may be called from multiple goroutines at once.
type Renderer interface {
	Render(ctx context.Context, req Request) (image.Image, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, req Request) (image.Image, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, req Request) (image.Image, error) {
	return f(ctx, req)
}

// SPDX-License-Identifier: MIT
// Package: sigil/enhance
//
// enhance.go - the enhancement run: render, score, retry, rescue.
//
// Purpose:
//   - Drive an injected Renderer through the full structure-preserving
//     workflow and report every rendition with its verdict.
//
// Contract:
//   - Any first-round backend failure fails the run (wrapped with the
//     variation index and seed). Retry-round failures are non-fatal:
//     the original rendition stays.
//   - A retry replaces its original only when it scores strictly higher.
//   - PassingCount always reflects raw rendition quality; compositing
//     rescues variations without inflating it.
//
// Concurrency:
//   - One goroutine per rendition; Enhance returns only after all of
//     them finish. The Renderer must tolerate concurrent calls.
//
// Determinism:
//   - Seeds, tuning and every pixel operation are deterministic. With a
//     seed-respecting backend, two runs differ only in ID and timings.

package enhance

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anchorforge/sigil/composite"
	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/match"
	"github.com/anchorforge/sigil/raster"
	"github.com/anchorforge/sigil/style"
)

var (
	// ErrNilRenderer reports an Enhancer without a backend.
	ErrNilRenderer = errors.New("enhance: nil renderer")

	// ErrNoVariations reports a run with nothing rendered.
	ErrNoVariations = errors.New("enhance: no variations")
)

// ClassComposited marks variations whose structure comes from drawing
// the original strokes back rather than from the rendition itself.
const ClassComposited match.Class = "Structure Preserved (Composited)"

// Variation is one scored rendition.
type Variation struct {
	// Image is the final image: the rendition as the backend returned
	// it, or the composite when the run rescued it.
	Image image.Image

	// Seed the rendition ran with.
	Seed int64

	// Score grades Image against the stroke mask. Composited variations
	// carry the rescored composite with Preserved forced true and Class
	// set to ClassComposited.
	Score match.Score

	// Composited is true when the original strokes were drawn back.
	Composited bool

	// ElapsedMS is the backend latency for this rendition.
	ElapsedMS int64
}

// Result is one enhancement run.
type Result struct {
	// ID identifies the run.
	ID uuid.UUID

	// Style, Prompt and Negative echo the preset the run used.
	Style    string
	Prompt   string
	Negative string

	// Control is the preprocessing result the renditions conditioned on.
	Control raster.Result

	// Variations in seed-ladder order.
	Variations []Variation

	// PassingCount counts variations whose rendition preserved structure
	// on its own; composited rescues do not raise it.
	PassingCount int

	// BestIndex points at the first highest combined score.
	BestIndex int

	// Retried is true when the retry round ran.
	Retried bool

	// ElapsedMS is the wall time of the whole run.
	ElapsedMS int64
}

// Best returns the variation BestIndex points at.
func (r Result) Best() (Variation, error) {
	if len(r.Variations) == 0 {
		return Variation{}, ErrNoVariations
	}

	return r.Variations[r.BestIndex], nil
}

// Enhancer runs the enhancement workflow against an injected backend.
type Enhancer struct {
	renderer Renderer
	cfg      enhanceConfig
}

// New builds an Enhancer around r.
func New(r Renderer, opts ...Option) (*Enhancer, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}

	return &Enhancer{renderer: r, cfg: newEnhanceConfig(opts...)}, nil
}

// Enhance renders, scores and (when needed) rescues a ladder of styled
// renditions of sig under preset.
func (e *Enhancer) Enhance(ctx context.Context, sig glyph.Sigil, preset style.Preset) (Result, error) {
	start := time.Now()
	if e.renderer == nil {
		return Result{}, ErrNilRenderer
	}
	if e.cfg.variations < 1 {
		return Result{}, ErrNoVariations
	}

	pre := raster.ControlImage(sig, e.cfg.raster...)
	tuning := preset.Resolved(style.DefaultTuning)

	seeds := VariationSeeds(e.cfg.baseSeed, e.cfg.variations)
	variations, err := e.renderRound(ctx, pre, preset, tuning, seeds)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ID:         uuid.New(),
		Style:      preset.Name,
		Prompt:     preset.Prompt,
		Negative:   preset.NegativePrompt,
		Control:    pre,
		Variations: variations,
	}

	if passing(variations) < e.cfg.minPassing {
		res.Retried = e.retryRound(ctx, pre, preset, tuning, variations)
	}

	res.PassingCount = passing(res.Variations)
	res.BestIndex = bestIndex(res.Variations)

	if e.cfg.autoComposite {
		e.compositeFailing(pre, res.Variations)
	}

	res.ElapsedMS = time.Since(start).Milliseconds()

	return res, nil
}

// renderRound renders one rendition per seed concurrently and scores
// each against the stroke mask.
func (e *Enhancer) renderRound(ctx context.Context, pre raster.Result, preset style.Preset, tuning style.Tuning, seeds []int64) ([]Variation, error) {
	variations := make([]Variation, len(seeds))
	errs := make([]error, len(seeds))

	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			variations[i], errs[i] = e.renderOne(ctx, pre, preset, tuning, seed)
		}(i, seed)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("enhance: variation %d (seed %d): %w", i, seeds[i], err)
		}
	}

	return variations, nil
}

// renderOne asks the backend for a single rendition and scores it.
func (e *Enhancer) renderOne(ctx context.Context, pre raster.Result, preset style.Preset, tuning style.Tuning, seed int64) (Variation, error) {
	start := time.Now()
	img, err := e.renderer.Render(ctx, Request{
		Control:  pre.Control,
		Prompt:   preset.Prompt,
		Negative: preset.NegativePrompt,
		Style:    preset.Name,
		Seed:     seed,
		Tuning:   tuning,
	})
	if err != nil {
		return Variation{}, err
	}
	if img == nil {
		return Variation{}, errors.New("renderer returned no image")
	}

	return Variation{
		Image:     img,
		Seed:      seed,
		Score:     match.Compute(pre.StrokeMask, grayscale(img), e.cfg.match),
		ElapsedMS: time.Since(start).Milliseconds(),
	}, nil
}

// retryRound regenerates the failing variations on the retry seed ladder
// with stricter tuning, replacing an original only when the retry scores
// higher. Reports whether any retry was attempted.
func (e *Enhancer) retryRound(ctx context.Context, pre raster.Result, preset style.Preset, tuning style.Tuning, variations []Variation) bool {
	var failing []int
	for i, v := range variations {
		if !v.Score.Preserved {
			failing = append(failing, i)
		}
	}
	if len(failing) == 0 {
		return false
	}

	strict := stricter(tuning)
	seeds := RetrySeeds(len(failing))
	retries := make([]Variation, len(failing))
	errs := make([]error, len(failing))

	var wg sync.WaitGroup
	for i := range failing {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			retries[i], errs[i] = e.renderOne(ctx, pre, preset, strict, seeds[i])
		}(i)
	}
	wg.Wait()

	for i, idx := range failing {
		if errs[i] != nil {
			continue
		}
		if retries[i].Score.Combined > variations[idx].Score.Combined {
			variations[idx] = retries[i]
		}
	}

	return true
}

// compositeFailing draws the original strokes over every variation that
// failed the structure check, rescoring each against its composite.
func (e *Enhancer) compositeFailing(pre raster.Result, variations []Variation) {
	for i := range variations {
		if variations[i].Score.Preserved {
			continue
		}

		comp := composite.Composite(pre, variations[i].Image)
		score := match.Compute(pre.StrokeMask, grayscale(comp.Composite), e.cfg.match)
		score.Preserved = true
		score.Class = ClassComposited

		variations[i].Image = comp.Composite
		variations[i].Score = score
		variations[i].Composited = true
	}
}

// passing counts variations whose renditions preserved structure.
func passing(variations []Variation) int {
	n := 0
	for _, v := range variations {
		if v.Score.Preserved {
			n++
		}
	}

	return n
}

// bestIndex returns the first index holding the highest combined score.
func bestIndex(variations []Variation) int {
	best := 0
	for i := 1; i < len(variations); i++ {
		if variations[i].Score.Combined > variations[best].Score.Combined {
			best = i
		}
	}

	return best
}

// grayscale flattens a rendition to luminance for scoring.
func grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	return out
}

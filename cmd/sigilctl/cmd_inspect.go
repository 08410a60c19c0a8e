package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anchorforge/sigil"
	"github.com/anchorforge/sigil/glyph"
	"github.com/anchorforge/sigil/match"
	"github.com/anchorforge/sigil/raster"
	"github.com/anchorforge/sigil/svg"
)

var (
	inspectNormalize bool

	scoreIntention string
	scoreVariant   string
	scoreSize      int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Parse a sigil SVG and report its structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var scoreCmd = &cobra.Command{
	Use:   "score IMAGE",
	Short: "Score a styled rendition against its source intention",
	Long: `Rebuilds the intention's stroke mask, decodes the rendition image
(PNG or JPEG) and reports how much of the original structure survived.

Example:
  sigilctl score rendition.png --intention "Close the deal"`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectNormalize, "normalize", false,
		"Normalize the markup first and print the rewritten document")

	scoreCmd.Flags().StringVarP(&scoreIntention, "intention", "i", "", "Intention the rendition was generated from (required)")
	scoreCmd.Flags().StringVar(&scoreVariant, "variant", string(glyph.Balanced), "Variant the rendition was generated from")
	scoreCmd.Flags().IntVar(&scoreSize, "size", raster.DefaultOutputSize, "Control mask resolution in pixels")
	_ = scoreCmd.MarkFlagRequired("intention")
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	markup := string(data)
	if inspectNormalize {
		markup = svg.Normalize(markup)
		fmt.Println(markup)
	}

	info, err := svg.Parse(markup)
	if err != nil {
		return err
	}

	vb := info.ViewBox
	fmt.Printf("viewBox: %g %g %g %g\n", vb.MinX, vb.MinY, vb.Width, vb.Height)
	if info.Width != "" || info.Height != "" {
		fmt.Printf("size:    %s x %s\n", info.Width, info.Height)
	}
	fmt.Printf("shapes:  %d\n", info.Shapes)
	fmt.Printf("square:  %t\n", vb.Square())

	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	v := glyph.Variant(scoreVariant)
	if !knownVariant(v) {
		return fmt.Errorf("unknown variant %q (want one of %s)", scoreVariant, variantNames())
	}
	if scoreSize < 16 {
		return errors.New("--size must be at least 16 pixels")
	}

	rendition, err := decodeImage(args[0])
	if err != nil {
		return err
	}

	res := sigil.DistillIntention(scoreIntention)
	sig := glyph.Synthesize(res.Letters, v)
	pre := raster.ControlImage(sig, raster.WithOutputSize(scoreSize))
	logger.Debug("control mask built",
		zap.String("letters", string(res.Letters)),
		zap.Int("size", scoreSize))

	score := match.Compute(pre.StrokeMask, toGray(rendition), match.DefaultConfig())

	fmt.Printf("iou:       %.4f\n", score.IoU)
	fmt.Printf("edges:     %.4f\n", score.EdgeOverlap)
	fmt.Printf("combined:  %.4f\n", score.Combined)
	fmt.Printf("class:     %s\n", score.Class)
	fmt.Printf("preserved: %t\n", score.Preserved)

	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	return out
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anchorforge/sigil"
	"github.com/anchorforge/sigil/glyph"
)

var (
	genIntention string
	genVariant   string
	genAll       bool
	genOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate [intention words...]",
	Short: "Generate sigil SVG documents from an intention",
	Long: `Distills the intention to its letter skeleton and renders it as one
or all variants, writing .svg files into the output directory.

Examples:
  sigilctl generate --intention "Close the deal"
  sigilctl generate --all -o ./gallery I am focused and calm`,
	RunE: runGenerate,
}

var validateCmd = &cobra.Command{
	Use:   "validate [intention words...]",
	Short: "Check whether an intention is suitable for sigil work",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

var distillCmd = &cobra.Command{
	Use:   "distill [intention words...]",
	Short: "Show the letter skeleton an intention distills to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDistill,
}

func init() {
	generateCmd.Flags().StringVarP(&genIntention, "intention", "i", "", "Intention text (or pass it as arguments)")
	generateCmd.Flags().StringVar(&genVariant, "variant", string(glyph.Balanced), "Variant to render (dense, balanced, minimal)")
	generateCmd.Flags().BoolVar(&genAll, "all", false, "Render every variant")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", ".", "Output directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	text := genIntention
	if text == "" {
		text = strings.Join(args, " ")
	}
	if text == "" {
		return errors.New("an intention is required: pass --intention or plain words")
	}

	res := sigil.DistillIntention(text)
	logger.Info("intention distilled",
		zap.String("letters", string(res.Letters)),
		zap.Int("removed_vowels", len(res.RemovedVowels)),
		zap.Int("removed_duplicates", len(res.RemovedDuplicates)))

	var results []sigil.Result
	if genAll {
		results = sigil.GenerateAll(res.Letters)
	} else {
		v := glyph.Variant(genVariant)
		if !knownVariant(v) {
			return fmt.Errorf("unknown variant %q (want one of %s)", genVariant, variantNames())
		}
		results = []sigil.Result{sigil.Generate(res.Letters, v)}
	}

	if err := os.MkdirAll(genOut, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	slug := fileSlug(res.Letters)
	for _, r := range results {
		path := filepath.Join(genOut, slug+"_"+string(r.Variant)+".svg")
		if err := os.WriteFile(path, []byte(r.SVG), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("sigil written",
			zap.String("path", path),
			zap.String("variant", string(r.Variant)),
			zap.Int("bytes", len(r.SVG)))
		fmt.Println(path)
	}

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := sigil.ValidateIntention(strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Println("valid")

	return nil
}

func runDistill(cmd *cobra.Command, args []string) error {
	res := sigil.DistillIntention(strings.Join(args, " "))
	fmt.Printf("letters:    %s\n", string(res.Letters))
	fmt.Printf("vowels:     %s\n", string(res.RemovedVowels))
	fmt.Printf("duplicates: %s\n", string(res.RemovedDuplicates))

	return nil
}

// knownVariant reports whether v is one of the published variants.
// ConfigFor would silently fall back to Balanced; the CLI prefers to
// reject typos.
func knownVariant(v glyph.Variant) bool {
	for _, known := range glyph.Variants() {
		if v == known {
			return true
		}
	}

	return false
}

func variantNames() string {
	names := make([]string, 0, len(glyph.Variants()))
	for _, v := range glyph.Variants() {
		names = append(names, string(v))
	}

	return strings.Join(names, ", ")
}

// fileSlug derives a stable file-name stem from the distilled letters.
func fileSlug(letters []rune) string {
	if len(letters) == 0 {
		return "sigil"
	}

	return strings.ToLower(string(letters))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anchorforge/sigil/style"
)

var stylesPresets string

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the enhancement style presets",
	Long: `Lists every style preset with its resolved tuning. Presets from a
YAML file replace or extend the built-ins.

Example:
  sigilctl styles --presets custom.yaml`,
	RunE: runStyles,
}

func init() {
	stylesCmd.Flags().StringVar(&stylesPresets, "presets", "", "YAML file of preset overrides")
}

func runStyles(cmd *cobra.Command, args []string) error {
	catalog := style.Builtin()
	if stylesPresets != "" {
		merged, err := style.LoadFile(stylesPresets)
		if err != nil {
			return err
		}
		catalog = merged
	}

	for _, name := range catalog.Names() {
		p, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		t := p.Resolved(style.DefaultTuning)
		fmt.Printf("%-16s control=%-8s denoise=%.2f conditioning=%.2f guidance=%.1f\n",
			name, p.Control, t.DenoiseStrength, t.ConditioningScale, t.GuidanceScale)
	}

	return nil
}

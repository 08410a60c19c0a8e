// Command sigilctl drives the sigil pipeline from the shell: distill
// intentions, generate sigil documents, inspect and score them, and
// browse the enhancement style catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sigilctl",
	Short: "Deterministic sigil generation and structure tooling",
	Long: `sigilctl turns intention text into sigil SVG documents and checks
that styled renditions stay faithful to their source geometry.

The pipeline is deterministic end to end: the same intention and
variant always produce byte-identical output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(distillCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(stylesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

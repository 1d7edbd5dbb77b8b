package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/styledecl"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the typed declaration file",
	Long: `Resolve every utility class known to the framework to its rule,
render the computed CSS into documentation blocks and write one
declaration file. The output is overwritten wholesale on every run.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("output", "types/styledecl.d.ts", "Declaration file path")
	f.Bool("px-equivalents", true, "Annotate rem/em literals with px comments")
	f.Float64("root-font-size", styledecl.DefaultRootFontSize, "Base size for px conversion")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := styledecl.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Printf("Generated %s\n", config.Output)
		fmt.Printf("  Classes emitted: %d\n", result.ClassesEmitted)
		fmt.Printf("  Variants emitted: %d\n", result.VariantsEmitted)
		fmt.Printf("  Colors collected: %d\n", result.ColorsCollected)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	// Run lint after generate if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint()
	}

	return nil
}

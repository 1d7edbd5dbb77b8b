package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/styledecl"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint utility-class usage in template files",
	Long: `Check that every class token in template files resolves to a
registered rule, variant prefixes included.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"web/**/*.html",
		"web/**/*.tsx",
	}, "File patterns to scan for class attributes")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (styledecl) suffix on issues")
}

// runLint is shared between `styledecl lint` and `styledecl generate --lint`.
func runLint() error {
	lintConfig := buildLintConfig()

	lintResult, err := styledecl.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := styledecl.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		styledecl.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	if code := lintExitCode(lintResult, lintConfig.Strict); code != 0 {
		os.Exit(code)
	}

	return nil
}

// lintExitCode implements the "Soft Gate": by default only errors fail
// the build, strict mode fails on any issue.
func lintExitCode(result *styledecl.LintResult, strict bool) int {
	if strict && len(result.Issues) > 0 {
		return 1
	}
	if result.ErrorCount > 0 {
		return 1
	}
	return 0
}

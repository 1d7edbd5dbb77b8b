package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .styledecl.yaml config file",
	Long:  `Create a .styledecl.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".styledecl.yaml"); err == nil && !force {
			return fmt.Errorf(".styledecl.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".styledecl.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .styledecl.yaml")
		return nil
	},
}

const defaultConfig = `# styledecl configuration
# Docs: https://github.com/yacobolo/styledecl

# Shared settings
theme-file: ""             # YAML theme overrides ("" = built-in defaults)
verbose: false

# Generation settings
generate:
  output: types/styledecl.d.ts
  px-equivalents: true     # annotate rem/em literals with px comments
  root-font-size: 16

# Linting settings
lint:
  paths:
    - "web/**/*.html"
    - "web/**/*.tsx"
  strict: false
  output-format: issues    # issues | json
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

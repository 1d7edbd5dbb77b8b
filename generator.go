package styledecl

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generate is the main entry point: build the framework context, emit
// the declaration document and overwrite the output file in one pass.
func Generate(config Config) (*GenerateResult, error) {
	theme, err := LoadTheme(config.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("theme failed: %w", err)
	}

	ctx := BuildContext(theme)
	if config.Verbose {
		fmt.Printf("Enumerated %d class names, %d variants\n", len(ctx.ClassNames), len(ctx.Variants))
	}

	fmtr := NewFormatter(FormatterConfig{
		ShowPixelEquivalents: config.ShowPixelEquivalents,
		RootFontSize:         config.RootFontSize,
	})

	emitter := NewEmitter(ctx, fmtr)
	file, warnings, err := emitter.Emit()
	if err != nil {
		return nil, fmt.Errorf("emit failed: %w", err)
	}

	text := PrintFile(file)

	if dir := filepath.Dir(config.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
	}
	if err := os.WriteFile(config.Output, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Wrote %s (%d bytes)\n", config.Output, len(text))
	}

	return &GenerateResult{
		ClassesEmitted:  len(ctx.ClassNames),
		VariantsEmitted: len(ctx.Variants) + 1, // fixed important modifier
		ColorsCollected: len(emitter.Colors()),
		Warnings:        warnings,
	}, nil
}

package styledecl

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Theme holds the value scales the built-in rule table is parameterized
// by. Any section can be overridden from a YAML file; an overridden
// section replaces the default wholesale.
type Theme struct {
	Colors   map[string]map[string]string `koanf:"colors"`  // family -> shade -> value
	Spacing  map[string]string            `koanf:"spacing"` // token -> length
	Screens  map[string]string            `koanf:"screens"` // breakpoint -> min-width
	Opacity  []string                     `koanf:"opacity"` // scale keys, declared but unpopulated
	Variants []string                     `koanf:"variants"`
}

// DefaultTheme returns the built-in value scales.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: map[string]map[string]string{
			"blue": {
				"100": "#dbeafe",
				"300": "#93c5fd",
				"500": "#3b82f6",
				"700": "#1d4ed8",
				"900": "#1e3a8a",
			},
			"red": {
				"100": "#fee2e2",
				"300": "#fca5a5",
				"500": "#ef4444",
				"700": "#b91c1c",
				"900": "#7f1d1d",
			},
			"green": {
				"100": "#dcfce7",
				"300": "#86efac",
				"500": "#22c55e",
				"700": "#15803d",
				"900": "#14532d",
			},
			"gray": {
				"100": "#f3f4f6",
				"300": "#d1d5db",
				"500": "#6b7280",
				"700": "#374151",
				"900": "#111827",
			},
		},
		Spacing: map[string]string{
			"0": "0px",
			"1": "0.25rem",
			"2": "0.5rem",
			"4": "1rem",
			"8": "2rem",
		},
		Screens: map[string]string{
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
		},
		Opacity:  []string{"0", "25", "50", "75", "100"},
		Variants: []string{"hover", "focus", "active", "disabled", "dark", "sm", "md", "lg"},
	}
}

// LoadTheme loads theme overrides from a YAML file on top of the
// defaults. An empty path returns the defaults unchanged.
func LoadTheme(path string) (*Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme file %s: %w", path, err)
	}

	if k.Exists("colors") {
		colors := make(map[string]map[string]string)
		if err := k.Unmarshal("colors", &colors); err != nil {
			return nil, fmt.Errorf("theme colors: %w", err)
		}
		theme.Colors = colors
	}
	if k.Exists("spacing") {
		spacing := make(map[string]string)
		if err := k.Unmarshal("spacing", &spacing); err != nil {
			return nil, fmt.Errorf("theme spacing: %w", err)
		}
		theme.Spacing = spacing
	}
	if k.Exists("screens") {
		screens := make(map[string]string)
		if err := k.Unmarshal("screens", &screens); err != nil {
			return nil, fmt.Errorf("theme screens: %w", err)
		}
		theme.Screens = screens
	}
	if k.Exists("opacity") {
		theme.Opacity = k.Strings("opacity")
	}
	if k.Exists("variants") {
		theme.Variants = k.Strings("variants")
	}

	return theme, nil
}

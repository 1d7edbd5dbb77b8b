package styledecl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "types", "styledecl.d.ts")

	config := Config{
		Output:               output,
		ShowPixelEquivalents: true,
		RootFontSize:         16,
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Greater(t, result.ClassesEmitted, 0)
	assert.Greater(t, result.ColorsCollected, 0)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)

	// Standard members with documented CSS
	assert.Contains(t, content, "bg_blue_500: Property<Styled>;")
	assert.Contains(t, content, "background-color: #3b82f6;")

	// Spacing docs carry pixel equivalents
	assert.Contains(t, content, "0.25rem /* 4px *\\/")

	// Variant modifiers, including the fixed one
	assert.Contains(t, content, "hover(style: Styled): Styled;")
	assert.Contains(t, content, "important(style: Styled): Styled;")

	// Color families collected during the standard pass
	assert.Contains(t, content, `type Colors = "blue" | "gray" | "green" | "red";`)

	// Opacity scale declared but not combined
	assert.Contains(t, content, `type Opacity = "0" | "25" | "50" | "75" | "100";`)
}

func TestGenerateDeterministic(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "styledecl.d.ts")

	config := Config{Output: output, ShowPixelEquivalents: true}

	_, err := Generate(config)
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	_, err = Generate(config)
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateOverwritesWholesale(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "styledecl.d.ts")
	require.NoError(t, os.WriteFile(output, []byte("stale content"), 0o644))

	_, err := Generate(Config{Output: output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
}

func TestGenerateThemeOverride(t *testing.T) {
	tmpDir := t.TempDir()
	themePath := filepath.Join(tmpDir, "theme.yaml")
	themeContent := `
colors:
  teal:
    "500": "#14b8a6"
variants:
  - hover
`
	require.NoError(t, os.WriteFile(themePath, []byte(themeContent), 0o644))

	output := filepath.Join(tmpDir, "styledecl.d.ts")
	_, err := Generate(Config{ThemeFile: themePath, Output: output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "bg_teal_500: Property<Styled>;")
	assert.Contains(t, content, "#14b8a6")
	assert.NotContains(t, content, "bg_blue_500")
	assert.Contains(t, content, `type Variant = "hover";`)
	assert.NotContains(t, content, "dark(style: Styled)")
}

func TestGenerateMissingThemeFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Generate(Config{
		ThemeFile: filepath.Join(tmpDir, "missing.yaml"),
		Output:    filepath.Join(tmpDir, "out.d.ts"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme failed")
}

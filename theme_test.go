package styledecl

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#3b82f6", theme.Colors["blue"]["500"])
	assert.Equal(t, "0.25rem", theme.Spacing["1"])
	assert.Equal(t, "768px", theme.Screens["md"])
	assert.Contains(t, theme.Variants, "hover")
	assert.Contains(t, theme.Variants, "dark")
}

func TestLoadThemeEmptyPathUsesDefaults(t *testing.T) {
	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadThemeOverridesSectionsWholesale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	content := `
colors:
  teal:
    "300": "#5eead4"
    "500": "#14b8a6"
opacity:
  - "0"
  - "100"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	// Overridden sections are replaced, not merged
	assert.Equal(t, map[string]map[string]string{
		"teal": {"300": "#5eead4", "500": "#14b8a6"},
	}, theme.Colors)
	assert.Equal(t, []string{"0", "100"}, theme.Opacity)

	// Untouched sections keep their defaults
	assert.Equal(t, DefaultTheme().Spacing, theme.Spacing)
	assert.Equal(t, DefaultTheme().Variants, theme.Variants)
}

func TestLoadThemeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: [not: a: map"), 0o644))

	_, err := LoadTheme(path)
	require.Error(t, err)
}

func TestBuildContextEnumeratesClasses(t *testing.T) {
	ctx := BuildContext(DefaultTheme())

	assert.Contains(t, ctx.ClassNames, "bg-blue-500")
	assert.Contains(t, ctx.ClassNames, "text-red-300")
	assert.Contains(t, ctx.ClassNames, "border-gray-700")
	assert.Contains(t, ctx.ClassNames, "p-4")
	assert.Contains(t, ctx.ClassNames, "mx-2")
	assert.Contains(t, ctx.ClassNames, "flex")
	assert.Contains(t, ctx.ClassNames, "truncate")
	assert.Contains(t, ctx.ClassNames, "container")

	assert.True(t, sort.StringsAreSorted(ctx.ClassNames), "class names must be sorted")
}

func TestBuildContextContainerEntries(t *testing.T) {
	ctx := BuildContext(DefaultTheme())

	entries := ctx.Rules["container"]
	require.Len(t, entries, 4) // base + three breakpoints

	base := RenderCSS(entries[0].Static)
	assert.Equal(t, ".container {width:100%;}", base)

	// Breakpoints ordered by min-width
	assert.Contains(t, RenderCSS(entries[1].Static), "640px")
	assert.Contains(t, RenderCSS(entries[2].Static), "768px")
	assert.Contains(t, RenderCSS(entries[3].Static), "1024px")
}

func TestBuildContextSpacingGenerator(t *testing.T) {
	ctx := BuildContext(DefaultTheme())

	entries := ctx.Rules["px"]
	require.Len(t, entries, 1)
	require.Equal(t, KindGenerator, entries[0].Kind)

	rule := entries[0].Generate("4")
	assert.Equal(t, ".px-4 {padding-left:1rem;padding-right:1rem;}", RenderCSS(rule))

	// Off-scale tokens are used verbatim as arbitrary values
	rule = entries[0].Generate("13px")
	assert.Equal(t, ".px-13px {padding-left:13px;padding-right:13px;}", RenderCSS(rule))
}

func TestBuildContextColorGenerator(t *testing.T) {
	ctx := BuildContext(DefaultTheme())

	entries := ctx.Rules["bg-blue"]
	require.Len(t, entries, 1)

	rule := entries[0].Generate("500")
	assert.Equal(t, ".bg-blue-500 {background-color:#3b82f6;}", RenderCSS(rule))

	// The default marker renders the bare class with the 500 shade
	rule = entries[0].Generate(DefaultValue)
	assert.Equal(t, ".bg-blue {background-color:#3b82f6;}", RenderCSS(rule))
}

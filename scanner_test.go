package styledecl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string // expected FullClassValue entries
	}{
		{
			name:     "class attribute",
			line:     `<div class="p-4 bg-blue-500">`,
			expected: []string{"p-4 bg-blue-500"},
		},
		{
			name:     "className attribute",
			line:     `<div className="flex hover:bg-blue-700">`,
			expected: []string{"flex hover:bg-blue-700"},
		},
		{
			name:     "single quotes",
			line:     `<div class='m-2'>`,
			expected: []string{"m-2"},
		},
		{
			name:     "classList add",
			line:     `el.classList.add("truncate")`,
			expected: []string{"truncate"},
		},
		{
			name:     "two attributes on one line",
			line:     `<a class="p-1"><b class="m-1">`,
			expected: []string{"p-1", "m-1"},
		},
		{
			name:     "comment lines are skipped",
			line:     `// <div class="p-4">`,
			expected: nil,
		},
		{
			name:     "html comment lines are skipped",
			line:     `<!-- <div class="p-4"> -->`,
			expected: nil,
		},
		{
			name:     "no class attribute",
			line:     `<div id="main">`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 1, "test.html")

			var values []string
			for _, ref := range refs {
				values = append(values, ref.FullClassValue)
			}
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestExtractClassesLocation(t *testing.T) {
	refs := extractClassesFromLine(`<div class="p-4">`, 7, "index.html")
	require.Len(t, refs, 1)

	assert.Equal(t, "index.html", refs[0].Location.File)
	assert.Equal(t, 7, refs[0].Location.Line)
	assert.Equal(t, 13, refs[0].Location.Column) // 1-based start of "p-4"
}

func TestScanFiles(t *testing.T) {
	tmpDir := t.TempDir()

	html := `<main>
  <div class="p-4 bg-blue-500"></div>
  <span className="flex"></span>
</main>`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte(html), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bundle.min.js"), []byte(`x.class="p-4"`), 0o644))

	refs, stats, err := ScanFiles([]string{filepath.Join(tmpDir, "*")}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped) // minified bundle filtered out
	assert.Len(t, refs, 2)
}

func TestScanFilesOverlappingPatterns(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte(`<div class="p-4">`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bundle.min.js"), []byte(`x.class="p-4"`), 0o644))

	// Both patterns match both files; stats must count each file once.
	refs, stats, err := ScanFiles([]string{
		filepath.Join(tmpDir, "*"),
		filepath.Join(tmpDir, "*.*"),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Len(t, refs, 1)
}

func TestShouldSkipFile(t *testing.T) {
	assert.True(t, shouldSkipFile("/out/types/styledecl.d.ts"))
	assert.True(t, shouldSkipFile("/assets/app.min.js"))
	assert.True(t, shouldSkipFile("/assets/app.min.css"))
	assert.False(t, shouldSkipFile("/web/index.html"))
}

package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestScanSortsByRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "zeta.md", "# Zeta\n")
	writeTemplate(t, dir, "alpha.md", "# Alpha\n")
	writeTemplate(t, dir, "go/style.md", "# Go Style\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 3)

	assert.Equal(t, "alpha.md", templates[0].RelPath)
	assert.Equal(t, filepath.Join("go", "style.md"), templates[1].RelPath)
	assert.Equal(t, "zeta.md", templates[2].RelPath)
}

func TestScanParsesHeader(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "base.md", "# Base Rules\n\nShared conventions for every project.\n\n## Details\n")
	writeTemplate(t, dir, "ext.md", "# Go Extension\n\n> **Extends:** base.md\n> This extension adds Go rules.\n\nGo-specific conventions.\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 2)

	base := templates[0]
	assert.Equal(t, "Base Rules", base.Title)
	assert.Equal(t, "Shared conventions for every project.", base.Description)
	assert.Empty(t, base.Extends)
	assert.True(t, base.IsBase)

	ext := templates[1]
	assert.Equal(t, "Go Extension", ext.Title)
	assert.Equal(t, "Go-specific conventions.", ext.Description)
	assert.Equal(t, "> **Extends:** base.md", ext.Extends)
	assert.False(t, ext.IsBase)
}

func TestScanHeaderlessFile(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "notes.md", "")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	assert.Equal(t, "notes", templates[0].Title)
	assert.Empty(t, templates[0].Description)
	assert.Empty(t, templates[0].Extends)
}

func TestScanTruncatesLongDescription(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("a", 120)
	writeTemplate(t, dir, "long.md", "# Long\n\n"+long+"\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	desc := templates[0].Description
	assert.Len(t, desc, 80)
	assert.True(t, strings.HasSuffix(desc, "..."))
}

func TestScanStopsParsingAtDescription(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "multi.md", "# First\nintro line\n# Second\n> **Extends:** base.md\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	// The heading and annotation after the description line are ignored.
	assert.Equal(t, "First", templates[0].Title)
	assert.Equal(t, "intro line", templates[0].Description)
	assert.Empty(t, templates[0].Extends)
}

func TestScanHeaderWindowIsLimited(t *testing.T) {
	dir := t.TempDir()
	content := strings.Repeat("#comment\n", 10) + "too late to be a description\n"
	writeTemplate(t, dir, "late.md", content)

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Empty(t, templates[0].Description)
}

func TestScanIgnoresNonMarkdownAndHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "keep.md", "# Keep\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	writeTemplate(t, dir, ".hidden/skip.md", "# Skip\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "keep.md", templates[0].RelPath)
}

func TestScanBaseDetectionIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "Base-rules.md", "# B\n")
	writeTemplate(t, dir, "extension.md", "# E\n")

	templates, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, templates, 2)

	assert.True(t, templates[0].IsBase)
	assert.False(t, templates[1].IsBase)
}

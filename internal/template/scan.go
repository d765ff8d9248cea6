package template

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// headerLines caps how far into a file header parsing looks.
	headerLines = 10
	// descriptionWidth is the display width descriptions are truncated to.
	descriptionWidth = 80
)

// Scan walks rootDir recursively for Markdown templates and returns them
// sorted by relative path. It fails when rootDir does not exist or cannot
// be read; the caller treats that as "no templates found".
func Scan(rootDir string) ([]Template, error) {
	if _, err := os.Stat(rootDir); err != nil {
		return nil, fmt.Errorf("templates directory %s: %w", rootDir, err)
	}

	var templates []Template
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}

		tmpl, err := load(path, relPath)
		if err != nil {
			return err
		}
		templates = append(templates, tmpl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootDir, err)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].RelPath < templates[j].RelPath
	})

	return templates, nil
}

// load reads a template's header metadata from its first lines: a "# "
// heading becomes the title, an extends annotation is kept verbatim, and
// the first plain content line becomes the description. Parsing stops once
// the description is found.
func load(path, relPath string) (Template, error) {
	name := filepath.Base(path)
	tmpl := Template{
		Path:    path,
		RelPath: relPath,
		Title:   strings.TrimSuffix(name, filepath.Ext(name)),
		IsBase:  strings.Contains(strings.ToLower(name), "base"),
	}

	f, err := os.Open(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	titleSet := false
	scanner := bufio.NewScanner(f)
	for i := 0; i < headerLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "# "):
			if !titleSet {
				tmpl.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
				titleSet = true
			}
		case strings.HasPrefix(line, ExtendsPrefix):
			if tmpl.Extends == "" {
				tmpl.Extends = line
			}
		case line != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, ">"):
			tmpl.Description = runewidth.Truncate(line, descriptionWidth, "...")
			return tmpl, scanner.Err()
		}
	}
	return tmpl, scanner.Err()
}

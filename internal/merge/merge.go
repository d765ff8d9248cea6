// Package merge assembles selected templates into a single Markdown
// document, base templates first.
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ireland-samantha/prompt-merge/internal/template"
)

// Run merges the selected templates into outputPath, overwriting any
// existing file. An empty selection writes nothing.
func Run(selected []template.Template, outputPath string) error {
	if len(selected) == 0 {
		fmt.Println("No templates selected.")
		return nil
	}

	ordered := Order(selected)

	doc, err := Build(ordered, outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("Merged %d template(s) into %s\n", len(ordered), outputPath)
	fmt.Println("\nIncluded templates:")
	for _, t := range ordered {
		fmt.Printf("  - %s\n", t.RelPath)
	}

	return nil
}

// Order sorts templates base-first; within each group ordering is by
// relative path ascending.
func Order(templates []template.Template) []template.Template {
	ordered := make([]template.Template, len(templates))
	copy(ordered, templates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsBase != ordered[j].IsBase {
			return ordered[i].IsBase
		}
		return ordered[i].RelPath < ordered[j].RelPath
	})
	return ordered
}

// Build assembles the merged document from the already-ordered templates:
// a title heading, provenance comments, then each template's filtered
// content separated by horizontal rules.
func Build(ordered []template.Template, outputPath string) (string, error) {
	paths := make([]string, len(ordered))
	for i, t := range ordered {
		paths[i] = t.RelPath
	}

	var sb strings.Builder
	sb.WriteString("# " + filepath.Base(outputPath) + "\n\n")
	sb.WriteString("<!-- Generated by prompt-merge -->\n")
	sb.WriteString("<!-- Sources: " + strings.Join(paths, ", ") + " -->\n\n")

	for i, t := range ordered {
		content, err := os.ReadFile(t.Path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", t.Path, err)
		}

		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		sb.WriteString(strings.TrimSpace(StripExtendsBlocks(string(content))))
	}
	sb.WriteString("\n")

	return sb.String(), nil
}

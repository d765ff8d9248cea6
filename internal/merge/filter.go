package merge

import (
	"strings"

	"github.com/ireland-samantha/prompt-merge/internal/template"
)

// extensionNotePrefix marks the descriptive line that follows an extends
// annotation ("> This extension ...").
const extensionNotePrefix = "> This extension"

// StripExtendsBlocks drops extends-annotation blocks from template content.
// The relationship they describe is resolved by the merge itself, so the
// marker lines are removed along with one trailing blank line and any
// blockquote lines completing the block.
func StripExtendsBlocks(content string) string {
	lines := strings.Split(content, "\n")
	filtered := make([]string, 0, len(lines))
	skipping := false

	for _, line := range lines {
		if strings.HasPrefix(line, template.ExtendsPrefix) || strings.HasPrefix(line, extensionNotePrefix) {
			skipping = true
			continue
		}
		if skipping && strings.TrimSpace(line) == "" {
			skipping = false
			continue
		}
		if skipping && strings.HasPrefix(line, ">") {
			continue
		}
		skipping = false
		filtered = append(filtered, line)
	}

	return strings.Join(filtered, "\n")
}

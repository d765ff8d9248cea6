package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/ireland-samantha/prompt-merge/internal/template"
)

var listFilter string

var (
	listBaseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	listDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available templates",
	Long:  `Lists every discovered template with its title, description, and extends annotation.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	templates, err := template.Scan(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("failed to scan templates: %w", err)
	}

	if listFilter != "" {
		templates = filterTemplates(templates, listFilter)
	}

	fmt.Println("\nAvailable Templates:")
	fmt.Println(strings.Repeat("=", 60))

	for _, t := range templates {
		marker := ""
		if t.IsBase {
			marker = " " + listBaseStyle.Render("[BASE]")
		}
		fmt.Printf("\n  %s%s\n", t.RelPath, marker)
		fmt.Printf("    Title: %s\n", t.Title)
		if t.Description != "" {
			fmt.Printf("    %s\n", listDimStyle.Render(t.Description))
		}
		if t.Extends != "" {
			fmt.Printf("    %s\n", listDimStyle.Render(t.Extends))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Total: %d template(s)\n\n", len(templates))

	return nil
}

// filterTemplates fuzzy-matches pattern against path and title, keeping
// discovery order among the matches.
func filterTemplates(templates []template.Template, pattern string) []template.Template {
	haystack := make([]string, len(templates))
	for i, t := range templates {
		haystack[i] = t.RelPath + " " + t.Title
	}

	matches := fuzzy.Find(pattern, haystack)
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	sort.Ints(indexes)

	result := make([]template.Template, len(indexes))
	for i, idx := range indexes {
		result[i] = templates[idx]
	}
	return result
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "fuzzy filter by path or title")
	rootCmd.AddCommand(listCmd)
}

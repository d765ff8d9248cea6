package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ireland-samantha/prompt-merge/internal/merge"
	"github.com/ireland-samantha/prompt-merge/internal/template"
	"github.com/ireland-samantha/prompt-merge/internal/tui"
)

var goOutput string

var goCmd = &cobra.Command{
	Use:   "go",
	Short: "Interactively select and merge templates",
	Long: `Scans the templates directory, opens an interactive checkbox picker,
and merges the confirmed selection into the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		templates, err := template.Scan(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("failed to scan templates: %w", err)
		}
		if len(templates) == 0 {
			exitWithError(fmt.Sprintf("No templates found in %s", cfg.TemplatesDir), 1)
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive selection requires a terminal")
		}

		result, err := tui.RunPicker(templates)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		if !result.Confirmed {
			fmt.Println("Cancelled.")
			return nil
		}

		output := goOutput
		if output == "" {
			output = cfg.Output
		}

		return merge.Run(result.Selected, output)
	},
}

func init() {
	goCmd.Flags().StringVarP(&goOutput, "output", "o", "", "output file path (default: CLAUDE.md)")
	rootCmd.AddCommand(goCmd)
}

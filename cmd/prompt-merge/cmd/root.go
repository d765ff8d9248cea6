package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ireland-samantha/prompt-merge/internal/config"
)

var (
	cfgFile      string
	templatesDir string
	listFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "prompt-merge",
	Short: "Merge prompt templates into a single CLAUDE.md file",
	Long: `prompt-merge discovers Markdown prompt templates in a directory tree,
lets you pick a subset with an interactive checkbox UI, and merges the
picked templates into one output file, base templates first.

Running 'prompt-merge' without arguments prints this help.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			return runList(cmd, args)
		}
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/prompt-merge/config.toml)")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "dir", "", "templates directory (default: ./templates)")
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list all available templates")
}

// loadSettings resolves the config file and applies flag overrides.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if templatesDir != "" {
		cfg.TemplatesDir = templatesDir
	}
	return cfg, nil
}

func exitWithError(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

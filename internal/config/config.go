package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the resolved prompt-merge settings.
type Config struct {
	TemplatesDir string
	Output       string
}

const (
	defaultTemplatesDir = "templates"
	defaultOutput       = "CLAUDE.md"
)

// Load reads the first config file found among the candidate paths,
// falling back to defaults when none exists.
func Load(explicit string) (Config, error) {
	cfg := Config{TemplatesDir: defaultTemplatesDir, Output: defaultOutput}

	for _, path := range candidatePaths(explicit) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}

		var raw struct {
			TemplatesDir string `toml:"templates_dir"`
			Output       string `toml:"output"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}

		if dir := strings.TrimSpace(raw.TemplatesDir); dir != "" {
			cfg.TemplatesDir = expandHome(dir)
		}
		if out := strings.TrimSpace(raw.Output); out != "" {
			cfg.Output = expandHome(out)
		}
		return cfg, nil
	}

	return cfg, nil
}

func candidatePaths(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		xdgConfig = filepath.Join(home, ".config")
	}
	return append(paths, filepath.Join(xdgConfig, "prompt-merge", "config.toml"))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

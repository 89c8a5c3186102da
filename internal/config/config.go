// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-composer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Portfolio identity
	UserID   string `json:"user_id,omitempty"`  // User identifier stamped on composed documents
	Category string `json:"category,omitempty"` // Default category for score/compose commands
	Title    string `json:"title,omitempty"`    // Default portfolio title
	Subtitle string `json:"subtitle,omitempty"` // Default portfolio subtitle

	// Behavior
	Strict  bool `json:"strict,omitempty"`  // Reject empty content lists instead of composing a skeleton
	Verbose bool `json:"verbose,omitempty"` // Print detailed scoring and composition summaries

	// Server
	Port int `json:"port,omitempty"` // Port for the serve command
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation handles those
// after merging.
func (c *Config) Validate() error {
	if c.Category != "" {
		if _, err := types.ParseCategory(c.Category); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

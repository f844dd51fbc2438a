// Package config provides configuration types and defaults for measured.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahidursuman/measured/internal/domain/value"
	"github.com/sahidursuman/measured/internal/log"
	"github.com/sahidursuman/measured/internal/paths"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all configuration options for measured.
type Config struct {
	Precision   int32       `mapstructure:"precision"`   // fractional digits kept when a converted amount does not terminate
	Definitions []string    `mapstructure:"definitions"` // extra unit definition files or directories
	Output      string      `mapstructure:"output"`      // "text" (default) or "json"
	Debug       bool        `mapstructure:"debug"`
	LogFile     string      `mapstructure:"log_file"`
	LogLevel    string      `mapstructure:"log_level"` // debug, info, warn, error
	Theme       ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig holds the colors used by text output.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // hex color e.g. "#54A0FF"
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Precision: value.DefaultPrecision,
		Output:    OutputText,
		LogFile:   DefaultLogFile(),
		LogLevel:  "debug",
		Theme: ThemeConfig{
			Highlight: "#54A0FF",
			Subtle:    "#696969",
			Error:     "#FF8787",
		},
	}
}

// DefaultLogFile returns ~/.config/measured/debug.log, or debug.log in the
// working directory when the home directory cannot be determined.
func DefaultLogFile() string {
	dir := paths.UserConfigDir()
	if dir == "" {
		return "debug.log"
	}
	return filepath.Join(dir, "debug.log")
}

// Validate checks the configuration for errors.
func Validate(c Config) error {
	if c.Precision < 1 {
		return fmt.Errorf("precision must be at least 1, got %d", c.Precision)
	}

	switch c.Output {
	case "", OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", c.LogLevel)
	}

	for i, def := range c.Definitions {
		if strings.TrimSpace(def) == "" {
			return fmt.Errorf("definitions[%d]: path is required", i)
		}
	}

	for key, color := range map[string]string{
		"theme.highlight": c.Theme.Highlight,
		"theme.subtle":    c.Theme.Subtle,
		"theme.error":     c.Theme.Error,
	} {
		if color != "" && !isHexColor(color) {
			return fmt.Errorf("%s must be a hex color like \"#54A0FF\", got %q", key, color)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Measured Configuration

# Fractional digits kept when a converted amount does not terminate
# (for example metres to yards). Exact factors are never rounded.
precision: 34

# Extra unit definition files or directories, loaded after the built-in
# Weight and Length quantities. Directories load every *.yaml / *.yml file.
# definitions:
#   - ~/.config/measured/units
#   - ./magic.yaml
#
# File format:
#   quantities:
#     - name: Time
#       base: { name: s, aliases: [second, seconds] }
#       units:
#         - { name: min, value: "60 s", aliases: [minute, minutes] }
#         - { name: h, value: "60 min", aliases: [hour, hours] }

# Output format: "text" (default) or "json"
output: text

# Debug logging (also enabled with --debug or MEASURED_DEBUG=1)
debug: false
# log_file: ~/.config/measured/debug.log
# log_level: debug

# Colors used by text output
theme:
  highlight: "#54A0FF"
  subtle: "#696969"
  error: "#FF8787"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

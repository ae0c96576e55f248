// Package config loads TOML configuration for the quill command.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Output formats understood by the renderer.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatText = "text"
)

// Config holds the quill command's settings.
type Config struct {
	Output Output `toml:"output"`
}

// Output configures how documents are rendered.
type Output struct {
	// Format selects the output format: json, html or text.
	Format string `toml:"format"`

	// Metrics adds a grapheme/word summary after the document.
	Metrics bool `toml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: Output{Format: FormatText, Metrics: true},
	}
}

// Load reads configuration from a TOML file, applying defaults for
// missing keys. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatHTML, FormatText:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
}

// Package config loads fishtok's optional .fishtok.yaml settings file,
// which lets a project pin the tokenizer flags a CLI invocation should
// default to instead of passing them on every call.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fish-tools/fishtok/lexer"
)

// Config mirrors lexer.Flags as individually named, YAML-friendly
// booleans, plus one CLI-only field.
type Config struct {
	AcceptUnfinished bool `yaml:"accept_unfinished"`
	ShowComments     bool `yaml:"show_comments"`
	SquashErrors     bool `yaml:"squash_errors"`
	ShowBlankLines   bool `yaml:"show_blank_lines"`

	// ColorOutput holds the color_output setting (nil when unset). It
	// is parsed but not read by cmd/fishtok, whose token dump is never
	// colored, and it does not affect Flags.
	ColorOutput *bool `yaml:"color_output"`
}

// Default returns the zero-flags configuration: strict mode, comments
// skipped, canonical error messages, blank-line runs collapsed.
func Default() *Config {
	return &Config{}
}

// Load reads and parses path. A missing file is not an error -- it
// returns Default() so callers can unconditionally call Load on a
// well-known path like ".fishtok.yaml" without checking existence
// first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Flags converts the config's booleans into the lexer.Flags bitset
// Tokenizer construction expects.
func (c *Config) Flags() lexer.Flags {
	var f lexer.Flags
	if c.AcceptUnfinished {
		f |= lexer.AcceptUnfinished
	}
	if c.ShowComments {
		f |= lexer.ShowComments
	}
	if c.SquashErrors {
		f |= lexer.SquashErrors
	}
	if c.ShowBlankLines {
		f |= lexer.ShowBlankLines
	}
	return f
}

// Package rdnconfig loads the optional .rdnfmt.yaml project config that
// internal/cli falls back to when a flag isn't given explicitly.
package rdnconfig

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the shape of .rdnfmt.yaml.
type Config struct {
	Indent              string `yaml:"indent"`
	AllowComments       bool   `yaml:"allow_comments"`
	AllowTrailingCommas bool   `yaml:"allow_trailing_commas"`
	MaxDepth            int    `yaml:"max_depth"`
}

// Default returns the config used when no .rdnfmt.yaml is present.
func Default() Config {
	return Config{Indent: "  ", AllowTrailingCommas: false, MaxDepth: 0}
}

// Load reads .rdnfmt.yaml from dir, returning Default() if it does not
// exist.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, ".rdnfmt.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Package config loads default settings for the jsonflat command from a YAML
// file, e.g.
//
//	brief: true
//	normalize_solidus: true
//	color: never
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"

	"github.com/arnodel/jsonflat"
)

// EnvVar names the environment variable holding the path of the default
// config file.
const EnvVar = "JSONFLAT_CONFIG"

var ErrConfig = errors.New("config error")

// Config holds the settings that can be given in a config file.  All of them
// can be overridden on the command line.
type Config struct {
	LeafOnly         bool   `yaml:"leaf_only"`
	Prune            bool   `yaml:"prune"`
	Brief            bool   `yaml:"brief"`
	NoHead           bool   `yaml:"no_head"`
	NormalizeSolidus bool   `yaml:"normalize_solidus"`
	JWCC             bool   `yaml:"jwcc"`
	Color            string `yaml:"color"`
}

// Options returns the flattening options set in c.
func (c *Config) Options() jsonflat.Options {
	return jsonflat.Options{
		LeafOnly:         c.LeafOnly || c.Brief,
		Prune:            c.Prune || c.Brief,
		NoHead:           c.NoHead,
		NormalizeSolidus: c.NormalizeSolidus,
	}
}

// Load reads the config file at path.  If path is empty, the value of EnvVar
// is used instead, and if that is empty too the zero Config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML config.  An empty document gives the zero Config.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("%w: invalid color value: %q (use auto, always, or never)", ErrConfig, c.Color)
	}
}

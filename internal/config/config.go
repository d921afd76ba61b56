// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yangfeng-xu/lab3-maths2/affine"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the affinectl settings.
type Config struct {
	// Input
	Scene string `yaml:"scene"`

	// Numeric policy, forwarded to package affine
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`

	// Output
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene    string
	Epsilon  float64
	Format   string
	LogLevel string
}

// Load reads a YAML config file. Fields not set in the file keep their zero
// values; call Resolve to fill defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides, then defaults for anything still empty.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Epsilon > 0 {
		c.Epsilon = flags.Epsilon
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Epsilon <= 0 {
		c.Epsilon = affine.DefaultEpsilon
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = affine.DefaultMaxIterations
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings Resolve cannot repair.
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene path is empty", ErrInvalid)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v", ErrInvalid, c.Epsilon)
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}

	return nil
}

// AffineOptions converts the numeric policy into affine options.
// Call after Resolve, which guarantees both values are in range.
func (c Config) AffineOptions() []affine.Option {
	return []affine.Option{
		affine.WithEpsilon(c.Epsilon),
		affine.WithMaxIterations(c.MaxIterations),
	}
}

// SPDX-License-Identifier: MIT
// Package config holds process-wide stitcher configuration: the RAM budget
// used by the tiled-materialization preloading heuristic, the default
// continuation mode, and the default weighted_frames boundary epsilon.
// Config values may be loaded from YAML (Load) or built programmatically
// via functional options (New), mirroring the two construction paths the
// pack already uses elsewhere for runtime configuration.
package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
	"gopkg.in/yaml.v3"
)

// Defaults — single source of truth; Load and New both start here.
const (
	// DefaultRAMBudgetBytes bounds the stitcher's frame-preloading cache.
	DefaultRAMBudgetBytes int64 = 256 << 20 // 256 MiB

	// DefaultBoundaryEpsilon reproduces weighted_frames' original
	// strict-interior (d < 0) behavior; see DESIGN.md's Open Question
	// decisions.
	DefaultBoundaryEpsilon = 0.0
)

// Config is an immutable snapshot of stitcher-wide runtime settings.
type Config struct {
	RAMBudgetBytes         int64
	DefaultContinuation    continuation.Mode
	DefaultBoundaryEpsilon float64
}

// yamlConfig mirrors Config's fields in their YAML wire form; continuation
// modes are spelled out as strings (constant values carry a numeric payload
// via a second field) rather than reusing continuation.Mode directly, since
// that type has no exported fields for yaml.v3 to marshal.
type yamlConfig struct {
	RAMBudgetBytes       int64   `yaml:"ram_budget_bytes"`
	DefaultContinuation  string  `yaml:"default_continuation"`
	ContinuationConstant float64 `yaml:"continuation_constant_value"`
	BoundaryEpsilon      float64 `yaml:"boundary_epsilon"`
}

// Load reads and validates a YAML configuration file, grounded in the
// pack's "read file, unmarshal, validate required fields" loader shape.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, configErrorf(opLoad, fmt.Errorf("%w: %s", errs.ErrIO, path))
		}

		return nil, configErrorf(opLoad, fmt.Errorf("%w: %v", errs.ErrIO, err))
	}

	raw := yamlConfig{
		RAMBudgetBytes:      DefaultRAMBudgetBytes,
		DefaultContinuation: "cyclic",
		BoundaryEpsilon:     DefaultBoundaryEpsilon,
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, configErrorf(opLoad, fmt.Errorf("%w: %v", errs.ErrIO, err))
	}
	if raw.RAMBudgetBytes <= 0 {
		return nil, configErrorf(opLoad, errs.ErrInvalidArgument)
	}

	mode, err := parseMode(raw.DefaultContinuation, raw.ContinuationConstant)
	if err != nil {
		return nil, configErrorf(opLoad, err)
	}

	return &Config{
		RAMBudgetBytes:         raw.RAMBudgetBytes,
		DefaultContinuation:    mode,
		DefaultBoundaryEpsilon: raw.BoundaryEpsilon,
	}, nil
}

func parseMode(name string, constantValue float64) (continuation.Mode, error) {
	switch name {
	case "constant":
		return continuation.Constant(constantValue), nil
	case "cyclic":
		return continuation.Cyclic(), nil
	case "reflect":
		return continuation.Reflect(), nil
	case "pseudo_cyclic":
		return continuation.PseudoCyclic(), nil
	case "mirror":
		return continuation.Mirror(), nil
	default:
		return continuation.Mode{}, errs.ErrInvalidArgument
	}
}

// Option mutates a Config under construction; see New.
type Option func(*Config)

// WithRAMBudgetBytes overrides the default frame-preloading budget.
func WithRAMBudgetBytes(n int64) Option {
	return func(c *Config) { c.RAMBudgetBytes = n }
}

// WithDefaultContinuation overrides the default continuation mode.
func WithDefaultContinuation(mode continuation.Mode) Option {
	return func(c *Config) { c.DefaultContinuation = mode }
}

// WithBoundaryEpsilon overrides weighted_frames' boundary epsilon default.
func WithBoundaryEpsilon(eps float64) Option {
	return func(c *Config) { c.DefaultBoundaryEpsilon = eps }
}

// New builds a Config from documented defaults plus any Option overrides.
func New(opts ...Option) *Config {
	c := &Config{
		RAMBudgetBytes:         DefaultRAMBudgetBytes,
		DefaultContinuation:    continuation.Cyclic(),
		DefaultBoundaryEpsilon: DefaultBoundaryEpsilon,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

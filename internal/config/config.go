package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/globalclass/internal/engine"
	"github.com/sirkon/globalclass/internal/gcrules"
	"github.com/sirkon/globalclass/internal/wellknown"
)

// Config describes well-known host identities and checker limits.
type Config struct {
	// HostPackage is the package path predefined identities are taken from.
	HostPackage string `yaml:"host_package"`

	// Root overrides the predefined root object type.
	Root wellknown.Identity `yaml:"root"`

	// GlobalMarkers and ToolMarkers add marker types on top of predefined ones.
	GlobalMarkers []wellknown.Identity `yaml:"global_markers"`
	ToolMarkers   []wellknown.Identity `yaml:"tool_markers"`

	// MaxDepth limits ancestry walks, 0 means the engine default.
	MaxDepth int `yaml:"max_depth"`

	// Jobs is the number of declarations checked concurrently, 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs"`

	// DisabledRules lists rules that are not reported, by code or by name.
	DisabledRules []gcrules.Rule `yaml:"disabled_rules"`
}

// Default returns the configuration of the default host package.
func Default() Config {
	return Config{
		HostPackage: wellknown.DefaultHostPackage,
		MaxDepth:    engine.DefaultMaxDepth,
	}
}

// Parse decodes a YAML configuration on top of defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that limits are sane and that no identity is given two meanings.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	seen := make(map[wellknown.Identity]wellknown.MarkerKind)
	for kind, ids := range map[wellknown.MarkerKind][]wellknown.Identity{
		wellknown.GlobalRegistration: c.GlobalMarkers,
		wellknown.ToolOnly:           c.ToolMarkers,
	} {
		for _, id := range ids {
			if prev, ok := seen[id]; ok && prev != kind {
				return fmt.Errorf("marker %s is configured both as %s and %s", id, prev, kind)
			}
			seen[id] = kind
		}
	}

	return nil
}

// Table builds the well-known identity table the configuration describes.
func (c Config) Table() (*wellknown.Table, error) {
	custom := make(map[wellknown.Identity]wellknown.MarkerKind, len(c.GlobalMarkers)+len(c.ToolMarkers))
	for _, id := range c.GlobalMarkers {
		custom[id] = wellknown.GlobalRegistration
	}
	for _, id := range c.ToolMarkers {
		custom[id] = wellknown.ToolOnly
	}

	table, err := wellknown.NewTable(c.HostPackage, c.Root, custom)
	if err != nil {
		return nil, fmt.Errorf("build well-known identities: %w", err)
	}

	return table, nil
}

// Checker builds a checker over the configured identities.
func (c Config) Checker() (*engine.Checker, error) {
	table, err := c.Table()
	if err != nil {
		return nil, err
	}

	return engine.New(
		table,
		engine.WithMaxDepth(c.MaxDepth),
		engine.WithDisabledRules(c.DisabledRules...),
	), nil
}

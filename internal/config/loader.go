package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/lootgen/pack"
)

// Load reads the YAML configuration at path, applies defaults and validates
// it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = "out"
	}
	if c.Format == "" {
		c.Format = pack.FormatJSON
	}
	if c.LogLevel == "" {
		c.LogLevel = LogInfo
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Format != "" && cfg.Format != pack.FormatJSON && cfg.Format != pack.FormatYAML {
		errs = append(errs, fmt.Errorf("format %q is invalid; valid values: json, yaml", cfg.Format))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers))
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	seen := make(map[string]int, len(cfg.Tables))
	for i, t := range cfg.Tables {
		if t.ID.IsZero() {
			errs = append(errs, fmt.Errorf("tables[%d]: id is required", i))
			continue
		}
		if prev, dup := seen[t.ID.String()]; dup {
			errs = append(errs, fmt.Errorf("tables[%d]: duplicate id %s (first at tables[%d])", i, t.ID, prev))
		} else {
			seen[t.ID.String()] = i
		}
		for j, p := range t.Pools {
			if len(p.Entries) == 0 {
				errs = append(errs, fmt.Errorf("table %s: pools[%d] has no entries", t.ID, j))
			}
		}
	}

	return errors.Join(errs...)
}

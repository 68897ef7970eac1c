// Package config loads handscore run settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/sampler"
)

// Output formats understood by the evaluate command.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// Config is the complete run configuration
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	Evaluate *EvaluateSettings `hcl:"evaluate,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// EvaluateSettings configures single-hand evaluation
type EvaluateSettings struct {
	Workers   int             `hcl:"workers,optional"`
	Format    string          `hcl:"format,optional"`
	Symbols   bool            `hcl:"symbols,optional"`
	HideEmpty bool            `hcl:"hide_empty,optional"`
	Groups    []GroupSettings `hcl:"group,block"`
}

// GroupSettings constrains a sampled hand to hold Count cards of one rank,
// e.g. group "3" { count = 3 }.
type GroupSettings struct {
	Rank  string `hcl:"rank,label"`
	Count int    `hcl:"count"`
}

// SimulateSettings configures batch simulation
type SimulateSettings struct {
	Hands   int   `hcl:"hands,optional"`
	Seed    int64 `hcl:"seed,optional"`
	Workers int   `hcl:"workers,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Evaluate == nil {
		c.Evaluate = &EvaluateSettings{}
	}
	if c.Evaluate.Format == "" {
		c.Evaluate.Format = FormatText
	}
	if c.Simulate == nil {
		c.Simulate = &SimulateSettings{}
	}
	if c.Simulate.Hands == 0 {
		c.Simulate.Hands = 1000
	}
}

// Validate checks values the HCL schema cannot express
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	switch c.Evaluate.Format {
	case FormatText, FormatTOML:
	default:
		return fmt.Errorf("invalid evaluate format %q (want %s or %s)", c.Evaluate.Format, FormatText, FormatTOML)
	}

	if _, err := c.Evaluate.SampleGroups(); err != nil {
		return err
	}

	if c.Simulate.Hands < 0 {
		return fmt.Errorf("simulate hands must not be negative, got %d", c.Simulate.Hands)
	}
	return nil
}

// SampleGroups converts the configured group blocks to sampler constraints.
func (e *EvaluateSettings) SampleGroups() ([]sampler.Group, error) {
	groups := make([]sampler.Group, 0, len(e.Groups))
	for _, g := range e.Groups {
		rank, err := catalog.ParseRank(g.Rank)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Rank, err)
		}
		groups = append(groups, sampler.Group{Rank: rank, Count: g.Count})
	}
	return groups, nil
}

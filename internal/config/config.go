// Package config loads and persists the soilworks workspace
// configuration from YAML, with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full workspace configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Store    StoreConfig    `yaml:"store"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StoreConfig points at the analysis archive database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// AnalysisConfig carries the default methods used when the CLI flags are
// silent.
type AnalysisConfig struct {
	// ABCMethod is the allowable bearing capacity correlation:
	// bowles, meyerhof or terzaghi.
	ABCMethod string `yaml:"abc_method"`

	// OPCMethod is the overburden pressure correction: gibbs_holtz,
	// bazaraa_peck, peck, liao_whitman or skempton.
	OPCMethod string `yaml:"opc_method"`

	// TolSettlement is the tolerable settlement (mm) for allowable
	// capacity runs.
	TolSettlement float64 `yaml:"tol_settlement"`
}

// LoggingConfig controls the category file loggers.
type LoggingConfig struct {
	DebugMode  bool     `yaml:"debug_mode"`
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Name:    "soilworks",
		Version: "1.0.0",
		Store: StoreConfig{
			Path: filepath.Join(".soilworks", "archive.db"),
		},
		Analysis: AnalysisConfig{
			ABCMethod:     "bowles",
			OPCMethod:     "gibbs_holtz",
			TolSettlement: 25.4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, layering it over the
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("SOILWORKS_STORE_PATH"); p != "" {
		c.Store.Path = p
	}
}

// Validate rejects unknown method names and out-of-range settlement
// limits.
func (c *Config) Validate() error {
	switch c.Analysis.ABCMethod {
	case "bowles", "meyerhof", "terzaghi":
	default:
		return fmt.Errorf("config: unknown abc_method %q", c.Analysis.ABCMethod)
	}
	switch c.Analysis.OPCMethod {
	case "gibbs_holtz", "bazaraa_peck", "peck", "liao_whitman", "skempton":
	default:
		return fmt.Errorf("config: unknown opc_method %q", c.Analysis.OPCMethod)
	}
	if c.Analysis.TolSettlement <= 0 || c.Analysis.TolSettlement > 25.4 {
		return fmt.Errorf("config: tol_settlement %v outside (0, 25.4]", c.Analysis.TolSettlement)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level billgen.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	State    StateConfig    `yaml:"state"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// BusinessConfig identifies the operator's business on printed bills.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// StateConfig locates the key-value store for bill snapshots.
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultsConfig seeds a fresh session.
type DefaultsConfig struct {
	BillsPerPage       int  `yaml:"bills_per_page"`
	IncludeDhara       bool `yaml:"include_dhara"`
	IncludeBankCharges bool `yaml:"include_bank_charges"`
}

// Load reads a billgen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, stateDir string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		State:    StateConfig{Dir: stateDir},
		Defaults: DefaultsConfig{
			BillsPerPage:       1,
			IncludeDhara:       true,
			IncludeBankCharges: true,
		},
	}
}

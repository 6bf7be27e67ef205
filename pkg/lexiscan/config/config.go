package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

// Config is the YAML run configuration.
type Config struct {
	TaxonomyPath   string   `yaml:"taxonomy"`
	InputDir       string   `yaml:"input_dir"`
	OutputDir      string   `yaml:"output_dir"`
	DatabasePath   string   `yaml:"database"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	Workers        int      `yaml:"workers"`
	TopN           int      `yaml:"top_n"`
}

// Load reads a run configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field sanity. TaxonomyPath may be empty here —
// commands overlay flag values before Load requires it — and paths
// are not checked for existence; that surfaces at load time.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", internalerr.ErrInvalidConfig)
	}
	if c.TopN < 0 {
		return fmt.Errorf("%w: top_n must be >= 0", internalerr.ErrInvalidConfig)
	}
	return nil
}

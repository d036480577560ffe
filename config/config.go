package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for portlens.
// Values come from a YAML file (config.yaml) or environment variables;
// environment variables always override YAML values.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Log      LogConfig      `yaml:"log"`
	Render   RenderConfig   `yaml:"render"`
}

// DatasetsConfig locates the four CSV sources.
// Defaults mirror the conventional datasets/ layout.
type DatasetsConfig struct {
	Clients       string `yaml:"clients" env:"PORTLENS_CLIENTS" env-default:"datasets/banking-clients.csv"`
	Relationships string `yaml:"relationships" env:"PORTLENS_RELATIONSHIPS" env-default:"datasets/banking-relationships.csv"`
	Genders       string `yaml:"genders" env:"PORTLENS_GENDERS" env-default:"datasets/gender.csv"`
	Advisors      string `yaml:"advisors" env:"PORTLENS_ADVISORS" env-default:"datasets/investment-advisors.csv"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"PORTLENS_LOG_LEVEL" env-default:"info"`
}

// RenderConfig sets output defaults for the render command.
type RenderConfig struct {
	// Format is one of json, pretty, text, csv.
	Format string `yaml:"format" env:"PORTLENS_FORMAT" env-default:"json"`
	// TableLimit caps the client listing rows; 0 means all.
	TableLimit int `yaml:"table_limit" env:"PORTLENS_TABLE_LIMIT" env-default:"0"`
}

// Load reads configuration from the given YAML path (optional) plus the
// environment. An empty path reads environment variables only; a missing
// explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return cfg, nil
}

// Package config loads purefp CLI settings from an optional YAML file and
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "PUREFP_CONFIG"

type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

type Log struct {
	Level string `yaml:"level" env:"PUREFP_LOG_LEVEL" env-default:"info"`
}

type Output struct {
	Format  string `yaml:"format" env:"PUREFP_FORMAT" env-default:"text"`
	NoColor bool   `yaml:"noColor" env:"PUREFP_NO_COLOR"`
}

// Load reads the config file at path, falling back to $PUREFP_CONFIG, and
// then applies environment overrides. With no file at all only the
// environment and defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return &cfg, nil
}

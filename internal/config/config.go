// Package config loads csharpgen settings from a TOML file and the
// environment.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/logger"
	"github.com/v0xg/csharpgen/internal/options"
)

const (
	EnvMode            = "CSHARPGEN_MODE"
	EnvDefaultProvider = "CSHARPGEN_DEFAULT_PROVIDER"
)

type Config struct {
	Mode      string            `toml:"mode"`
	Generator options.Generator `toml:"generator"`
	AI        AIConfig          `toml:"ai"`
	Log       logger.Config     `toml:"log"`
}

// AIConfig selects the model used by the plan command.
type AIConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Mode:      "library",
		Generator: options.Generator{BrowserName: "chromium"},
		AI:        AIConfig{Provider: "claude"},
		Log:       logger.Config{Level: "warn"},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrapf(err, "read config %s", path)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if mode := os.Getenv(EnvMode); mode != "" {
		cfg.Mode = mode
	}
	if provider := os.Getenv(EnvDefaultProvider); provider != "" {
		cfg.AI.Provider = provider
	}
	if cfg.Generator.BrowserName == "" {
		cfg.Generator.BrowserName = "chromium"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	return cfg, nil
}

package config

import (
	"strings"

	"github.com/minio/pkg/v2/env"
	"github.com/pkg/errors"
)

const (
	EnvLogMode     = "FELUDA_EXAMPLE_LOG_MODE"
	EnvLogLevel    = "FELUDA_EXAMPLE_LOG_LEVEL"
	EnvFormat      = "FELUDA_EXAMPLE_FORMAT"
	EnvObjectStore = "FELUDA_EXAMPLE_OBJECT_STORE"
	EnvAddress     = "FELUDA_EXAMPLE_ADDR"
)

type Log struct {
	// Mode is "development" or "production".
	Mode  string
	Level string
}

type Config struct {
	Log         Log
	Format      string
	ObjectStore string
	Address     string
}

// Default reproduces the behaviour of the programs when nothing is set.
func Default() Config {
	return Config{
		Log:         Log{Mode: "development", Level: "info"},
		Format:      "json",
		ObjectStore: "127.0.0.1:9000",
		Address:     "localhost:5000",
	}
}

func Load() (Config, error) {
	d := Default()
	cfg := Config{
		Log: Log{
			Mode:  strings.ToLower(strings.TrimSpace(env.Get(EnvLogMode, d.Log.Mode))),
			Level: strings.ToLower(strings.TrimSpace(env.Get(EnvLogLevel, d.Log.Level))),
		},
		Format:      strings.ToLower(strings.TrimSpace(env.Get(EnvFormat, d.Format))),
		ObjectStore: strings.TrimSpace(env.Get(EnvObjectStore, d.ObjectStore)),
		Address:     strings.TrimSpace(env.Get(EnvAddress, d.Address)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Log.Mode {
	case "development", "dev", "production", "prod":
	default:
		return errors.Errorf("invalid %s %q", EnvLogMode, c.Log.Mode)
	}
	switch c.Format {
	case "json", "yaml", "proto":
	default:
		return errors.Errorf("invalid %s %q", EnvFormat, c.Format)
	}
	if c.ObjectStore == "" {
		return errors.Errorf("%s must not be empty", EnvObjectStore)
	}
	if c.Address == "" {
		return errors.Errorf("%s must not be empty", EnvAddress)
	}
	return nil
}

// Package toml loads the satlist configuration file. Every section
// maps to a typed struct so callers get strong typing without manual
// key lookups; values missing from the file keep their defaults.
package toml

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	Scan    ScanConfig    `toml:"scan"`
	Logging LoggingConfig `toml:"logging"`
}

type HTTPConfig struct {
	// UserAgent overrides the fetcher's browser-like default when
	// non-empty.
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type ScanConfig struct {
	Concurrency int    `toml:"concurrency"`
	Separator   string `toml:"separator"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config populated with sane defaults. Values here
// are used whenever the TOML file omits a field.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 10,
		},
		Scan: ScanConfig{
			Concurrency: 4,
			Separator:   " ",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, layering it over the
// defaults. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

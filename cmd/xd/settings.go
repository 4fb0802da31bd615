package main

import (
	"github.com/dmitrymomot/xdkit/pkg/config"
	"github.com/dmitrymomot/xdkit/pkg/datefmt"
)

const envPrefix = "XD_"

// settings are read from XD_-prefixed variables and an optional .env file.
// Command-line flags override them.
type settings struct {
	Env        string `env:"ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT"`
	DateFormat string `env:"DATE_FORMAT"`
	Preset     string `env:"PRESET" envDefault:"hex"`
	Length     int    `env:"LENGTH" envDefault:"32"`
	Interval   int    `env:"INTERVAL"`
	Separator  string `env:"SEPARATOR"`
	PresetFile string `env:"PRESET_FILE"`
}

func loadSettings(environ map[string]string) (settings, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if environ != nil {
		opts = append(opts, config.WithEnvironment(environ))
	}

	var s settings
	if err := config.Load(&s, opts...); err != nil {
		return settings{}, err
	}
	if s.DateFormat == "" {
		s.DateFormat = datefmt.LayoutISO
	}
	return s, nil
}

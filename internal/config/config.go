// Package config loads CLI settings from AUTOMATA_* environment variables,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/automata/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the settings shared by every command.
type Config struct {
	LogLevel  string `env:"AUTOMATA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"AUTOMATA_LOG_FORMAT" envDefault:"text"`
	Debug     bool   `env:"AUTOMATA_DEBUG" envDefault:"false"`

	// HTTPAddr is the listen address of the serve command.
	HTTPAddr string `env:"AUTOMATA_HTTP_ADDR" envDefault:":8080"`
	// Definitions lists definition files the serve command registers next to the TCP fixture.
	Definitions []string `env:"AUTOMATA_DEFINITIONS" envSeparator:","`
	// Metrics toggles the /metrics endpoint and the transition counters.
	Metrics bool `env:"AUTOMATA_METRICS" envDefault:"true"`
}

// Load reads an optional .env file in the working directory and then parses
// the process environment. Values already set in the environment win.
func Load() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFile is like Load but reads the given dotenv file. Its values only fill
// variables that are not set in the process environment.
func LoadFile(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read env file: %w", err)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			values[k] = v
		}
	}
	return parse(env.Options{Environment: values})
}

// LoadFrom parses an explicit environment, ignoring the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if _, err := logging.ParseFormat(cfg.LogFormat); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Logger builds the application logger. Debug forces the debug level.
func (c Config) Logger() *slog.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	if c.Debug {
		level = slog.LevelDebug
	}
	format, _ := logging.ParseFormat(c.LogFormat)
	return logging.NewWithFormat(os.Stderr, level, format)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envVarPrefix = "REVOLVER"

// Config is the command configuration read from the environment.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Strict    bool   `envconfig:"STRICT"     default:"false"`
}

// LoadConfig reads the configuration from REVOLVER_* environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("loading configuration from environment: %w", err)
	}
	return &c, nil
}

// Logger builds a logger writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level `%s`: %w", c.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format `%s`: %w", c.LogFormat, ErrLogFormat)
	}
}

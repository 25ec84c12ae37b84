// Package config loads tool settings from the environment, with an optional
// .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings shared by the CLI and the catalogue server.
type Config struct {
	LogLevel  string
	LogFormat string

	// Server-only settings; unused by the one-shot CLI.
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "text": true}
)

// Load reads configuration, applying defaults where unset. Environment
// variables override .env file values, which override defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // .env is optional

	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		HTTPAddr:  v.GetString("HTTP_ADDR"),
	}

	if !validLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q (want debug, info, warn, or error)", cfg.LogLevel)
	}
	if !validFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("HTTP_ADDR is required")
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v.GetString("SHUTDOWN_TIMEOUT"))
	}
	cfg.ShutdownTimeout = shutdownTimeout

	return cfg, nil
}

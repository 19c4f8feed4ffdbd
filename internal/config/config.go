// Package config loads the environment shared by every demo program.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidSieveBound is returned by Load when MECHANICS_SIEVE_BOUND is negative.
var ErrInvalidSieveBound = errors.New("sieve bound must not be negative")

// Config holds the settings shared by every demo program.
type Config struct {
	LogLevel   string `env:"MECHANICS_LOG_LEVEL" envDefault:"info"`
	NoColor    bool   `env:"MECHANICS_NO_COLOR" envDefault:"false"`
	SieveBound int    `env:"MECHANICS_SIEVE_BOUND" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	if cfg.SieveBound < 0 {
		return Config{}, fmt.Errorf("MECHANICS_SIEVE_BOUND=%d: %w", cfg.SieveBound, ErrInvalidSieveBound)
	}

	return cfg, nil
}

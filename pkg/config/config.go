// Package config loads per-package Config structs from the process
// environment. A .env file, when present, is loaded once before the first
// parse; real environment variables always win.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig indicates env tag parsing failed.
	ErrParsingConfig = errors.New("failed to parse configuration")

	dotenvOnce sync.Once
)

// Load parses environment variables into cfg based on its `env:` field tags.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// The .env file is optional; ignore a missing one.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use for configuration the application cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

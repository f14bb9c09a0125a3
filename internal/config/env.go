// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` struct tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv reads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. An empty path means
// the optional default file.
func loadDotEnv(path string) error {
	optional := path == ""
	if optional {
		path = defaultDotEnvFile
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case optional && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrLoadingDotEnv, err)
	}
}

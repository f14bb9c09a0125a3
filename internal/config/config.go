// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. Fields are populated from env (`env`/`envPrefix` tags), flags,
// an optional JSON file and defaults.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Assist  Assist  `envPrefix:"ASSIST_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional .env file loaded into the process
	// environment before env parsing. Existing variables are not overridden.
	// Env: DOTENV, flag: -env-file
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version when no linker value is set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds relational store connection settings.
type DB struct {
	// DSN is a SQLite file path (or "file:" URI) or a PostgreSQL URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver forces the dialect ("sqlite3" or "postgres"). When empty the
	// dialect is derived from DSN.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Cache configures the optional Redis list cache. The cache is disabled
// while RedisAddress is empty.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound API settings.
type Adapter struct {
	// HTTPAddress is the base URL of the item API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API call. Zero leaves the transport default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Assist configures the AI categorisation and recipe expansion provider.
// With an empty APIKey the client falls back to the offline keyword assistant.
type Assist struct {
	// Env: ASSIST_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ASSIST_MODEL
	Model string `env:"MODEL"`
	// Env: ASSIST_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: ASSIST_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads the server configuration from flags, env,
// the optional .env and JSON files and the server defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(parseServerFlags, os.Args[1:]).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults(serverDefaults()).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

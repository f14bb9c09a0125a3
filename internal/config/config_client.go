package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
}

// ClientAdapter holds settings of the client's API transport.
type ClientAdapter struct {
	// HTTPAddress is the item API base URL.
	HTTPAddress string
	// RequestTimeout is the per-call timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientAssist holds AI provider settings. An empty APIKey selects the
// offline keyword assistant.
type ClientAssist struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Assist  ClientAssist
}

// GetClientConfig loads client flags, env, the optional .env and JSON files
// and client defaults, then maps and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(parseClientFlags, os.Args[1:]).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Assist: ClientAssist{
			APIKey:  cfg.Assist.APIKey,
			Model:   cfg.Assist.Model,
			BaseURL: cfg.Assist.BaseURL,
			Timeout: cfg.Assist.Timeout,
		},
	}
}

package config

import "time"

const (
	DefaultServerAddress  = "localhost:3000"
	DefaultDSN            = "grocery.db"
	DefaultAdapterAddress = "http://localhost:3000"
	DefaultAssistModel    = "gemini-3-flash-preview"
	DefaultAssistBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "debug"},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Cache: Cache{TTL: 5 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 30 * time.Second,
		},
	}
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "debug"},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: 30 * time.Second,
		},
		Assist: Assist{
			Model:   DefaultAssistModel,
			BaseURL: DefaultAssistBaseURL,
			Timeout: 30 * time.Second,
		},
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", in: "localhost:3000", wantHost: "localhost", wantPort: 3000},
		{name: "ipv4", in: "127.0.0.1:8080", wantHost: "127.0.0.1", wantPort: 8080},
		{name: "empty host", in: ":3000", wantHost: "", wantPort: 3000},
		{name: "no port", in: "localhost", wantErr: true},
		{name: "port not a number", in: "localhost:http", wantErr: true},
		{name: "port out of range", in: "localhost:70000", wantErr: true},
		{name: "hostname", in: "example.com:80", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:3000", (&NetAddress{Host: "localhost", Port: 3000}).String())
}

func TestParseServerFlags(t *testing.T) {
	cfg, err := parseServerFlags([]string{
		"-a", "127.0.0.1:9090",
		"-d", "postgres://u:p@localhost/grocery",
		"-driver", "postgres",
		"-redis", "localhost:6379",
		"-cache-ttl", "2m",
		"-request-timeout", "5s",
		"-config", "/etc/grocery.json",
		"-env-file", "prod.env",
		"-log-level", "info",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://u:p@localhost/grocery", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.RedisAddress)
	assert.Equal(t, 2*time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, "/etc/grocery.json", cfg.JSONFilePath)
	assert.Equal(t, "prod.env", cfg.DotEnvPath)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestParseServerFlags_Empty(t *testing.T) {
	cfg, err := parseServerFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Server.HTTPAddress)
}

func TestParseClientFlags(t *testing.T) {
	cfg, err := parseClientFlags([]string{
		"-server", "http://grocery.local:3000",
		"-assist-key", "secret",
		"-assist-model", "gemini-test",
		"-c", "client.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://grocery.local:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "secret", cfg.Assist.APIKey)
	assert.Equal(t, "gemini-test", cfg.Assist.Model)
	assert.Equal(t, "client.json", cfg.JSONFilePath)
}

func TestParseClientFlags_RejectsServerOnlyFlags(t *testing.T) {
	_, err := parseClientFlags([]string{"-d", "grocery.db"})
	assert.Error(t, err)
}

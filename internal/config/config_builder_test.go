package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func staticFlags(cfg *StructuredConfig) flagParser {
	return func([]string) (*StructuredConfig, error) { return cfg, nil }
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:3000", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/grocery")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "postgres://localhost/grocery", b.configs[0].Storage.DB.DSN)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags(parseServerFlags, []string{"-a", "not-an-address"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileIntoEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ASSIST_MODEL=dotenv-model\n"), 0o600))
	t.Setenv("ASSIST_MODEL", "")
	require.NoError(t, os.Unsetenv("ASSIST_MODEL"))

	cfg, err := newConfigBuilder().
		withFlags(staticFlags(&StructuredConfig{DotEnvPath: path}), nil).
		withDotEnv().
		withEnv().
		build()

	require.NoError(t, err)
	assert.Equal(t, "dotenv-model", cfg.Assist.Model)
}

func TestWithDotEnv_DoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-file\n"), 0o600))
	t.Setenv("APP_VERSION", "from-env")

	cfg, err := newConfigBuilder().
		withFlags(staticFlags(&StructuredConfig{DotEnvPath: path}), nil).
		withDotEnv().
		withEnv().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
}

func TestWithDotEnv_ExplicitMissingFileFails(t *testing.T) {
	b := newConfigBuilder().
		withFlags(staticFlags(&StructuredConfig{DotEnvPath: "/nonexistent/.env"}), nil).
		withDotEnv()

	assert.ErrorIs(t, b.err, ErrLoadingDotEnv)
}

func TestWithDotEnv_ImplicitFileIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Cache.RedisAddress = "localhost:6379"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "localhost:6379", b.configs[1].Storage.Cache.RedisAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_FirstPathWins(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "flag-file"
	second := StructuredJSONConfig{}
	second.App.Version = "env-file"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "flag-file", b.configs[2].App.Version)
}

// ── precedence ────────────────────────────────────────────────────────────────

func TestPrecedence_FlagsEnvJSONDefaults(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "127.0.0.1:7000"
	payload.Storage.DB.DSN = "json.db"
	payload.App.LogLevel = "warn"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().
		withFlags(parseServerFlags, []string{"-a", "localhost:8080"}).
		withEnv().
		withJSON().
		withDefaults(serverDefaults()).
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	require.NoError(t, cfg.validateServer())
}

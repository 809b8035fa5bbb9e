package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/greed-island/internal/config"
	"github.com/KirkDiggler/greed-island/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GREED_GAMEMASTER_API_KEY", "")
	t.Setenv("GREED_GAMEMASTER_PROVIDER", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.GRPCPort)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.StoreMemory, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, config.ProviderScripted, cfg.GameMaster.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GameMaster.Model)
	assert.Equal(t, 30*time.Second, cfg.GameMaster.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.ResolveDelay)
	assert.Equal(t, "Gon", cfg.Game.PlayerName)
}

func TestLoad_APIKeySelectsGemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.ProviderGemini, cfg.GameMaster.Provider)
	assert.Equal(t, "test-key", cfg.GameMaster.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GREED_SERVER_HTTP_PORT", "9090")
	t.Setenv("GREED_GAME_PLAYER_NAME", "Biscuit")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "Biscuit", cfg.Game.PlayerName)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
session:
  store: redis
  ttl: 1h
redis:
  addr: cache:6379
game:
  resolve_delay: 250ms
log:
  level: debug
  development: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StoreRedis, cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.ResolveDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GREED_SERVER_GRPC_PORT", "6000")
	path := writeConfig(t, "server:\n  grpc_port: 7000\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.GRPCPort)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoad_InvalidStore(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "session:\n  store: postgres\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate_GeminiRequiresKey(t *testing.T) {
	cfg := &config.Config{
		Server:     config.ServerConfig{GRPCPort: 50051, HTTPPort: 8080},
		Session:    config.SessionConfig{Store: config.StoreMemory},
		GameMaster: config.GameMasterConfig{Provider: config.ProviderGemini, RateLimit: 1, Burst: 1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gamemaster.api_key")
}

func TestValidate_PortsMustDiffer(t *testing.T) {
	cfg := &config.Config{
		Server:     config.ServerConfig{GRPCPort: 8080, HTTPPort: 8080},
		Session:    config.SessionConfig{Store: config.StoreMemory},
		GameMaster: config.GameMasterConfig{Provider: config.ProviderScripted},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.http_port")
}

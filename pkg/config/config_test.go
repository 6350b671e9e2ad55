package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "TELEGRAM_TOKEN", "TUTOR_TELEGRAM_TOKEN", "TUTOR_SERVER_ADDR", "TUTOR_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, 10, cfg.Server.RateLimit.Burst)
	assert.Equal(t, 60, cfg.Telegram.PollTimeout)
	assert.Equal(t, 50, cfg.Session.MaxTurns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Telegram.Token)
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
server:
  addr: ":9000"
  read_timeout: 3s
  rate_limit:
    rps: 0
telegram:
  token: file-token
session:
  max_turns: 8
log:
  level: debug
  development: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Zero(t, cfg.Server.RateLimit.RPS)
	assert.Equal(t, "file-token", cfg.Telegram.Token)
	assert.Equal(t, 8, cfg.Session.MaxTurns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "server:\n  addr: \":9000\"\n")
	t.Setenv("TUTOR_SERVER_ADDR", ":7000")
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("TUTOR_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_Port(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadConfig_Malformed(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "server: [unclosed\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "session:\n  max_turns: 0\nlog:\n  level: loud\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.max_turns")
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))

	t.Setenv("TUTOR_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("TUTOR_DOTENV_PROBE"))
	path := writeFile(t, ".env", "TUTOR_DOTENV_PROBE=loaded\n")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TUTOR_DOTENV_PROBE"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, "127.0.0.1", conf.Listen.BindIP)
	assert.Equal(t, "9100", conf.Listen.Port)
	assert.Equal(t, 60*time.Second, conf.Listen.Timeout)
	assert.Equal(t, "gemini", conf.Assistant.Provider)
	assert.InDelta(t, 0.7, conf.Assistant.Temperature, 0.0001)
	assert.Equal(t, 20, conf.Assistant.HistoryTurns)
	assert.False(t, conf.Mongo.Enabled)
	assert.False(t, conf.Redis.Enabled)
	assert.Equal(t, 6379, conf.Redis.Port)
	assert.Empty(t, conf.Catalog.DatasetPath)
	assert.Equal(t, "file", conf.Catalog.Source)
}

func TestLoad_FileValues(t *testing.T) {
	conf, err := Load(writeConfig(t, `
env: prod
listen:
  port: "8080"
assistant:
  provider: openai
  model: gpt-4o-mini
redis:
  enabled: true
  ttl: 720h
`))
	require.NoError(t, err)

	assert.Equal(t, "prod", conf.Env)
	assert.Equal(t, "8080", conf.Listen.Port)
	assert.Equal(t, "openai", conf.Assistant.Provider)
	assert.Equal(t, "gpt-4o-mini", conf.Assistant.Model)
	assert.True(t, conf.Redis.Enabled)
	assert.Equal(t, 720*time.Hour, conf.Redis.TTL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LISTEN_PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "key")

	conf, err := Load(writeConfig(t, "listen:\n  port: \"8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "9999", conf.Listen.Port)
	assert.Equal(t, "key", conf.Gemini.ApiKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
database:
  driver: mysql
  dsn: "user:pass@tcp(localhost:3306)/alfred"
jwt:
  secret: s3cret
  expire_hours: 12
model:
  provider: gemini
  api_key: key-from-file
  model: gemini-2.5-flash
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.Equal(t, "gemini", cfg.Model.Provider)
	assert.Equal(t, "key-from-file", cfg.Model.APIKey)
	// untouched sections keep their defaults
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, "@hourly", cfg.Recurrence.Schedule)
	assert.False(t, cfg.Qdrant.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "model:\n  api_key: from-file\n")
	t.Setenv("ALFRED_MODEL_API_KEY", "from-env")
	t.Setenv("ALFRED_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingKeyIsAllowed(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log:\n  level: info\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Model.APIKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "database:\n  driver: oracle\n"))
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "model:\n  provider: llama\n"))
		assert.ErrorContains(t, err, "unsupported model provider")
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

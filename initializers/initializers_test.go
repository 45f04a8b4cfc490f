package initializers

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_DSN", "ALLOWED_ORIGINS", "PID_FILE", "LOG_FILE", "LOG_LEVEL", "LOG_FORMAT", "AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	cfg := LoadEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.PIDFile, "server.pid")
	assert.Contains(t, cfg.LogFile, "server.log")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "file.db")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.klenhub.com, https://klenhub.com,")
	t.Setenv("PID_FILE", "/tmp/klenhub.pid")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := LoadEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file.db", cfg.DBDSN)
	assert.Equal(t, []string{"https://admin.klenhub.com", "https://klenhub.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "/tmp/klenhub.pid", cfg.PIDFile)
	assert.True(t, cfg.AutoMigrate)
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestOpenDBRequiresDSN(t *testing.T) {
	_, err := OpenDB("sqlite", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN is required")
}

func TestOpenDBSQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := OpenDB("sqlite", ":memory:")
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestInitLoggerLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := initLogger(&Config{LogLevel: "warn"}, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = initLogger(&Config{LogLevel: "nonsense"}, &buf)
	logger.Info().Msg("info visible")
	assert.Contains(t, buf.String(), "info visible")
}

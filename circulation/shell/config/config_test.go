package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell/config"
)

func Test_Load_Uses_Defaults(t *testing.T) {
	// arrange
	t.Setenv("CIRCULATION_ENGINE", "")
	t.Setenv("CIRCULATION_ADAPTER", "")
	t.Setenv("LOG_FORMAT", "")

	// act
	cfg, rest, err := config.Load([]string{"loans"})

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.EnginePostgres, cfg.Engine)
	assert.Equal(t, config.AdapterPGXPool, cfg.Adapter)
	assert.Equal(t, "events", cfg.TableName)
	assert.Equal(t, []string{"loans"}, rest)
}

func Test_Load_Flag_Beats_Env_Beats_Default(t *testing.T) {
	// arrange
	t.Setenv("CIRCULATION_ENGINE", "memory")
	t.Setenv("CIRCULATION_ADAPTER", "sqlx")
	t.Setenv("LOG_LEVEL", "warn")

	// act
	cfg, _, err := config.Load([]string{"-adapter", "sqldb"})

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.EngineMemory, cfg.Engine)
	assert.Equal(t, config.AdapterSQLDB, cfg.Adapter)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func Test_Load_Rejects_Unknown_Values(t *testing.T) {
	_, _, engineErr := config.Load([]string{"-engine", "badger"})
	_, _, adapterErr := config.Load([]string{"-adapter", "gorm"})
	_, _, formatErr := config.Load([]string{"-log-format", "xml"})

	assert.ErrorIs(t, engineErr, config.ErrUnknownEngine)
	assert.ErrorIs(t, adapterErr, config.ErrUnknownAdapter)
	assert.ErrorIs(t, formatErr, config.ErrUnknownLogFormat)
}

func Test_NewLogger_Honours_Format_And_Level(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := config.NewLogger(config.Config{LogLevel: "warn", LogFormat: config.LogFormatJSON}, &buf)

	// act
	logger.Info("hidden")
	logger.Warn("shown", "copy_id", "c-1")

	// assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"copy_id":"c-1"`)
	assert.Equal(t, slog.LevelDebug, config.ParseLevel("DEBUG"))
}

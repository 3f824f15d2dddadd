package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.AppPort)
	assert.Equal(t, "/data/agribrain.db", cfg.DatabasePath)
	assert.Equal(t, BackendSQLite, cfg.HistoryBackend)
	assert.Equal(t, "London", cfg.DefaultCity)
	assert.Empty(t, cfg.CameraCommand)
	assert.Equal(t, time.Second, cfg.ChatDelay)
	assert.Equal(t, 2*time.Second, cfg.AnalysisDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.ReportDelay)
	assert.Equal(t, 5*time.Second, cfg.PendingTimeout)
	assert.Equal(t, 10*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 10*time.Second, cfg.PredictTimeout)
	assert.Empty(t, ConfigFileUsed())
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	env := "DEFAULT_CITY=Pune\nCHAT_DELAY=250ms\nHISTORY_BACKEND=memory\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("APP_PORT", "8081")
	t.Setenv("WEATHER_API_KEY", "secret")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "Pune", cfg.DefaultCity)
	assert.Equal(t, 250*time.Millisecond, cfg.ChatDelay)
	assert.Equal(t, BackendMemory, cfg.HistoryBackend)
	assert.Equal(t, 8081, cfg.AppPort)
	assert.Equal(t, "secret", cfg.WeatherAPIKey)
	assert.Equal(t, filepath.Join(dir, ".env"), ConfigFileUsed())
}

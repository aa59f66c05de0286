package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DATASET_PATH", "WEATHER_API_KEY", "API_KEYS", "DATABASE_URL", "PREFETCH_ENABLED"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATASET_PATH", "data/crashes.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data/crashes.json", cfg.DatasetPath)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	assert.False(t, cfg.WeatherEnabled())
	assert.Empty(t, cfg.APIKeys)
	// пустая строка не парсится как bool, остается значение по умолчанию
	assert.True(t, cfg.PrefetchEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATASET_PATH", "/srv/crashes.json")
	t.Setenv("API_KEYS", " key-1 , ,key-2")
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_CACHE_TTL", "1h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DATASET_SEED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.True(t, cfg.WeatherEnabled())
	assert.Equal(t, time.Hour, cfg.WeatherCacheTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.DatasetSeed)
}

func TestLoadConfig_RequiresDatasetPath(t *testing.T) {
	t.Setenv("DATASET_PATH", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_PATH")
}

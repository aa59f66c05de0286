package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/air_crash_atlas/internal/models"
)

type WeatherCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewWeatherCache(redisClient *redis.Client, ttl time.Duration) *WeatherCache {
	return &WeatherCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// WeatherKey строит ключ кеша; координаты округляются до 4 знаков (~11 м)
func WeatherKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.4f,%.4f", lat, lon)
}

// GetWeather пытается получить погоду из Redis. Промах кеша - (nil, nil).
func (c *WeatherCache) GetWeather(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	val, err := c.redisClient.Get(ctx, WeatherKey(lat, lon)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weather from cache: %w", err)
	}

	w := &models.Weather{}
	if err := json.Unmarshal(val, w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather from cache: %w", err)
	}
	return w, nil
}

// SetWeather сохраняет погоду в Redis с ограниченным сроком жизни
func (c *WeatherCache) SetWeather(ctx context.Context, lat, lon float64, w models.Weather) error {
	val, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal weather for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, WeatherKey(lat, lon), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set weather in cache: %w", err)
	}
	return nil
}

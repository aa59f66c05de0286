package weather

import (
	"context"

	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/observability"
	"github.com/sirupsen/logrus"
)

// Cache - хранилище последних результатов по координатам
type Cache interface {
	GetWeather(ctx context.Context, lat, lon float64) (*models.Weather, error)
	SetWeather(ctx context.Context, lat, lon float64, w models.Weather) error
}

// CachedProvider оборачивает Provider кешем. Кешируются только успешные ответы.
type CachedProvider struct {
	inner   Provider
	cache   Cache
	metrics *observability.Metrics
	logger  *logrus.Logger
}

// NewCachedProvider создает декоратор с кешем вокруг провайдера
func NewCachedProvider(inner Provider, cache Cache, metrics *observability.Metrics, logger *logrus.Logger) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

func (p *CachedProvider) Current(ctx context.Context, lat, lon float64) (models.Weather, error) {
	log := p.logger.WithFields(logrus.Fields{"component": "weather_cache", "lat": lat, "lon": lon})

	cached, err := p.cache.GetWeather(ctx, lat, lon)
	if err != nil {
		// ошибка кеша не мешает запросу к API
		log.WithError(err).Warn("Failed to read weather from cache")
	}
	if cached != nil {
		p.metrics.WeatherCache.WithLabelValues("hit").Inc()
		return *cached, nil
	}
	p.metrics.WeatherCache.WithLabelValues("miss").Inc()

	w, err := p.inner.Current(ctx, lat, lon)
	if err != nil {
		return models.Weather{}, err
	}

	if err := p.cache.SetWeather(ctx, lat, lon, w); err != nil {
		log.WithError(err).Warn("Failed to store weather in cache")
	}
	return w, nil
}

package service

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/air_crash_atlas/internal/engine"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/observability"
	"github.com/shenikar/air_crash_atlas/internal/prefetch"
	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound     = errors.New("crash record not found")
	ErrNoCoordinates      = errors.New("crash record has no coordinates")
	ErrWeatherUnavailable = errors.New("weather data unavailable")
	ErrPrefetchDisabled   = errors.New("weather prefetch is disabled")
)

// DatasetSource определяет контракт источника набора данных (файл или БД)
type DatasetSource interface {
	Load(ctx context.Context) ([]models.CrashRecord, error)
}

// WeatherProvider определяет контракт внешнего погодного сервиса
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (models.Weather, error)
}

// PrefetchPublisher определяет контракт очереди прогрева кеша погоды
type PrefetchPublisher interface {
	Publish(ctx context.Context, jobs []prefetch.Job) error
}

// DashboardService определяет контракт бизнес-логики панели
type DashboardService interface {
	Reload(ctx context.Context) (int, error)
	Crashes(criteria models.FilterCriteria) []models.CrashRecord
	Dashboard(criteria models.FilterCriteria, topTypes int) Dashboard
	Search(query string) models.SearchResult
	Types() []string
	Crash(id int) (models.CrashRecord, error)
	Related(id int) ([]RelatedCrash, error)
	Weather(ctx context.Context, id int) (models.Weather, error)
	PrefetchWeather(ctx context.Context, criteria models.FilterCriteria) (int, error)
}

// Dashboard - все агрегаты для текущего фильтра
type Dashboard struct {
	Summary models.Summary
	Decades []models.DecadeBucket
	Years   []models.YearBucket
	Types   []models.TypeBucket
}

// RelatedCrash - связанная катастрофа и расстояние до исходной, если оно известно
type RelatedCrash struct {
	Record     models.CrashRecord
	DistanceKm *float64
}

type dashboardService struct {
	source    DatasetSource
	weather   WeatherProvider
	publisher PrefetchPublisher
	metrics   *observability.Metrics
	logger    *logrus.Logger

	mu      sync.RWMutex
	records []models.CrashRecord
}

// NewDashboardService создает сервис. weather и publisher могут быть nil:
// тогда погода всегда недоступна, а прогрев выключен.
func NewDashboardService(source DatasetSource, weather WeatherProvider, publisher PrefetchPublisher, metrics *observability.Metrics, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		source:    source,
		weather:   weather,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		records:   []models.CrashRecord{},
	}
}

// snapshot возвращает текущий набор. Слайс не изменяется после загрузки, Reload заменяет его целиком.
func (s *dashboardService) snapshot() []models.CrashRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *dashboardService) observe(operation string) func() {
	timer := prometheus.NewTimer(s.metrics.QueryDuration.WithLabelValues(operation))
	return func() { timer.ObserveDuration() }
}

// Reload загружает набор данных из источника и атомарно подменяет текущий
func (s *dashboardService) Reload(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Reload",
	})
	log.Info("Loading crash dataset")

	records, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.DatasetReloads.WithLabelValues("error").Inc()
		log.WithError(err).Error("Failed to load crash dataset")
		return 0, fmt.Errorf("service: could not load dataset: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.metrics.DatasetReloads.WithLabelValues("success").Inc()
	s.metrics.DatasetRecords.Set(float64(len(records)))
	log.WithField("count", len(records)).Info("Crash dataset loaded")
	return len(records), nil
}

// Crashes возвращает отфильтрованные записи
func (s *dashboardService) Crashes(criteria models.FilterCriteria) []models.CrashRecord {
	defer s.observe("filter")()
	return engine.FilterRecords(s.snapshot(), criteria)
}

// Dashboard считает сводку и все разбивки по отфильтрованным записям
func (s *dashboardService) Dashboard(criteria models.FilterCriteria, topTypes int) Dashboard {
	defer s.observe("dashboard")()

	filtered := engine.FilterRecords(s.snapshot(), criteria)
	return Dashboard{
		Summary: engine.ComputeSummary(filtered),
		Decades: engine.GroupByDecade(filtered),
		Years:   engine.GroupByYear(filtered),
		Types:   engine.GroupByTypeWithFatalities(filtered, topTypes),
	}
}

// Search выполняет полнотекстовый поиск по всему набору
func (s *dashboardService) Search(query string) models.SearchResult {
	defer s.observe("search")()
	return engine.SearchRecords(s.snapshot(), query)
}

// Types возвращает список типов воздушных судов для фильтра
func (s *dashboardService) Types() []string {
	return engine.Types(s.snapshot())
}

// Crash возвращает запись по суррогатному ID
func (s *dashboardService) Crash(id int) (models.CrashRecord, error) {
	records := s.snapshot()
	if id < 0 || id >= len(records) {
		return models.CrashRecord{}, fmt.Errorf("service: crash %d: %w", id, ErrRecordNotFound)
	}
	return records[id], nil
}

// Related возвращает связанные катастрофы (та же страна или близкий год)
func (s *dashboardService) Related(id int) ([]RelatedCrash, error) {
	defer s.observe("related")()

	records := s.snapshot()
	if id < 0 || id >= len(records) {
		return nil, fmt.Errorf("service: crash %d: %w", id, ErrRecordNotFound)
	}
	subject := records[id]

	matches := engine.FindRelated(records, subject, engine.DefaultYearWindow, engine.DefaultRelatedLimit)
	related := make([]RelatedCrash, 0, len(matches))
	for _, r := range matches {
		rc := RelatedCrash{Record: r}
		if d, ok := engine.DistanceKm(subject, r); ok {
			rc.DistanceKm = &d
		}
		related = append(related, rc)
	}
	return related, nil
}

// Weather запрашивает текущую погоду в точке катастрофы.
// Любая ошибка внешнего сервиса превращается в ErrWeatherUnavailable.
func (s *dashboardService) Weather(ctx context.Context, id int) (models.Weather, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dashboard",
		"method":   "Weather",
		"crash_id": id,
	})

	record, err := s.Crash(id)
	if err != nil {
		return models.Weather{}, err
	}
	if !record.HasCoordinates() {
		return models.Weather{}, fmt.Errorf("service: crash %d: %w", id, ErrNoCoordinates)
	}
	if s.weather == nil {
		s.metrics.WeatherRequests.WithLabelValues("unavailable").Inc()
		return models.Weather{}, ErrWeatherUnavailable
	}

	w, err := s.weather.Current(ctx, *record.Latitude, *record.Longitude)
	if err != nil {
		s.metrics.WeatherRequests.WithLabelValues("error").Inc()
		log.WithError(err).Warn("Weather lookup failed")
		return models.Weather{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	s.metrics.WeatherRequests.WithLabelValues("success").Inc()
	return w, nil
}

// PrefetchWeather ставит в очередь прогрев погоды для отфильтрованных записей с координатами
func (s *dashboardService) PrefetchWeather(ctx context.Context, criteria models.FilterCriteria) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "PrefetchWeather",
	})
	if s.publisher == nil {
		return 0, ErrPrefetchDisabled
	}

	plottable := engine.Plottable(engine.FilterRecords(s.snapshot(), criteria))
	now := time.Now().UTC()
	jobs := make([]prefetch.Job, 0, len(plottable))
	for _, r := range plottable {
		jobs = append(jobs, prefetch.Job{
			ID:         uuid.New(),
			RecordID:   r.ID,
			Latitude:   *r.Latitude,
			Longitude:  *r.Longitude,
			EnqueuedAt: now,
		})
	}

	if err := s.publisher.Publish(ctx, jobs); err != nil {
		log.WithError(err).Error("Failed to enqueue weather prefetch jobs")
		return 0, fmt.Errorf("service: could not enqueue prefetch: %w", err)
	}

	s.metrics.PrefetchJobs.WithLabelValues("enqueued").Add(float64(len(jobs)))
	log.WithField("count", len(jobs)).Info("Weather prefetch enqueued")
	return len(jobs), nil
}

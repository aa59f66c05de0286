package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/air_crash_atlas/internal/config"
	"github.com/shenikar/air_crash_atlas/internal/engine"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	msgWeatherUnavailable = "Weather data unavailable"
	msgNoCoordinates      = "Crash location has no coordinates"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindQuery связывает и валидирует query-параметры; при ошибке отвечает 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindFilter собирает критерии фильтра из query-параметров
func (h *Handler) bindFilter(c *gin.Context, log *logrus.Entry, q *FilterQuery) (models.FilterCriteria, bool) {
	if q.YearMin != nil && q.YearMax != nil && *q.YearMin > *q.YearMax {
		log.Warn("Year range is inverted")
		c.JSON(http.StatusBadRequest, gin.H{"error": "yearMin must not be greater than yearMax"})
		return models.FilterCriteria{}, false
	}
	return QueryToFilterCriteria(*q), true
}

func parseCrashID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crash ID"})
		return 0, false
	}
	return id, true
}

// @Summary List crashes
// @Description Get crashes matching the filter, with map marker hints
// @Tags Crashes
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type, 'All' for any"
// @Param region query string false "Case-insensitive country substring"
// @Param minFatalities query int false "Minimum fatalities" default(0)
// @Success 200 {object} CrashListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /crashes [get]
func (h *Handler) listCrashes(c *gin.Context) {
	log := h.logger.WithField("method", "listCrashes")

	var q FilterQuery
	if !h.bindQuery(c, log, &q) {
		return
	}
	criteria, ok := h.bindFilter(c, log, &q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ModelsToCrashListResponse(h.dashboardService.Crashes(criteria)))
}

// @Summary Search crashes
// @Description Case-insensitive substring search over location, country and type. A blank query means no search is active.
// @Tags Crashes
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /crashes/search [get]
func (h *Handler) searchCrashes(c *gin.Context) {
	log := h.logger.WithField("method", "searchCrashes")

	var q SearchQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	c.JSON(http.StatusOK, SearchResultToResponse(h.dashboardService.Search(q.Q)))
}

// @Summary List aircraft types
// @Description Distinct aircraft types present in the dataset
// @Tags Crashes
// @Produce json
// @Success 200 {object} TypesResponse
// @Router /crashes/types [get]
func (h *Handler) listTypes(c *gin.Context) {
	c.JSON(http.StatusOK, TypesResponse{Types: h.dashboardService.Types()})
}

// @Summary Get crash by ID
// @Description Get a single crash record
// @Tags Crashes
// @Produce json
// @Param id path int true "Crash ID"
// @Success 200 {object} CrashResponse
// @Failure 400 {object} map[string]string "Invalid crash ID"
// @Failure 404 {object} map[string]string "Crash not found"
// @Router /crashes/{id} [get]
func (h *Handler) getCrash(c *gin.Context) {
	id, ok := parseCrashID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCrash").WithField("id", id)

	record, err := h.dashboardService.Crash(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get crash from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "crash not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToCrashResponse(record))
}

// @Summary Related crashes
// @Description Up to five crashes in the same country or within five years
// @Tags Crashes
// @Produce json
// @Param id path int true "Crash ID"
// @Success 200 {array} RelatedCrashResponse
// @Failure 400 {object} map[string]string "Invalid crash ID"
// @Failure 404 {object} map[string]string "Crash not found"
// @Router /crashes/{id}/related [get]
func (h *Handler) relatedCrashes(c *gin.Context) {
	id, ok := parseCrashID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "relatedCrashes").WithField("id", id)

	related, err := h.dashboardService.Related(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get related crashes from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "crash not found"})
		return
	}
	c.JSON(http.StatusOK, RelatedToResponses(related))
}

// @Summary Weather at crash location
// @Description Current weather at the crash coordinates. Lookup failures are reported as available=false.
// @Tags Weather
// @Produce json
// @Param id path int true "Crash ID"
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string "Invalid crash ID"
// @Failure 404 {object} map[string]string "Crash not found"
// @Router /crashes/{id}/weather [get]
func (h *Handler) crashWeather(c *gin.Context) {
	id, ok := parseCrashID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "crashWeather").WithField("id", id)

	w, err := h.dashboardService.Weather(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, WeatherToResponse(w))
	case errors.Is(err, service.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "crash not found"})
	case errors.Is(err, service.ErrNoCoordinates):
		c.JSON(http.StatusOK, WeatherResponse{Available: false, Message: msgNoCoordinates})
	default:
		log.WithError(err).Warn("Weather lookup failed")
		c.JSON(http.StatusOK, WeatherResponse{Available: false, Message: msgWeatherUnavailable})
	}
}

// @Summary Dashboard aggregates
// @Description Summary, decade, year and aircraft type breakdowns for the filter
// @Tags Stats
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type, 'All' for any"
// @Param region query string false "Case-insensitive country substring"
// @Param minFatalities query int false "Minimum fatalities" default(0)
// @Param topN query int false "Number of aircraft types" default(8)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	dashboard, ok := h.dashboard(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, DashboardToResponse(dashboard))
}

// @Summary Summary statistics
// @Tags Stats
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type"
// @Param region query string false "Country substring"
// @Param minFatalities query int false "Minimum fatalities"
// @Success 200 {object} models.Summary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /stats/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	if dashboard, ok := h.dashboard(c, h.logger.WithField("method", "getSummary")); ok {
		c.JSON(http.StatusOK, dashboard.Summary)
	}
}

// @Summary Crashes per decade
// @Tags Stats
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type"
// @Param region query string false "Country substring"
// @Param minFatalities query int false "Minimum fatalities"
// @Success 200 {array} models.DecadeBucket
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /stats/decades [get]
func (h *Handler) getDecades(c *gin.Context) {
	if dashboard, ok := h.dashboard(c, h.logger.WithField("method", "getDecades")); ok {
		c.JSON(http.StatusOK, dashboard.Decades)
	}
}

// @Summary Crashes per year
// @Tags Stats
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type"
// @Param region query string false "Country substring"
// @Param minFatalities query int false "Minimum fatalities"
// @Success 200 {array} models.YearBucket
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /stats/years [get]
func (h *Handler) getYears(c *gin.Context) {
	if dashboard, ok := h.dashboard(c, h.logger.WithField("method", "getYears")); ok {
		c.JSON(http.StatusOK, dashboard.Years)
	}
}

// @Summary Top aircraft types
// @Tags Stats
// @Produce json
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type"
// @Param region query string false "Country substring"
// @Param minFatalities query int false "Minimum fatalities"
// @Param topN query int false "Number of aircraft types" default(8)
// @Success 200 {array} models.TypeBucket
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /stats/types [get]
func (h *Handler) getTypeStats(c *gin.Context) {
	if dashboard, ok := h.dashboard(c, h.logger.WithField("method", "getTypeStats")); ok {
		c.JSON(http.StatusOK, dashboard.Types)
	}
}

func (h *Handler) dashboard(c *gin.Context, log *logrus.Entry) (service.Dashboard, bool) {
	var q DashboardQuery
	if !h.bindQuery(c, log, &q) {
		return service.Dashboard{}, false
	}
	criteria, ok := h.bindFilter(c, log, &q.FilterQuery)
	if !ok {
		return service.Dashboard{}, false
	}

	topN := q.TopN
	if topN == 0 {
		topN = engine.DefaultTopTypes
	}
	return h.dashboardService.Dashboard(criteria, topN), true
}

// @Summary Reload dataset
// @Description Reload the crash dataset from its source. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dataset/reload [post]
func (h *Handler) reloadDataset(c *gin.Context) {
	log := h.logger.WithField("method", "reloadDataset")

	count, err := h.dashboardService.Reload(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to reload dataset in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ReloadResponse{Loaded: count})
}

// @Summary Prefetch weather
// @Description Enqueue weather cache warmup for every plottable crash matching the filter. Requires API key.
// @Tags Weather
// @Produce json
// @Security ApiKeyAuth
// @Param yearMin query int false "Lower year bound (inclusive)"
// @Param yearMax query int false "Upper year bound (inclusive)"
// @Param type query string false "Aircraft type"
// @Param region query string false "Country substring"
// @Param minFatalities query int false "Minimum fatalities"
// @Success 202 {object} PrefetchResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Prefetch disabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/prefetch [post]
func (h *Handler) prefetchWeather(c *gin.Context) {
	log := h.logger.WithField("method", "prefetchWeather")

	var q FilterQuery
	if !h.bindQuery(c, log, &q) {
		return
	}
	criteria, ok := h.bindFilter(c, log, &q)
	if !ok {
		return
	}

	count, err := h.dashboardService.PrefetchWeather(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, service.ErrPrefetchDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "weather prefetch is disabled"})
			return
		}
		log.WithError(err).Error("Failed to enqueue weather prefetch")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, PrefetchResponse{Enqueued: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

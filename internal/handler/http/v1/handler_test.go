package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/air_crash_atlas/internal/config"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/service"
	"github.com/shenikar/air_crash_atlas/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func lagos() models.CrashRecord {
	return models.CrashRecord{ID: 0, Location: "Lagos", Year: 1977, Type: "Boeing 707", Fatalities: 60, Country: "Nigeria", Latitude: floatPtr(6.45), Longitude: floatPtr(3.39)}
}

func kano() models.CrashRecord {
	return models.CrashRecord{ID: 1, Location: "Kano", Year: 1980, Type: "DC-3", Fatalities: 4, Country: "Nigeria"}
}

func TestListCrashes_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedCriteria := models.FilterCriteria{
		YearMin:       intPtr(1970),
		YearMax:       intPtr(1990),
		Type:          "All",
		Region:        "nig",
		MinFatalities: 1,
	}

	mockService.EXPECT().Crashes(expectedCriteria).Return([]models.CrashRecord{lagos(), kano()}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes?yearMin=1970&yearMax=1990&type=All&region=nig&minFatalities=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CrashListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Plottable)
	require.Len(t, resp.Crashes, 2)
	assert.Equal(t, MarkerResponse{Color: "red", Radius: 6}, resp.Crashes[0].Marker)
	assert.Equal(t, MarkerResponse{Color: "yellow", Radius: 5}, resp.Crashes[1].Marker)
	assert.Nil(t, resp.Crashes[1].Latitude)
}

func TestListCrashes_NoFilter(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Crashes(models.FilterCriteria{}).Return([]models.CrashRecord{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"plottable":0,"crashes":[]}`, w.Body.String())
}

func TestListCrashes_InvalidQuery(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{name: "not a number", query: "yearMin=abc"},
		{name: "negative fatalities", query: "minFatalities=-1"},
		{name: "inverted year range", query: "yearMin=2000&yearMax=1990"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Crashes(gomock.Any()).Times(0)

			w := makeRequest(router, "GET", "/api/v1/crashes?"+tc.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSearchCrashes_Active(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Search("lagos").Return(models.SearchResult{Active: true, Query: "lagos", Records: []models.CrashRecord{lagos()}}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/search?q=lagos", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Lagos", resp.Crashes[0].Location)
}

func TestSearchCrashes_Inactive(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Search("").Return(models.SearchResult{Active: false}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/search", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active":false,"count":0,"crashes":[]}`, w.Body.String())
}

func TestListTypes(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Types().Return([]string{"Boeing 707", "DC-3"}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/types", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"types":["Boeing 707","DC-3"]}`, w.Body.String())
}

func TestGetCrash_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Crash(0).Return(lagos(), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lagos", resp.Location)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, 6.45, *resp.Latitude)
}

func TestGetCrash_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	for _, id := range []string{"abc", "-3"} {
		w := makeRequest(router, "GET", "/api/v1/crashes/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestGetCrash_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Crash(99).Return(models.CrashRecord{}, fmt.Errorf("service: crash 99: %w", service.ErrRecordNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"crash not found"}`, w.Body.String())
}

func TestRelatedCrashes_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Related(0).Return([]service.RelatedCrash{
		{Record: kano()},
		{Record: models.CrashRecord{ID: 3, Location: "N'Djamena", Year: 1979, Country: "Chad", Latitude: floatPtr(12.13), Longitude: floatPtr(15.05)}, DistanceKm: floatPtr(1426.2)},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/0/related", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RelatedCrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Kano", resp[0].Location)
	assert.Nil(t, resp[0].DistanceKm)
	require.NotNil(t, resp[1].DistanceKm)
	assert.Equal(t, 1426.2, *resp[1].DistanceKm)
}

func TestRelatedCrashes_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Related(7).Return(nil, service.ErrRecordNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crashes/7/related", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrashWeather(t *testing.T) {
	observedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		weather    models.Weather
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "available",
			weather:    models.Weather{Temperature: 28.5, Humidity: 70, WindSpeed: 3.1, Description: "scattered clouds", ObservedAt: observedAt},
			wantStatus: http.StatusOK,
			wantBody:   `{"available":true,"temperature":28.5,"humidity":70,"wind_speed":3.1,"description":"scattered clouds","observed_at":"2024-05-01T12:00:00Z"}`,
		},
		{
			name:       "lookup failed",
			err:        fmt.Errorf("%w: 401 Unauthorized", service.ErrWeatherUnavailable),
			wantStatus: http.StatusOK,
			wantBody:   `{"available":false,"message":"Weather data unavailable"}`,
		},
		{
			name:       "no coordinates",
			err:        service.ErrNoCoordinates,
			wantStatus: http.StatusOK,
			wantBody:   `{"available":false,"message":"Crash location has no coordinates"}`,
		},
		{
			name:       "unknown crash",
			err:        service.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"crash not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Weather(gomock.Any(), 0).Return(tc.weather, tc.err).Times(1)

			w := makeRequest(router, "GET", "/api/v1/crashes/0/weather", nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestGetDashboard_DefaultTopN(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	dashboard := service.Dashboard{
		Summary: models.Summary{Count: 2, TotalFatalities: 64, AverageFatalities: 32},
		Decades: []models.DecadeBucket{{Decade: 1970, Count: 1}, {Decade: 1980, Count: 1}},
		Years:   []models.YearBucket{{Year: 1977, Count: 1}, {Year: 1980, Count: 1}},
		Types:   []models.TypeBucket{{Type: "Boeing 707", Crashes: 1, Fatalities: 60}, {Type: "DC-3", Crashes: 1, Fatalities: 4}},
	}

	mockService.EXPECT().Dashboard(models.FilterCriteria{Region: "nigeria"}, 8).Return(dashboard).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard?region=nigeria", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dashboard.Summary, resp.Summary)
	assert.Equal(t, dashboard.Decades, resp.Decades)
	assert.Equal(t, dashboard.Years, resp.Years)
	assert.Equal(t, dashboard.Types, resp.Types)
}

func TestGetDashboard_InvalidTopN(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/dashboard?topN=500", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoints(t *testing.T) {
	dashboard := service.Dashboard{
		Summary: models.Summary{Count: 1, TotalFatalities: 12, AverageFatalities: 12},
		Decades: []models.DecadeBucket{{Decade: 1980, Count: 1}},
		Years:   []models.YearBucket{{Year: 1985, Count: 1}},
		Types:   []models.TypeBucket{{Type: "X", Crashes: 1, Fatalities: 12}},
	}

	testCases := []struct {
		path     string
		topN     int
		wantBody string
	}{
		{path: "/api/v1/stats/summary?minFatalities=1", topN: 8, wantBody: `{"count":1,"total_fatalities":12,"average_fatalities":12}`},
		{path: "/api/v1/stats/decades?minFatalities=1", topN: 8, wantBody: `[{"decade":1980,"count":1}]`},
		{path: "/api/v1/stats/years?minFatalities=1", topN: 8, wantBody: `[{"year":1985,"count":1}]`},
		{path: "/api/v1/stats/types?minFatalities=1&topN=3", topN: 3, wantBody: `[{"type":"X","crashes":1,"fatalities":12}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Dashboard(models.FilterCriteria{MinFatalities: 1}, tc.topN).Return(dashboard).Times(1)

			w := makeRequest(router, "GET", tc.path, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestReloadDataset_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Reload(gomock.Any()).Return(42, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dataset/reload", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loaded":42}`, w.Body.String())
}

func TestReloadDataset_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Reload(gomock.Any()).Return(0, errors.New("disk error")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dataset/reload", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAdminRoutes_Unauthorized(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing key", headers: map[string]string{}},
		{name: "wrong key", headers: map[string]string{"X-API-Key": "nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Reload(gomock.Any()).Times(0)
			mockService.EXPECT().PrefetchWeather(gomock.Any(), gomock.Any()).Times(0)

			for _, path := range []string{"/api/v1/dataset/reload", "/api/v1/weather/prefetch"} {
				w := makeRequest(router, "POST", path, nil, tc.headers)
				assert.Equal(t, http.StatusUnauthorized, w.Code, path)
			}
		})
	}
}

func TestPrefetchWeather_Accepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().PrefetchWeather(gomock.Any(), models.FilterCriteria{Type: "DC-3"}).Return(5, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/weather/prefetch?type=DC-3", nil, apiKeyHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"enqueued":5}`, w.Body.String())
}

func TestPrefetchWeather_Disabled(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().PrefetchWeather(gomock.Any(), gomock.Any()).Return(0, service.ErrPrefetchDisabled).Times(1)

	w := makeRequest(router, "POST", "/api/v1/weather/prefetch", nil, apiKeyHeader)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

package weather

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestClient_Current_Success(t *testing.T) {
	observed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(observed)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "6.4500", r.URL.Query().Get("lat"))
		assert.Equal(t, "3.3900", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main":{"temp":29.5,"humidity":78},"wind":{"speed":3.2},"weather":[{"description":"scattered clouds"}]}`))
	}))
	defer srv.Close()

	c := NewClient(testAPIKey, srv.URL, 5*time.Second, clock, quietLogger())
	w, err := c.Current(context.Background(), 6.45, 3.39)
	require.NoError(t, err)

	assert.Equal(t, 29.5, w.Temperature)
	assert.Equal(t, 78.0, w.Humidity)
	assert.Equal(t, 3.2, w.WindSpeed)
	assert.Equal(t, "scattered clouds", w.Description)
	assert.Equal(t, observed, w.ObservedAt)
}

func TestClient_Current_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := NewClient("bad", srv.URL, 5*time.Second, nil, quietLogger())
	_, err := c.Current(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Current_NoConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":1},"weather":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testAPIKey, srv.URL, 5*time.Second, nil, quietLogger())
	_, err := c.Current(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrNoConditions)
}

func TestClient_Current_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testAPIKey, srv.URL, 50*time.Millisecond, nil, quietLogger())
	_, err := c.Current(context.Background(), 1, 1)
	require.Error(t, err)
}

// --- cache decorator ---

type countingProvider struct {
	calls  int
	result models.Weather
	err    error
}

func (p *countingProvider) Current(_ context.Context, _, _ float64) (models.Weather, error) {
	p.calls++
	return p.result, p.err
}

type memoryCache struct {
	entries map[[2]float64]models.Weather
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[[2]float64]models.Weather)}
}

func (c *memoryCache) GetWeather(_ context.Context, lat, lon float64) (*models.Weather, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	w, ok := c.entries[[2]float64{lat, lon}]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (c *memoryCache) SetWeather(_ context.Context, lat, lon float64, w models.Weather) error {
	c.entries[[2]float64{lat, lon}] = w
	return nil
}

func TestCachedProvider_HitAfterMiss(t *testing.T) {
	inner := &countingProvider{result: models.Weather{Temperature: 20, Description: "clear sky"}}
	cached := NewCachedProvider(inner, newMemoryCache(), observability.NewMetricsForTesting(), quietLogger())

	first, err := cached.Current(context.Background(), 10, 20)
	require.NoError(t, err)
	second, err := cached.Current(context.Background(), 10, 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("boom")}
	cache := newMemoryCache()
	cached := NewCachedProvider(inner, cache, observability.NewMetricsForTesting(), quietLogger())

	_, err := cached.Current(context.Background(), 10, 20)
	require.Error(t, err)
	_, err = cached.Current(context.Background(), 10, 20)
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Empty(t, cache.entries)
}

func TestCachedProvider_CacheFailureFallsThrough(t *testing.T) {
	inner := &countingProvider{result: models.Weather{Temperature: 5}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cached := NewCachedProvider(inner, cache, observability.NewMetricsForTesting(), quietLogger())

	w, err := cached.Current(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w.Temperature)
	assert.Equal(t, 1, inner.calls)
}

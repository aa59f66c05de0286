package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNoConditions возвращается, если API ответил без описания погодных условий
var ErrNoConditions = errors.New("weather: response has no conditions")

// Provider возвращает текущую погоду для координат
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (models.Weather, error)
}

// Client реализует Provider поверх OpenWeatherMap current weather API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *logrus.Logger
}

// NewClient создает клиент погодного API
func NewClient(apiKey, baseURL string, timeout time.Duration, clock clockwork.Clock, logger *logrus.Logger) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:  clock,
		logger: logger,
	}
}

// Current запрашивает текущую погоду (метрические единицы)
func (c *Client) Current(ctx context.Context, lat, lon float64) (models.Weather, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', 4, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', 4, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	fullURL := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return models.Weather{}, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Weather{}, fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.Weather{}, fmt.Errorf("weather: API error: status %d: %s", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Weather{}, fmt.Errorf("weather: decode response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return models.Weather{}, ErrNoConditions
	}

	c.logger.WithFields(logrus.Fields{
		"component": "weather",
		"lat":       lat,
		"lon":       lon,
	}).Debug("Weather fetched from API")

	return models.Weather{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Description: payload.Weather[0].Description,
		ObservedAt:  c.clock.Now().UTC(),
	}, nil
}

// OpenWeatherMap response types.

type response struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

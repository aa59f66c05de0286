package v1

import (
	"time"

	"github.com/shenikar/air_crash_atlas/internal/models"
)

// FilterQuery DTO фильтра панели (query-параметры)
// @Description Критерии фильтрации катастроф
type FilterQuery struct {
	YearMin       *int   `form:"yearMin" validate:"omitempty,gte=0,max=9999"`
	YearMax       *int   `form:"yearMax" validate:"omitempty,gte=0,max=9999"`
	Type          string `form:"type" validate:"max=255"`
	Region        string `form:"region" validate:"max=255"`
	MinFatalities int    `form:"minFatalities" validate:"gte=0"`
}

// DashboardQuery DTO для панели: фильтр и размер разбивки по типам
type DashboardQuery struct {
	FilterQuery
	TopN int `form:"topN" validate:"omitempty,gte=1,max=100"`
}

// SearchQuery DTO полнотекстового поиска
type SearchQuery struct {
	Q string `form:"q" validate:"max=255"`
}

// MarkerResponse DTO подсказок отрисовки маркера
type MarkerResponse struct {
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

// CrashResponse DTO для ответа с катастрофой
// @Description DTO для ответа с катастрофой
type CrashResponse struct {
	ID         int            `json:"id"`
	Location   string         `json:"location"`
	Year       int            `json:"year"`
	Type       string         `json:"type"`
	Fatalities int            `json:"fatalities"`
	Country    string         `json:"country"`
	Latitude   *float64       `json:"latitude,omitempty"`
	Longitude  *float64       `json:"longitude,omitempty"`
	Marker     MarkerResponse `json:"marker"`
}

// CrashListResponse DTO для списка катастроф
type CrashListResponse struct {
	Count     int             `json:"count"`
	Plottable int             `json:"plottable"`
	Crashes   []CrashResponse `json:"crashes"`
}

// SearchResponse DTO результата поиска. Active == false - поиск не выполнялся.
type SearchResponse struct {
	Active  bool            `json:"active"`
	Query   string          `json:"query,omitempty"`
	Count   int             `json:"count"`
	Crashes []CrashResponse `json:"crashes"`
}

// RelatedCrashResponse DTO связанной катастрофы
type RelatedCrashResponse struct {
	CrashResponse
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// WeatherResponse DTO погоды в точке катастрофы
type WeatherResponse struct {
	Available   bool       `json:"available"`
	Message     string     `json:"message,omitempty"`
	Temperature *float64   `json:"temperature,omitempty"`
	Humidity    *float64   `json:"humidity,omitempty"`
	WindSpeed   *float64   `json:"wind_speed,omitempty"`
	Description string     `json:"description,omitempty"`
	ObservedAt  *time.Time `json:"observed_at,omitempty"`
}

// DashboardResponse DTO всех агрегатов панели
type DashboardResponse struct {
	Summary models.Summary        `json:"summary"`
	Decades []models.DecadeBucket `json:"decades"`
	Years   []models.YearBucket   `json:"years"`
	Types   []models.TypeBucket   `json:"types"`
}

// TypesResponse DTO списка типов воздушных судов
type TypesResponse struct {
	Types []string `json:"types"`
}

// ReloadResponse DTO результата перезагрузки набора данных
type ReloadResponse struct {
	Loaded int `json:"loaded"`
}

// PrefetchResponse DTO результата постановки прогрева в очередь
type PrefetchResponse struct {
	Enqueued int `json:"enqueued"`
}

package models

import "time"

// Weather - текущая погода в точке катастрофы
type Weather struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	ObservedAt  time.Time `json:"observed_at"`
}

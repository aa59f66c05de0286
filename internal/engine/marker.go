package engine

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/shenikar/air_crash_atlas/internal/models"
)

const (
	minMarkerRadius = 5
	maxMarkerRadius = 15

	earthRadiusKm = 6371.0088
)

// StyleFor подбирает цвет и радиус маркера по числу погибших
func StyleFor(fatalities int) models.MarkerStyle {
	if fatalities < 0 {
		fatalities = 0
	}

	color := "green"
	switch {
	case fatalities > 50:
		color = "red"
	case fatalities > 10:
		color = "orange"
	case fatalities > 0:
		color = "yellow"
	}

	radius := math.Max(minMarkerRadius, math.Min(maxMarkerRadius, float64(fatalities)/10))
	return models.MarkerStyle{Color: color, Radius: radius}
}

// DistanceKm - расстояние по большому кругу между двумя записями.
// Второе значение false, если у одной из записей нет координат.
func DistanceKm(a, b models.CrashRecord) (float64, bool) {
	if !a.HasCoordinates() || !b.HasCoordinates() {
		return 0, false
	}
	p1 := s2.LatLngFromDegrees(*a.Latitude, *a.Longitude)
	p2 := s2.LatLngFromDegrees(*b.Latitude, *b.Longitude)
	return p1.Distance(p2).Radians() * earthRadiusKm, true
}

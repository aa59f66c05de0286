package engine

import (
	"strings"

	"github.com/shenikar/air_crash_atlas/internal/models"
)

// FilterRecords возвращает записи, удовлетворяющие всем критериям, в исходном порядке.
// Исходный слайс не изменяется.
func FilterRecords(records []models.CrashRecord, criteria models.FilterCriteria) []models.CrashRecord {
	// регион не обрезается: строка из пробелов - непустой фильтр
	region := strings.ToLower(criteria.Region)
	anyType := criteria.Type == "" || criteria.Type == models.TypeWildcard

	filtered := make([]models.CrashRecord, 0, len(records))
	for _, r := range records {
		if criteria.YearMin != nil && r.Year < *criteria.YearMin {
			continue
		}
		if criteria.YearMax != nil && r.Year > *criteria.YearMax {
			continue
		}
		if !anyType && r.Type != criteria.Type {
			continue
		}
		// запись без страны не проходит непустой фильтр по региону
		if region != "" && (r.Country == "" || !strings.Contains(strings.ToLower(r.Country), region)) {
			continue
		}
		if fatalities(r) < criteria.MinFatalities {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SearchRecords ищет подстроку без учета регистра в Location, Country и Type.
// Пустой запрос (или только пробелы) дает SearchResult с Active == false.
func SearchRecords(records []models.CrashRecord, query string) models.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.SearchResult{Active: false}
	}

	matches := make([]models.CrashRecord, 0)
	for _, r := range records {
		if containsFold(r.Location, q) || containsFold(r.Country, q) || containsFold(r.Type, q) {
			matches = append(matches, r)
		}
	}
	return models.SearchResult{Active: true, Query: q, Records: matches}
}

// Plottable возвращает записи, у которых заданы обе координаты
func Plottable(records []models.CrashRecord) []models.CrashRecord {
	out := make([]models.CrashRecord, 0, len(records))
	for _, r := range records {
		if r.HasCoordinates() {
			out = append(out, r)
		}
	}
	return out
}

// FindRelated возвращает до limit записей той же страны или с годом в пределах yearWindow.
// Сама запись subject (по ID) в результат не попадает.
func FindRelated(records []models.CrashRecord, subject models.CrashRecord, yearWindow, limit int) []models.CrashRecord {
	related := make([]models.CrashRecord, 0, limit)
	if limit <= 0 {
		return related
	}
	for _, r := range records {
		if r.ID == subject.ID {
			continue
		}
		sameCountry := subject.Country != "" && r.Country == subject.Country
		if sameCountry || abs(r.Year-subject.Year) <= yearWindow {
			related = append(related, r)
			if len(related) == limit {
				break
			}
		}
	}
	return related
}

func containsFold(field, lowerQuery string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerQuery)
}

func fatalities(r models.CrashRecord) int {
	if r.Fatalities < 0 {
		return 0
	}
	return r.Fatalities
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

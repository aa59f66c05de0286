package v1

import (
	"strings"

	"github.com/shenikar/air_crash_atlas/internal/engine"
	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/shenikar/air_crash_atlas/internal/service"
)

// QueryToFilterCriteria преобразует DTO фильтра в критерии движка
func QueryToFilterCriteria(q FilterQuery) models.FilterCriteria {
	return models.FilterCriteria{
		YearMin:       q.YearMin,
		YearMax:       q.YearMax,
		Type:          strings.TrimSpace(q.Type),
		Region:        q.Region,
		MinFatalities: q.MinFatalities,
	}
}

// ModelToCrashResponse преобразует доменную модель в DTO для ответа
func ModelToCrashResponse(model models.CrashRecord) CrashResponse {
	style := engine.StyleFor(model.Fatalities)
	return CrashResponse{
		ID:         model.ID,
		Location:   model.Location,
		Year:       model.Year,
		Type:       model.Type,
		Fatalities: model.Fatalities,
		Country:    model.Country,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Marker: MarkerResponse{
			Color:  style.Color,
			Radius: style.Radius,
		},
	}
}

// ModelsToCrashResponses преобразует слайс моделей в слайс DTO
func ModelsToCrashResponses(records []models.CrashRecord) []CrashResponse {
	responses := make([]CrashResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToCrashResponse(record)
	}
	return responses
}

// ModelsToCrashListResponse собирает ответ списка с числом записей, которые можно отрисовать
func ModelsToCrashListResponse(records []models.CrashRecord) CrashListResponse {
	return CrashListResponse{
		Count:     len(records),
		Plottable: len(engine.Plottable(records)),
		Crashes:   ModelsToCrashResponses(records),
	}
}

// SearchResultToResponse преобразует результат поиска в DTO
func SearchResultToResponse(result models.SearchResult) SearchResponse {
	return SearchResponse{
		Active:  result.Active,
		Query:   result.Query,
		Count:   len(result.Records),
		Crashes: ModelsToCrashResponses(result.Records),
	}
}

// RelatedToResponses преобразует связанные катастрофы в DTO
func RelatedToResponses(related []service.RelatedCrash) []RelatedCrashResponse {
	responses := make([]RelatedCrashResponse, len(related))
	for i, r := range related {
		responses[i] = RelatedCrashResponse{
			CrashResponse: ModelToCrashResponse(r.Record),
			DistanceKm:    r.DistanceKm,
		}
	}
	return responses
}

// WeatherToResponse преобразует погоду в DTO доступного ответа
func WeatherToResponse(w models.Weather) WeatherResponse {
	observedAt := w.ObservedAt
	return WeatherResponse{
		Available:   true,
		Temperature: &w.Temperature,
		Humidity:    &w.Humidity,
		WindSpeed:   &w.WindSpeed,
		Description: w.Description,
		ObservedAt:  &observedAt,
	}
}

// DashboardToResponse преобразует агрегаты сервиса в DTO
func DashboardToResponse(d service.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary: d.Summary,
		Decades: d.Decades,
		Years:   d.Years,
		Types:   d.Types,
	}
}

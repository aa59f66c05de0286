package models

// CrashRecord представляет одну запись о катастрофе из набора данных.
// ID - суррогатный ключ (позиция в загруженном наборе), используется вместо пары Location-Year.
type CrashRecord struct {
	ID         int      `json:"id"`
	Location   string   `json:"location"`
	Year       int      `json:"year"`
	Type       string   `json:"type"`
	Fatalities int      `json:"fatalities"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// HasCoordinates сообщает, можно ли отобразить запись на карте
func (r CrashRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// FilterCriteria - критерии фильтрации, собираются заново на каждый запрос
type FilterCriteria struct {
	YearMin       *int
	YearMax       *int
	Type          string
	Region        string
	MinFatalities int
}

// TypeWildcard - значение фильтра по типу, означающее "любой тип"
const TypeWildcard = "All"

// UnknownType - метка для записей без типа воздушного судна
const UnknownType = "Unknown"

// Summary - сводная статистика по набору записей
type Summary struct {
	Count             int     `json:"count"`
	TotalFatalities   int     `json:"total_fatalities"`
	AverageFatalities float64 `json:"average_fatalities"`
}

// DecadeBucket - количество катастроф за десятилетие
type DecadeBucket struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// YearBucket - количество катастроф за год
type YearBucket struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// TypeBucket - количество катастроф и погибших по типу воздушного судна
type TypeBucket struct {
	Type       string `json:"type"`
	Crashes    int    `json:"crashes"`
	Fatalities int    `json:"fatalities"`
}

// SearchResult - результат полнотекстового поиска.
// Active == false означает, что поиск не выполнялся (пустой запрос), а не "ничего не найдено".
type SearchResult struct {
	Active  bool
	Query   string
	Records []CrashRecord
}

// MarkerStyle - подсказки для отрисовки маркера на карте
type MarkerStyle struct {
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

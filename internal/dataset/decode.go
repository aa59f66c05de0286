package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/air_crash_atlas/internal/models"
)

// ErrNotArray возвращается, если набор данных не является JSON-массивом
var ErrNotArray = errors.New("dataset: top-level JSON value is not an array")

// Report - итог загрузки набора данных
type Report struct {
	Total              int `json:"total"`
	Loaded             int `json:"loaded"`
	Skipped            int `json:"skipped"`
	DroppedCoordinates int `json:"dropped_coordinates"`
}

// rawRecord - запись в том виде, в каком она лежит в JSON; все поля необязательны
type rawRecord struct {
	Location   *string    `json:"Location"`
	Year       flexNumber `json:"Year"`
	Type       *string    `json:"Type"`
	Fatalities flexNumber `json:"Fatalities"`
	Country    *string    `json:"Country"`
	Latitude   flexNumber `json:"Latitude"`
	Longitude  flexNumber `json:"Longitude"`
}

// coordinates проверяется валидатором перед тем, как попасть в запись
type coordinates struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

// flexNumber принимает число, числовую строку или null
type flexNumber struct {
	Value float64
	Valid bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = flexNumber{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = flexNumber{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// нечисловая строка трактуется как отсутствующее значение
			*n = flexNumber{}
			return nil
		}
		*n = flexNumber{Value: v, Valid: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = flexNumber{}
		return nil
	}
	*n = flexNumber{Value: v, Valid: true}
	return nil
}

var validate = validator.New()

const (
	maxYear       = 9999
	maxFatalities = math.MaxInt32
)

// intValue приводит число к int. NaN, бесконечность и значения вне [0, max] считаются некорректными.
func (n flexNumber) intValue(max int) (int, bool) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return 0, false
	}
	if n.Value < 0 || n.Value >= float64(max)+1 {
		return 0, false
	}
	return int(n.Value), true
}

// Decode читает JSON-массив записей и приводит каждую к нормальному виду:
// Fatalities по умолчанию 0, некорректные координаты отбрасываются,
// записи без года пропускаются. ID присваивается по позиции среди загруженных записей.
func Decode(r io.Reader) ([]models.CrashRecord, Report, error) {
	var elements []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&elements); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, Report{}, ErrNotArray
		}
		return nil, Report{}, fmt.Errorf("dataset: failed to decode JSON: %w", err)
	}
	if elements == nil {
		return nil, Report{}, ErrNotArray
	}

	report := Report{Total: len(elements)}
	records := make([]models.CrashRecord, 0, len(elements))
	for _, raw := range elements {
		var rr rawRecord
		if err := json.Unmarshal(raw, &rr); err != nil {
			report.Skipped++
			continue
		}
		record, ok, dropped := normalize(rr)
		if !ok {
			report.Skipped++
			continue
		}
		if dropped {
			report.DroppedCoordinates++
		}
		record.ID = len(records)
		records = append(records, record)
	}
	report.Loaded = len(records)
	return records, report, nil
}

// normalize заполняет значения по умолчанию. Второй результат false - запись непригодна (нет корректного года),
// третий true - координаты были, но не прошли проверку. Дробные значения отбрасывают дробную часть.
func normalize(rr rawRecord) (models.CrashRecord, bool, bool) {
	year, ok := rr.Year.intValue(maxYear)
	if !ok {
		return models.CrashRecord{}, false, false
	}

	record := models.CrashRecord{
		Location: strings.TrimSpace(deref(rr.Location)),
		Year:     year,
		Type:     strings.TrimSpace(deref(rr.Type)),
		Country:  strings.TrimSpace(deref(rr.Country)),
	}
	// некорректное или отрицательное число погибших считается отсутствующим
	if fatalities, ok := rr.Fatalities.intValue(maxFatalities); ok {
		record.Fatalities = fatalities
	}

	if !rr.Latitude.Valid || !rr.Longitude.Valid {
		return record, true, rr.Latitude.Valid != rr.Longitude.Valid
	}
	coords := coordinates{Latitude: rr.Latitude.Value, Longitude: rr.Longitude.Value}
	if err := validate.Struct(coords); err != nil {
		return record, true, true
	}
	lat, lon := coords.Latitude, coords.Longitude
	record.Latitude = &lat
	record.Longitude = &lon
	return record, true, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

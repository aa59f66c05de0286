package engine

import (
	"math"
	"sort"

	"github.com/shenikar/air_crash_atlas/internal/models"
)

const (
	// DefaultTopTypes - сколько типов воздушных судов попадает в разбивку по умолчанию
	DefaultTopTypes = 8
	// DefaultYearWindow - окно в годах для поиска связанных катастроф
	DefaultYearWindow = 5
	// DefaultRelatedLimit - максимальное число связанных катастроф
	DefaultRelatedLimit = 5
)

// ComputeSummary считает количество записей, сумму и среднее число погибших.
// Среднее округляется до одного знака; для пустого набора все поля равны нулю.
func ComputeSummary(records []models.CrashRecord) models.Summary {
	total := 0
	for _, r := range records {
		total += fatalities(r)
	}

	summary := models.Summary{Count: len(records), TotalFatalities: total}
	if summary.Count > 0 {
		summary.AverageFatalities = math.Round(float64(total)/float64(summary.Count)*10) / 10
	}
	return summary
}

// DecadeOf возвращает начало десятилетия для года: floor(year/10)*10
func DecadeOf(year int) int {
	return int(math.Floor(float64(year)/10)) * 10
}

// GroupByDecade группирует записи по десятилетиям, по возрастанию десятилетия
func GroupByDecade(records []models.CrashRecord) []models.DecadeBucket {
	counts := make(map[int]int)
	for _, r := range records {
		counts[DecadeOf(r.Year)]++
	}

	buckets := make([]models.DecadeBucket, 0, len(counts))
	for decade, count := range counts {
		buckets = append(buckets, models.DecadeBucket{Decade: decade, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Decade < buckets[j].Decade })
	return buckets
}

// GroupByYear группирует записи по годам, по возрастанию года
func GroupByYear(records []models.CrashRecord) []models.YearBucket {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year]++
	}

	buckets := make([]models.YearBucket, 0, len(counts))
	for year, count := range counts {
		buckets = append(buckets, models.YearBucket{Year: year, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Year < buckets[j].Year })
	return buckets
}

// GroupByTypeWithFatalities группирует записи по типу воздушного судна.
// Результат отсортирован по убыванию числа катастроф (при равенстве - в порядке появления)
// и обрезан до topN; остальные типы отбрасываются.
func GroupByTypeWithFatalities(records []models.CrashRecord, topN int) []models.TypeBucket {
	index := make(map[string]int)
	buckets := make([]models.TypeBucket, 0)

	for _, r := range records {
		key := r.Type
		if key == "" {
			key = models.UnknownType
		}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, models.TypeBucket{Type: key})
		}
		buckets[i].Crashes++
		buckets[i].Fatalities += fatalities(r)
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Crashes > buckets[j].Crashes })

	if topN < 0 {
		topN = 0
	}
	if len(buckets) > topN {
		buckets = buckets[:topN]
	}
	return buckets
}

// Types возвращает отсортированный список различных типов воздушных судов
func Types(records []models.CrashRecord) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, r := range records {
		if r.Type == "" {
			continue
		}
		if _, ok := seen[r.Type]; ok {
			continue
		}
		seen[r.Type] = struct{}{}
		types = append(types, r.Type)
	}
	sort.Strings(types)
	return types
}

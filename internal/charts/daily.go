package charts

import (
	"slices"
	"strings"

	"github.com/mwiater/mlmon/internal/prediction"
)

const dayLayout = "2006-01-02"

// DayCount is the number of predictions made on one UTC calendar day.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// PredictionsPerDay counts records per prediction day, oldest day first.
// Records without a prediction date are ignored.
func PredictionsPerDay(records []prediction.Record) []DayCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.PredictionDate.IsZero() {
			continue
		}
		counts[r.PredictionDate.UTC().Format(dayLayout)]++
	}
	days := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		days = append(days, DayCount{Day: day, Count: n})
	}
	// The layout is zero-padded, so string order is date order.
	slices.SortFunc(days, func(a, b DayCount) int {
		return strings.Compare(a.Day, b.Day)
	})
	return days
}

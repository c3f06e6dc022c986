package pipeline

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/moodpulse/moodpulse/internal/domain"
)

// AggregateByMonth groups processed samples by (year, month) and reduces each
// group to summary statistics, sorted ascending by (year, month). An empty
// input yields an empty result, never an error.
func AggregateByMonth(samples []domain.ProcessedSample) []domain.MonthlyAggregate {
	type monthKey struct {
		year, month int
	}
	type group struct {
		region string
		scores []float64
	}

	groups := make(map[monthKey]*group)
	for _, s := range samples {
		k := monthKey{s.Year, s.Month}
		g, ok := groups[k]
		if !ok {
			g = &group{region: s.Region}
			groups[k] = g
		}
		g.scores = append(g.scores, s.NormalizedScore)
	}

	keys := make([]monthKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	result := make([]domain.MonthlyAggregate, 0, len(keys))
	for _, k := range keys {
		g := groups[k]

		// Sample standard deviation needs n >= 2; a single sample reads as 0.
		stdDev := 0.0
		if len(g.scores) > 1 {
			stdDev = stat.StdDev(g.scores, nil)
		}

		result = append(result, domain.MonthlyAggregate{
			Region:       g.region,
			Year:         k.year,
			Month:        k.month,
			MonthLabel:   monthLabel(k.month, k.year),
			AvgSentiment: round2(stat.Mean(g.scores, nil)),
			StdDev:       round2(stdDev),
			SampleCount:  len(g.scores),
			MinScore:     round2(slices.Min(g.scores)),
			MaxScore:     round2(slices.Max(g.scores)),
		})
	}

	return result
}

func monthLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d %d", month, year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String()[:3], year)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package advisor derives resource-allocation recommendations from pipeline
// results: regions with low or declining sentiment get higher priority and a
// larger share of counselors, programs, and budget.
package advisor

import (
	"sort"

	"github.com/moodpulse/moodpulse/internal/domain"
)

// Recommendation is one region's allocation row.
type Recommendation struct {
	Region                string  `json:"region"`
	AvgSentiment          float64 `json:"avg_sentiment"`
	Trend                 string  `json:"trend"`
	Priority              string  `json:"priority"`
	AllocationScore       int     `json:"allocation_score"`
	RecommendedCounselors int     `json:"recommended_counselors"`
	ActivePrograms        int     `json:"active_programs"`
	BudgetAllocationPct   int     `json:"budget_allocation_pct"`
	SamplesAnalyzed       int     `json:"samples_analyzed"`
}

// Recommend maps each pipeline result to an allocation row and sorts the rows
// most-needy first. Declining regions get an allocation bump (capped at 100)
// and an escalation marker on their priority unless already Critical.
func Recommend(results []*domain.PipelineResult) []Recommendation {
	rows := make([]Recommendation, 0, len(results))
	for _, r := range results {
		row := tierFor(r.OverallAvg)
		row.Region = r.Region
		row.AvgSentiment = r.OverallAvg
		row.Trend = r.TrendDirection
		row.SamplesAnalyzed = r.TotalSamplesProcessed

		if r.TrendDirection == domain.TrendDeclining {
			row.AllocationScore = min(100, row.AllocationScore+8)
			if row.Priority != "Critical" {
				row.Priority = "↑ " + row.Priority
			}
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AllocationScore > rows[j].AllocationScore
	})
	return rows
}

func tierFor(avg float64) Recommendation {
	switch {
	case avg < 40:
		return Recommendation{Priority: "Critical", AllocationScore: 95, RecommendedCounselors: 85, ActivePrograms: 12, BudgetAllocationPct: 18}
	case avg < 50:
		return Recommendation{Priority: "High", AllocationScore: 80, RecommendedCounselors: 65, ActivePrograms: 9, BudgetAllocationPct: 15}
	case avg < 60:
		return Recommendation{Priority: "Moderate", AllocationScore: 60, RecommendedCounselors: 45, ActivePrograms: 6, BudgetAllocationPct: 12}
	default:
		return Recommendation{Priority: "Low", AllocationScore: 40, RecommendedCounselors: 30, ActivePrograms: 4, BudgetAllocationPct: 8}
	}
}

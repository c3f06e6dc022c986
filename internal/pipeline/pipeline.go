package pipeline

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"gonum.org/v1/gonum/stat"

	"github.com/moodpulse/moodpulse/internal/domain"
	"github.com/moodpulse/moodpulse/internal/generator"
	"github.com/moodpulse/moodpulse/internal/metrics"
	"github.com/moodpulse/moodpulse/internal/nlp"
)

// Version is reported in every PipelineResult so dashboard consumers can
// detect scoring changes across deployments.
const Version = "1.0.0"

const defaultSamplesPerMonth = 30

// Pipeline drives generation, scoring, and aggregation for one region-year.
// Stateless per call; safe for concurrent use.
type Pipeline struct {
	processor       *Processor
	available       bool
	samplesPerMonth int
}

func New(scorer *nlp.Scorer, clock clockwork.Clock, samplesPerMonth int) *Pipeline {
	if samplesPerMonth <= 0 {
		samplesPerMonth = defaultSamplesPerMonth
	}
	return &Pipeline{
		processor:       NewProcessor(scorer, clock),
		available:       scorer.ExtractorAvailable(),
		samplesPerMonth: samplesPerMonth,
	}
}

// Run generates, scores, and aggregates samples for the given months of one
// region-year. A nil months slice means January through December. An
// explicitly empty month list (or one that yields no data) returns
// domain.ErrNoMonthlyData: trend direction is undefined over an empty year.
func (p *Pipeline) Run(ctx context.Context, region string, year int, months []int) (*domain.PipelineResult, error) {
	start := time.Now()

	if months == nil {
		months = allMonths()
	}

	var processed []domain.ProcessedSample
	for _, month := range months {
		if err := ctx.Err(); err != nil {
			metrics.PipelineRunsTotal.WithLabelValues(region, "error").Inc()
			return nil, err
		}
		samples := generator.Generate(region, month, year, p.samplesPerMonth)
		processed = append(processed, p.processor.Process(samples)...)
	}

	monthly := AggregateByMonth(processed)
	if len(monthly) == 0 {
		metrics.PipelineRunsTotal.WithLabelValues(region, "error").Inc()
		return nil, domain.ErrNoMonthlyData
	}

	monthlyAvgs := make([]float64, len(monthly))
	for i, m := range monthly {
		monthlyAvgs[i] = m.AvgSentiment
	}

	metrics.PipelineRunsTotal.WithLabelValues(region, "ok").Inc()
	metrics.PipelineRunDuration.Observe(time.Since(start).Seconds())

	return &domain.PipelineResult{
		Region:      region,
		Year:        year,
		MonthlyData: monthly,
		// Overall average is a mean of monthly means, not of raw scores.
		OverallAvg:                round2(stat.Mean(monthlyAvgs, nil)),
		TrendDirection:            trendDirection(monthly),
		TotalSamplesProcessed:     len(processed),
		FeatureExtractorAvailable: p.available,
		PipelineVersion:           Version,
	}, nil
}

// trendDirection compares only the first and last monthly averages. Ties
// report declining: the comparison is strictly greater-than.
func trendDirection(monthly []domain.MonthlyAggregate) string {
	if monthly[len(monthly)-1].AvgSentiment > monthly[0].AvgSentiment {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}

func allMonths() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

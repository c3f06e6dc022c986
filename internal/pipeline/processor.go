package pipeline

import (
	"github.com/jonboulle/clockwork"

	"github.com/moodpulse/moodpulse/internal/domain"
	"github.com/moodpulse/moodpulse/internal/metrics"
	"github.com/moodpulse/moodpulse/internal/nlp"
)

// Processor scores generated samples and stamps them with processing time.
// Pure per-sample mapping, no cross-sample state.
type Processor struct {
	scorer *nlp.Scorer
	clock  clockwork.Clock
}

func NewProcessor(scorer *nlp.Scorer, clock clockwork.Clock) *Processor {
	return &Processor{scorer: scorer, clock: clock}
}

// Process maps each sample through the scorer, preserving input order.
func (p *Processor) Process(samples []domain.TextSample) []domain.ProcessedSample {
	processed := make([]domain.ProcessedSample, 0, len(samples))
	for _, sample := range samples {
		processed = append(processed, domain.ProcessedSample{
			TextSample:      sample,
			SentimentResult: p.scorer.Score(sample.Text),
			ProcessedAt:     p.clock.Now(),
		})
	}
	metrics.SamplesProcessedTotal.Add(float64(len(samples)))
	return processed
}

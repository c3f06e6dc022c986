package nlp

import (
	"math"
	"regexp"
	"strings"

	govader "github.com/jonreiter/govader"

	"github.com/moodpulse/moodpulse/internal/domain"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	disallowedRE = regexp.MustCompile(`[^\w\s.,!?'"-]`)
)

// Preprocess collapses runs of whitespace and strips characters outside the
// safelist (word characters, whitespace, and basic punctuation).
func Preprocess(text string) string {
	text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	return disallowedRE.ReplaceAllString(text, "")
}

// Scorer computes lexicon-based sentiment for a text, adjusted by the active
// feature extractor's negation signal. Safe for concurrent use: both the
// analyzer and the extractor are read-only after construction.
type Scorer struct {
	extractor FeatureExtractor
	analyzer  *govader.SentimentIntensityAnalyzer
}

func NewScorer(extractor FeatureExtractor) *Scorer {
	return &Scorer{
		extractor: extractor,
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score is total over any string input, including the empty string, which
// scores as neutral.
func (s *Scorer) Score(text string) domain.SentimentResult {
	cleaned := Preprocess(text)
	features := s.extractor.Extract(cleaned)
	scores := s.analyzer.PolarityScores(cleaned)

	compound := scores.Compound
	// The lexicon under-weights syntactic negation; nudge positive scores
	// down when the extractor saw a negation cue.
	if features.HasNegation && compound > 0.1 {
		compound = math.Max(-1.0, compound-0.1)
	}

	return domain.SentimentResult{
		RawCompound:     compound,
		NormalizedScore: round2((compound + 1) / 2 * 100),
		Positive:        round2(scores.Positive * 100),
		Negative:        round2(scores.Negative * 100),
		Neutral:         round2(scores.Neutral * 100),
		TokenCount:      features.TokenCount,
		EntitiesFound:   len(features.Entities),
	}
}

// ExtractorAvailable reports whether the full linguistic model is active.
func (s *Scorer) ExtractorAvailable() bool {
	return s.extractor.Available()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

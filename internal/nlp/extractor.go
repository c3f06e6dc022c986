package nlp

import (
	"log/slog"
	"strings"

	"github.com/moodpulse/moodpulse/internal/domain"
)

// maxKeyPhrases caps the number of key phrases reported per text.
const maxKeyPhrases = 5

// FeatureExtractor extracts linguistic features from a single text. Both
// implementations are total over any string input.
type FeatureExtractor interface {
	Extract(text string) domain.LinguisticFeatures

	// Available reports whether the full linguistic model backs this
	// extractor. Surfaced in PipelineResult so dashboard consumers can tell
	// degraded runs apart.
	Available() bool
}

// negationCues are the lexical negation markers both variants look for.
var negationCues = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
}

// NewExtractor selects the extraction strategy for the process lifetime.
// mode is "full", "fallback", or "auto". A missing model must never fail the
// pipeline, so "full" and "auto" both degrade to the fallback with a warning.
func NewExtractor(mode string) FeatureExtractor {
	if mode == "fallback" {
		return FallbackExtractor{}
	}
	ex, err := NewProseExtractor()
	if err != nil {
		slog.Warn("Full linguistic model unavailable, using fallback extractor", "error", err)
		return FallbackExtractor{}
	}
	return ex
}

// FallbackExtractor is the degraded variant: whitespace tokenization, no
// entity recognition, and the first few words as key phrases.
type FallbackExtractor struct{}

func (FallbackExtractor) Extract(text string) domain.LinguisticFeatures {
	words := strings.Fields(text)

	phrases := words
	if len(phrases) > maxKeyPhrases {
		phrases = phrases[:maxKeyPhrases]
	}

	return domain.LinguisticFeatures{
		TokenCount:  len(words),
		KeyPhrases:  append([]string(nil), phrases...),
		HasNegation: anyNegation(words),
	}
}

func (FallbackExtractor) Available() bool { return false }

func anyNegation(words []string) bool {
	for _, w := range words {
		if negationCues[strings.ToLower(strings.Trim(w, ".,!?'\"-"))] {
			return true
		}
	}
	return false
}

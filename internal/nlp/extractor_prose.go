package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/moodpulse/moodpulse/internal/domain"
)

// entityLabels is the allow-list of entity categories relevant to regional
// well-being reporting: organizations, geo-political entities, people,
// facilities, and nationality/religious/political groups.
var entityLabels = map[string]bool{
	"ORG":      true,
	"GPE":      true,
	"PERSON":   true,
	"FAC":      true,
	"FACILITY": true,
	"NORP":     true,
}

// ProseExtractor is the full-featured variant, backed by the prose NLP models
// for tokenization, POS tagging, and named-entity recognition.
type ProseExtractor struct{}

// NewProseExtractor parses a probe sentence so model-loading failures surface
// at startup instead of on the first request.
func NewProseExtractor() (*ProseExtractor, error) {
	if _, err := prose.NewDocument("startup probe"); err != nil {
		return nil, fmt.Errorf("loading prose models: %w", err)
	}
	return &ProseExtractor{}, nil
}

func (e *ProseExtractor) Extract(text string) domain.LinguisticFeatures {
	doc, err := prose.NewDocument(text)
	if err != nil {
		// prose fails only on internal model errors; degrade to the fallback
		// shape for this text rather than poisoning the batch.
		return FallbackExtractor{}.Extract(text)
	}

	tokens := doc.Tokens()
	features := domain.LinguisticFeatures{TokenCount: len(tokens)}

	for _, ent := range doc.Entities() {
		if entityLabels[ent.Label] {
			features.Entities = append(features.Entities, domain.Entity{Text: ent.Text, Label: ent.Label})
		}
	}

	features.KeyPhrases = nounPhrases(tokens, maxKeyPhrases)

	for _, tok := range tokens {
		if negationCues[strings.ToLower(tok.Text)] {
			features.HasNegation = true
			break
		}
	}

	return features
}

func (*ProseExtractor) Available() bool { return true }

// nounPhrases approximates noun-phrase chunking from POS tags: maximal runs
// of determiners, adjectives, and nouns that contain at least one noun.
func nounPhrases(tokens []prose.Token, limit int) []string {
	var phrases []string
	var current []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
		}
		current = current[:0]
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			current = append(current, tok.Text)
			hasNoun = true
		case strings.HasPrefix(tok.Tag, "JJ"), tok.Tag == "DT":
			current = append(current, tok.Text)
		default:
			flush()
		}
		if len(phrases) == limit {
			return phrases
		}
	}
	flush()

	if len(phrases) > limit {
		phrases = phrases[:limit]
	}
	return phrases
}

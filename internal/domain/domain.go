package domain

import "time"

// Sentiment hint labels assigned by the generator. They record the template
// bucket a sample was drawn from and are never fed into scoring.
const (
	HintPositive = "positive"
	HintNeutral  = "neutral"
	HintNegative = "negative"
)

// Trend direction labels comparing a year's first and last monthly averages.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
)

// TextSample is one synthetic survey response. Immutable once generated.
type TextSample struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Region        string `json:"region"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	SentimentHint string `json:"sentiment_hint"`
}

// Entity is a named entity found in a text sample.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// LinguisticFeatures is the per-call output of a feature extractor. Callers
// depend only on this shape, never on which extractor variant produced it.
type LinguisticFeatures struct {
	TokenCount  int
	Entities    []Entity
	KeyPhrases  []string
	HasNegation bool
}

// SentimentResult is the scorer's output for a single text.
type SentimentResult struct {
	RawCompound     float64 `json:"raw_compound"`
	NormalizedScore float64 `json:"normalized_score"`
	Positive        float64 `json:"positive"`
	Negative        float64 `json:"negative"`
	Neutral         float64 `json:"neutral"`
	TokenCount      int     `json:"token_count"`
	EntitiesFound   int     `json:"entities_found"`
}

// ProcessedSample merges a generated sample with its sentiment scores and the
// time it passed through the processor.
type ProcessedSample struct {
	TextSample
	SentimentResult
	ProcessedAt time.Time `json:"processed_at"`
}

// MonthlyAggregate summarizes the processed samples of one (region, year,
// month) group. All statistics are rounded to two decimals.
type MonthlyAggregate struct {
	Region       string  `json:"region"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	MonthLabel   string  `json:"month_label"`
	AvgSentiment float64 `json:"avg_sentiment"`
	StdDev       float64 `json:"std_dev"`
	SampleCount  int     `json:"sample_count"`
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
}

// PipelineResult is the full output of one pipeline run for a (region, year)
// pair. MonthlyData is sorted ascending by (year, month). Owned by the cache
// once computed; treated as read-only by every consumer.
type PipelineResult struct {
	Region                    string             `json:"region"`
	Year                      int                `json:"year"`
	MonthlyData               []MonthlyAggregate `json:"monthly_data"`
	OverallAvg                float64            `json:"overall_avg"`
	TrendDirection            string             `json:"trend_direction"`
	TotalSamplesProcessed     int                `json:"total_samples_processed"`
	FeatureExtractorAvailable bool               `json:"feature_extractor_available"`
	PipelineVersion           string             `json:"pipeline_version"`
}

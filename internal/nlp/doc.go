// Package nlp provides linguistic feature extraction and lexicon-based
// sentiment scoring for survey text. Feature extraction is a strategy chosen
// once at startup: a full variant backed by the prose NLP models, or a
// whitespace fallback used when the models cannot load. Both produce the same
// LinguisticFeatures shape, so the rest of the pipeline never knows which one
// is active.
package nlp

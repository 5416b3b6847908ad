package search

import "github.com/kensaku-dev/kensaku/internal/corpus"

// CorpusIndex provides the ordered, precomputed corpus vectors.
// The index is read-only for the process lifetime.
type CorpusIndex interface {
	Entries() []corpus.Entry
}

// Vectorizer converts query text into a vector comparable with the
// corpus vectors.
type Vectorizer interface {
	Vectorize(text string) []float32
}

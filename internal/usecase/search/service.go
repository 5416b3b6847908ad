package search

import (
	"context"
	"sort"
	"strings"

	"github.com/kensaku-dev/kensaku/internal/domain"
	"github.com/kensaku-dev/kensaku/internal/vectorizer"
)

const (
	// DefaultTopK is the result count when the caller does not ask for one.
	DefaultTopK = 10
	// MaxTopK caps the requested result count.
	MaxTopK = 100
)

// Service ranks corpus problems by cosine similarity to a query.
// It is pure computation over the immutable index: no side effects,
// safe for concurrent calls.
type Service struct {
	index       CorpusIndex
	vec         Vectorizer
	defaultTopK int
	maxTopK     int
}

// New creates a search service. Non-positive limits fall back to
// DefaultTopK and MaxTopK.
func New(index CorpusIndex, vec Vectorizer, defaultTopK, maxTopK int) *Service {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	if maxTopK <= 0 {
		maxTopK = MaxTopK
	}
	return &Service{index: index, vec: vec, defaultTopK: defaultTopK, maxTopK: maxTopK}
}

// Search returns the top-k corpus problems most similar to the query,
// sorted by score descending. Equal scores keep original corpus order
// (stable sort) — short texts routinely hash to identical bucket
// distributions, so ties are expected, not exceptional.
//
// A query that trims to empty returns an empty result without vectorizing
// anything. k <= 0 selects the configured default.
func (s *Service) Search(_ context.Context, query string, k int) []domain.Hit {
	if strings.TrimSpace(query) == "" {
		return []domain.Hit{}
	}

	if k <= 0 {
		k = s.defaultTopK
	}
	if k > s.maxTopK {
		k = s.maxTopK
	}

	queryVec := s.vec.Vectorize(query)

	entries := s.index.Entries()
	hits := make([]domain.Hit, 0, len(entries))
	for i := range entries {
		p := entries[i].Problem()
		score := vectorizer.Dot(queryVec, entries[i].Vector())
		hits = append(hits, domain.NewHit(p.ID(), p.Title(), p.Tags(), score))
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score() > hits[j].Score()
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

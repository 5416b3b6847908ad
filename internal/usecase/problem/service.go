package problem

import (
	"context"
	"encoding/json"
	"fmt"
)

// Service serves direct problem lookups by id. This is a plain keyed read
// outside the scored-search hot path.
type Service struct {
	corpus DetailReader
}

// New creates a problem lookup service.
func New(corpus DetailReader) *Service {
	return &Service{corpus: corpus}
}

// Get returns the verbatim stored record for the given id.
// Wraps domain.ErrNotFound for unknown ids.
func (s *Service) Get(_ context.Context, id string) (json.RawMessage, error) {
	raw, err := s.corpus.Detail(id)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return raw, nil
}

package corpus

import (
	"encoding/json"
	"fmt"

	"github.com/kensaku-dev/kensaku/internal/domain"
)

// Vectorizer is the consumer contract for building corpus vectors.
type Vectorizer interface {
	Vectorize(text string) []float32
}

// Entry is one indexed corpus problem with its precomputed vector.
type Entry struct {
	problem domain.Problem
	vector  []float32
}

// NewEntry creates an index entry.
func NewEntry(problem domain.Problem, vector []float32) Entry {
	return Entry{problem: problem, vector: vector}
}

// Problem returns the indexed problem.
func (e *Entry) Problem() domain.Problem { return e.problem }

// Vector returns the precomputed searchable-text vector. Callers must treat
// it as read-only; entries are shared across concurrent searches.
func (e *Entry) Vector() []float32 { return e.vector }

// Index is the process-wide corpus vector cache. It is built once from the
// loaded records and never mutated afterwards, so concurrent reads need no
// locking.
type Index struct {
	entries []Entry
	details map[string]json.RawMessage
}

// NewIndex vectorizes every record's searchable text and builds the index.
// Record order is preserved. Duplicate ids are rejected.
func NewIndex(records []Record, vec Vectorizer) (*Index, error) {
	ix := &Index{
		entries: make([]Entry, 0, len(records)),
		details: make(map[string]json.RawMessage, len(records)),
	}

	for _, rec := range records {
		id := rec.Problem.ID()
		if _, ok := ix.details[id]; ok {
			return nil, fmt.Errorf("duplicate problem id %q", id)
		}
		ix.details[id] = rec.Raw
		ix.entries = append(ix.entries, NewEntry(rec.Problem, vec.Vectorize(rec.Problem.SearchableText())))
	}

	return ix, nil
}

// Entries returns the indexed problems in corpus order. The slice is shared;
// callers must not modify it.
func (ix *Index) Entries() []Entry { return ix.entries }

// Detail returns the verbatim JSON record for the given id, or
// domain.ErrNotFound if the corpus has no such problem.
func (ix *Index) Detail(id string) (json.RawMessage, error) {
	raw, ok := ix.details[id]
	if !ok {
		return nil, fmt.Errorf("problem %q: %w", id, domain.ErrNotFound)
	}
	return raw, nil
}

// Len returns the number of indexed problems.
func (ix *Index) Len() int { return len(ix.entries) }

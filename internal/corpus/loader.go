// Package corpus loads the problem corpus from its JSON file and holds the
// immutable vector index built from it at startup. A changed corpus requires
// a process restart; there are no write, update, or delete operations.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kensaku-dev/kensaku/internal/domain"
)

// record mirrors the known fields of one JSON corpus entry. Fields beyond
// these are kept in the raw record and returned verbatim on detail lookup.
type record struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Statement string   `json:"statement"`
	Tags      []string `json:"tags"`
	Concepts  []string `json:"concepts"`
}

// Record pairs a parsed domain problem with its verbatim JSON source.
type Record struct {
	Problem domain.Problem
	Raw     json.RawMessage
}

// Load reads the corpus file: an ordered JSON array of problem records.
// Order is preserved — it is the documented tie-break for equal search scores.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse corpus record [%d]: %w", i, err)
		}
		problem, err := domain.NewProblem(rec.ID, rec.Title, rec.Statement, rec.Tags, rec.Concepts)
		if err != nil {
			return nil, fmt.Errorf("invalid corpus record [%d]: %w", i, err)
		}
		records = append(records, Record{Problem: problem, Raw: raw})
	}

	return records, nil
}

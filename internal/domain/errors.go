package domain

import "errors"

// ErrNotFound signals a lookup for a problem id that is not in the corpus.
// It is the only failure mode the core exposes: vectorization and search are
// total functions and degrade to empty results instead of erroring.
var ErrNotFound = errors.New("not found")

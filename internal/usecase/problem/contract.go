package problem

import "encoding/json"

// DetailReader looks up the verbatim stored record for a problem id.
type DetailReader interface {
	Detail(id string) (json.RawMessage, error)
}

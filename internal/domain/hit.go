package domain

// Hit is a single ranked search result: the public fields of a corpus
// problem plus its cosine similarity to the query.
type Hit struct {
	id    string
	title string
	tags  []string
	score float64
}

// NewHit creates a search hit.
func NewHit(id, title string, tags []string, score float64) Hit {
	return Hit{id: id, title: title, tags: tags, score: score}
}

// ID returns the problem identifier.
func (h *Hit) ID() string { return h.id }

// Title returns the problem title.
func (h *Hit) Title() string { return h.title }

// Tags returns a copy of the problem tags; mutating it does not affect the Hit.
func (h *Hit) Tags() []string { return cloneStrings(h.tags) }

// Score returns the cosine similarity, in [0, 1] since bigram count
// vectors have no negative components.
func (h *Hit) Score() float64 { return h.score }

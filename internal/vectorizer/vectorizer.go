// Package vectorizer converts arbitrary text into fixed-length unit vectors
// using character-bigram feature hashing. The mapping is pure and
// deterministic: the same text and dimension always produce the bit-identical
// vector, across process restarts and platforms.
package vectorizer

import (
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultDimensions is the vector length used when none is configured.
const DefaultDimensions = 128

// Vectorizer hashes character bigrams into a fixed number of buckets.
// Distinct bigrams may alias to the same bucket; that is deliberate lossy
// dimensionality reduction, not a defect.
type Vectorizer struct {
	dim int
}

// New creates a Vectorizer with the given vector dimension.
// Non-positive dim falls back to DefaultDimensions.
func New(dim int) *Vectorizer {
	if dim <= 0 {
		dim = DefaultDimensions
	}
	return &Vectorizer{dim: dim}
}

// Dimensions returns the fixed vector length.
func (v *Vectorizer) Dimensions() int { return v.dim }

// Vectorize converts text into an L2-normalized bigram count vector.
// Text that normalizes to the empty string yields the all-zero vector;
// every other input yields a vector with Euclidean norm 1.
func (v *Vectorizer) Vectorize(text string) []float32 {
	vec := make([]float32, v.dim)

	normalized := normalize(text)
	if normalized == "" {
		// No tokens at all: the empty string must not hash into a bucket.
		return vec
	}

	for _, token := range bigrams(normalized) {
		vec[v.bucket(token)]++
	}

	var sum float64
	for _, c := range vec {
		sum += float64(c) * float64(c)
	}
	if sum == 0 {
		return vec
	}

	scale := 1 / math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) * scale)
	}
	return vec
}

// bucket maps a token to a vector index. The hash is xxhash64 over the
// token's UTF-8 bytes, truncated to the low 32 bits and reduced modulo the
// dimension. xxhash is stable across runs and platforms, which keeps bucket
// assignments reproducible.
func (v *Vectorizer) bucket(token string) int {
	h := uint32(xxhash.Sum64String(token))
	return int(h % uint32(v.dim))
}

// normalize lowercases the text and strips all whitespace. Deliberately
// coarse: no punctuation stripping, no script-specific folding beyond
// strings.ToLower.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), "")
}

// bigrams returns every overlapping 2-rune substring, with multiplicity and
// in order. Normalized text shorter than 2 runes yields a single token: the
// whole (possibly empty) string.
func bigrams(text string) []string {
	runes := []rune(text)
	if len(runes) < 2 {
		return []string{text}
	}
	tokens := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		tokens = append(tokens, string(runes[i:i+2]))
	}
	return tokens
}

// Dot returns the dot product of two vectors. For vectors produced by
// Vectorize this equals their cosine similarity, since both are either
// unit-length or all-zero. Mismatched lengths score 0.
func Dot(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

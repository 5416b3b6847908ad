package domain

import (
	"fmt"
	"strings"
)

// Problem is one corpus record (immutable value object). The corpus is built
// once at startup and never mutated, so Problem carries no revision.
type Problem struct {
	id        string
	title     string
	statement string
	tags      []string
	concepts  []string
}

// NewProblem validates and creates a Problem.
func NewProblem(id, title, statement string, tags, concepts []string) (Problem, error) {
	if id == "" {
		return Problem{}, fmt.Errorf("problem id is required")
	}
	return Problem{
		id:        id,
		title:     title,
		statement: statement,
		tags:      cloneStrings(tags),
		concepts:  cloneStrings(concepts),
	}, nil
}

// ID returns the problem identifier.
func (p *Problem) ID() string { return p.id }

// Title returns the problem title.
func (p *Problem) Title() string { return p.title }

// Statement returns the problem statement text.
func (p *Problem) Statement() string { return p.statement }

// Tags returns a copy of the tag list; mutating it does not affect the Problem.
func (p *Problem) Tags() []string { return cloneStrings(p.tags) }

// Concepts returns a copy of the concept list; mutating it does not affect the Problem.
func (p *Problem) Concepts() []string { return cloneStrings(p.concepts) }

// SearchableText derives the text that gets vectorized for this problem:
// title, statement, tags, and concepts in that fixed order, absent fields
// contributing nothing. The separator is cosmetic — the vectorizer strips
// all whitespace before tokenizing.
func (p *Problem) SearchableText() string {
	parts := make([]string, 0, 2+len(p.tags)+len(p.concepts))
	parts = append(parts, p.title, p.statement)
	parts = append(parts, p.tags...)
	parts = append(parts, p.concepts...)
	return strings.Join(parts, " ")
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

package domain

import "testing"

func TestNewProblem_RequiresID(t *testing.T) {
	if _, err := NewProblem("", "title", "statement", nil, nil); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestNewProblem_ClonesSlices(t *testing.T) {
	tags := []string{"graph"}
	p, err := NewProblem("p1", "t", "s", tags, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags[0] = "mutated"
	if p.Tags()[0] != "graph" {
		t.Error("problem tags must not alias the caller's slice")
	}
}

func TestProblem_GettersReturnCopies(t *testing.T) {
	p, err := NewProblem("p1", "t", "s", []string{"graph"}, []string{"dfs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Tags()[0] = "mutated"
	if p.Tags()[0] != "graph" {
		t.Error("Tags() must not expose the internal slice")
	}

	p.Concepts()[0] = "mutated"
	if p.Concepts()[0] != "dfs" {
		t.Error("Concepts() must not expose the internal slice")
	}
}

func TestHit_TagsReturnsCopy(t *testing.T) {
	h := NewHit("p1", "t", []string{"graph"}, 0.5)

	h.Tags()[0] = "mutated"
	if h.Tags()[0] != "graph" {
		t.Error("Tags() must not expose the internal slice")
	}
}

func TestSearchableText_FixedFieldOrder(t *testing.T) {
	p, err := NewProblem("p1", "二分探索", "配列から値を探す", []string{"探索", "配列"}, []string{"分割統治"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "二分探索 配列から値を探す 探索 配列 分割統治"
	if got := p.SearchableText(); got != want {
		t.Errorf("SearchableText() = %q, want %q", got, want)
	}
}

func TestSearchableText_AbsentFieldsEmpty(t *testing.T) {
	p, err := NewProblem("p1", "title", "", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.SearchableText(); got != "title " {
		t.Errorf("SearchableText() = %q, want %q", got, "title ")
	}
}

func TestHit_Accessors(t *testing.T) {
	h := NewHit("p1", "二分探索", []string{"探索"}, 0.75)
	if h.ID() != "p1" || h.Title() != "二分探索" || h.Score() != 0.75 {
		t.Errorf("unexpected hit fields: %q %q %g", h.ID(), h.Title(), h.Score())
	}
	if len(h.Tags()) != 1 || h.Tags()[0] != "探索" {
		t.Errorf("unexpected tags: %v", h.Tags())
	}
}

package hits

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/seq"
)

func named(id string, start, end int) seq.NamedRange {
	return seq.NamedRange{Range: seq.Range{Start: start, End: end}, ID: id}
}

func ids(rs []seq.NamedRange) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestAt(t *testing.T) {
	idx, err := New([]seq.NamedRange{
		named("a", 0, 630),
		named("b", 634, 706),
		named("wrap", 3658, 7),
		named("full", 1000, 1000),
		named("c", 600, 700),
	}, 3744)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		base int
		want []string
	}{
		{0, []string{"a", "wrap", "full"}},
		{6, []string{"a", "wrap", "full"}},
		{7, []string{"a", "full"}},
		{629, []string{"a", "full", "c"}},
		{630, []string{"full", "c"}},
		{650, []string{"b", "full", "c"}},
		{3700, []string{"wrap", "full"}},
		{3744, []string{"a", "wrap", "full"}},
		{-1, []string{"wrap", "full"}},
	}
	for _, tt := range tests {
		got := ids(idx.At(tt.base))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("At(%d) mismatch (-want +got):\n%s", tt.base, diff)
		}
	}
}

func TestLen(t *testing.T) {
	idx, err := New([]seq.NamedRange{
		named("plain", 10, 20),
		named("wrap", 90, 10),
		named("wrapToOrigin", 90, 0),
		named("fullFromOrigin", 0, 0),
		named("full", 50, 50),
	}, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := idx.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestOverlapping(t *testing.T) {
	idx, err := New([]seq.NamedRange{
		named("a", 10, 20),
		named("b", 30, 40),
		named("wrap", 90, 5),
	}, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		r    seq.Range
		want []string
	}{
		{"inside one", seq.Range{Start: 12, End: 15}, []string{"a"}},
		{"spanning two", seq.Range{Start: 15, End: 35}, []string{"a", "b"}},
		{"touching edge", seq.Range{Start: 20, End: 30}, []string{}},
		{"crossing query", seq.Range{Start: 95, End: 12}, []string{"a", "wrap"}},
		{"full query", seq.Range{Start: 50, End: 50}, []string{"a", "b", "wrap"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(idx.Overlapping(tt.r))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Overlapping(%v) mismatch (-want +got):\n%s", tt.r, diff)
			}
		})
	}
}

func TestNewRejectsUnnormalized(t *testing.T) {
	_, err := New([]seq.NamedRange{named("bad", 10, 120)}, 100)
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Errorf("New() error = %v, want %s", err, errors.ErrCodeInvalidRange)
	}
}

func TestEmptySequence(t *testing.T) {
	idx, err := New(nil, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := idx.At(3); got != nil {
		t.Errorf("At() = %v, want nil", got)
	}
}

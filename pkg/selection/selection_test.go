package selection

import (
	"testing"

	"github.com/matzehuels/seqmap/pkg/seq"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		clockwise  bool
		want       int
	}{
		{"clockwise forward", 2, 5, true, 3},
		{"clockwise wrapping", 8, 2, true, 4},
		{"counter-clockwise backward", 5, 2, false, 3},
		{"counter-clockwise wrapping", 2, 8, false, 4},
		{"cursor", 4, 4, true, 0},
		{"counter-clockwise cursor", 4, 4, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.start, tt.end, tt.clockwise, 10); got != tt.want {
				t.Errorf("Length(%d, %d, %v) = %d, want %d", tt.start, tt.end, tt.clockwise, got, tt.want)
			}
		})
	}
}

func TestSubstring(t *testing.T) {
	const bases = "ABCDEFGHIJ"
	tests := []struct {
		start, end int
		clockwise  bool
		want       string
	}{
		{2, 5, true, "CDE"},
		{8, 2, true, "IJAB"},
		{5, 2, false, "CDE"},
		{2, 8, false, "IJAB"},
		{3, 3, true, ""},
		{0, 10, true, "ABCDEFGHIJ"},
	}
	for _, tt := range tests {
		if got := Substring(bases, tt.start, tt.end, tt.clockwise); got != tt.want {
			t.Errorf("Substring(%d, %d, %v) = %q, want %q", tt.start, tt.end, tt.clockwise, got, tt.want)
		}
	}
}

func TestLengthMatchesSubstring(t *testing.T) {
	bases := "GATTACAGATTACAGATTACAGATTACAGATTACAGA"
	n := len(bases)
	for start := 0; start < n; start++ {
		for end := 0; end < n; end++ {
			for _, cw := range []bool{true, false} {
				if got, want := len(Substring(bases, start, end, cw)), Length(start, end, cw, n); got != want {
					t.Fatalf("len(Substring(%d, %d, %v)) = %d, Length = %d", start, end, cw, got, want)
				}
			}
		}
	}
}

func TestExtentMatchesSubstring(t *testing.T) {
	s := seq.New("ACGTACGTACGTACGTACGT", seq.Circular)
	n := s.Len()
	for start := 0; start < n; start++ {
		for end := 0; end < n; end++ {
			r := seq.Range{Start: start, End: end}
			if seq.IsFullWrap(r) {
				continue
			}
			if got, want := len(Substring(s.Bases, start, end, true)), seq.Extent(r, n); got != want {
				t.Fatalf("range %v: substring length %d, extent %d", r, got, want)
			}
		}
	}
}

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want seq.Range
	}{
		{"clockwise", Selection{Start: 2, End: 5, Clockwise: true}, seq.Range{Start: 2, End: 5, Direction: seq.Forward}},
		{"counter-clockwise", Selection{Start: 5, End: 2}, seq.Range{Start: 2, End: 5, Direction: seq.Reverse}},
		{"all", Selection{Start: 7, End: 9, Ref: RefAll}, seq.Range{Start: 7, End: 7, Direction: seq.Forward}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Range(); got != tt.want {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}

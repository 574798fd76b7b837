package selection

import "github.com/matzehuels/seqmap/pkg/seq"

// RefAll marks a selection of the entire sequence.
const RefAll = "ALL"

// Selection is the current selected arc. Length and Sequence are derived
// from the other fields by the engine.
type Selection struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Clockwise bool   `json:"clockwise"`
	Ref       string `json:"ref,omitempty"`
	Name      string `json:"name,omitempty"`
	Length    int    `json:"length"`
	Sequence  string `json:"sequence,omitempty"`
}

// Empty returns the initial cursor at index 0.
func Empty() Selection {
	return Selection{Clockwise: true}
}

// IsAll reports whether the whole sequence is selected.
func (s Selection) IsAll() bool { return s.Ref == RefAll }

// IsCursor reports whether s is a single point with no span.
func (s Selection) IsCursor() bool { return !s.IsAll() && s.Start == s.End }

// Range converts the selection into a forward range over the sequence.
func (s Selection) Range() seq.Range {
	if s.IsAll() {
		return seq.Range{Start: s.Start, End: s.Start, Direction: seq.Forward}
	}
	if s.Clockwise {
		return seq.Range{Start: s.Start, End: s.End, Direction: seq.Forward}
	}
	return seq.Range{Start: s.End, End: s.Start, Direction: seq.Reverse}
}

// derive fills Length and Sequence from sq.
func (s Selection) derive(sq seq.Sequence) Selection {
	if s.IsAll() {
		s.Length = sq.Len()
		s.Sequence = sq.Bases
		return s
	}
	s.Length = Length(s.Start, s.End, s.Clockwise, sq.Len())
	s.Sequence = Substring(sq.Bases, s.Start, s.End, s.Clockwise)
	return s
}

// Length returns the number of bases between start and end travelling in
// the given direction around a sequence of length n.
func Length(start, end int, clockwise bool, n int) int {
	if clockwise {
		if end >= start {
			return end - start
		}
		return n - start + end
	}
	if start >= end {
		return start - end
	}
	return n - end + start
}

// Substring returns the bases Length counts, concatenating across the
// origin when the arc wraps. The result is in sequence order.
func Substring(bases string, start, end int, clockwise bool) string {
	n := len(bases)
	if n == 0 {
		return ""
	}
	start, end = clamp(start, n), clamp(end, n)
	if clockwise {
		if end >= start {
			return bases[start:end]
		}
		return bases[start:] + bases[:end]
	}
	if start >= end {
		return bases[end:start]
	}
	return bases[end:] + bases[:start]
}

func clamp(i, n int) int {
	return max(0, min(i, n))
}

// distance is the number of steps from a to b moving forward (clockwise)
// or backward around a ring of n.
func distance(a, b int, forward bool, n int) int {
	if forward {
		return seq.Mod(b-a, n)
	}
	return seq.Mod(a-b, n)
}

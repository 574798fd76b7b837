package seq

import "fmt"

// Direction is the strand a range is read on.
type Direction int

const (
	Reverse Direction = -1
	None    Direction = 0
	Forward Direction = 1
)

// Range is a half-open span [Start, End) over a sequence of length N.
// Start == End encodes the full sequence, not an empty span.
type Range struct {
	Start     int       `json:"start"`
	End       int       `json:"end"`
	Direction Direction `json:"direction"`
}

// String renders the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Extent returns the number of bases covered by r in a sequence of length n.
func Extent(r Range, n int) int {
	switch {
	case IsFullWrap(r):
		return n
	case CrossesOrigin(r):
		return (n - r.Start) + r.End
	default:
		return r.End - r.Start
	}
}

// CrossesOrigin reports whether r wraps through index 0.
func CrossesOrigin(r Range) bool { return r.End < r.Start }

// IsFullWrap reports whether r covers the entire sequence.
func IsFullWrap(r Range) bool { return r.Start == r.End }

// Contains reports whether index i lies inside r.
func Contains(r Range, i int) bool {
	switch {
	case IsFullWrap(r):
		return true
	case CrossesOrigin(r):
		return i >= r.Start || i < r.End
	default:
		return i >= r.Start && i < r.End
	}
}

// Overlaps reports whether a and b share at least one base.
func Overlaps(a, b Range) bool {
	if IsFullWrap(a) || IsFullWrap(b) {
		return true
	}
	for _, x := range linearParts(a) {
		for _, y := range linearParts(b) {
			if x[0] < y[1] && y[0] < x[1] {
				return true
			}
		}
	}
	return false
}

// linearParts splits a non-full-wrap range into one or two non-wrapping
// [start,end) pairs. The trailing pair of a crossing range is unbounded on
// the right so callers need not know N.
func linearParts(r Range) [][2]int {
	if !CrossesOrigin(r) {
		return [][2]int{{r.Start, r.End}}
	}
	return [][2]int{{r.Start, int(^uint(0) >> 1)}, {0, r.End}}
}

// Mod returns i modulo n in [0, n). It returns 0 when n <= 0.
func Mod(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Normalize folds Start and End into [0, n). Collaborators that produce
// ranges (parsers, search, digestion) call this before handing ranges to
// the layout engine, which assumes normalized input.
func Normalize(r Range, n int) Range {
	r.Start = Mod(r.Start, n)
	r.End = Mod(r.End, n)
	return r
}

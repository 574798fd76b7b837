package seq

import "strings"

// Topology describes whether a sequence's ends are joined.
type Topology int

const (
	// Circular sequences (plasmids) wrap from the last base back to index 0.
	Circular Topology = iota
	// Linear sequences have a seam at index 0.
	Linear
)

// String returns "circular" or "linear".
func (t Topology) String() string {
	if t == Linear {
		return "linear"
	}
	return "circular"
}

// ParseTopology maps "circular" and "linear" (case-insensitive) to a
// Topology. Unknown values report false.
func ParseTopology(s string) (Topology, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "circular":
		return Circular, true
	case "linear":
		return Linear, true
	}
	return Circular, false
}

// Sequence is an immutable run of bases (or residues) with a topology.
type Sequence struct {
	Bases    string
	Topology Topology
}

// New returns a sequence with upper-cased bases.
func New(bases string, t Topology) Sequence {
	return Sequence{Bases: strings.ToUpper(bases), Topology: t}
}

// Len returns N, the number of bases.
func (s Sequence) Len() int { return len(s.Bases) }

// IsCircular reports whether the sequence wraps at the origin.
func (s Sequence) IsCircular() bool { return s.Topology == Circular }

// Extract returns the bases covered by r, walking forward from r.Start.
// A full-wrap range yields the whole sequence rotated to begin at r.Start,
// so len(Extract(r)) == Extent(r, N) for every normalized range.
func (s Sequence) Extract(r Range) string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	switch {
	case IsFullWrap(r):
		return s.Bases[r.Start:] + s.Bases[:r.Start]
	case CrossesOrigin(r):
		return s.Bases[r.Start:] + s.Bases[:r.End]
	default:
		return s.Bases[r.Start:r.End]
	}
}

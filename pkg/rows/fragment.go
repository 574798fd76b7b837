package rows

import "github.com/matzehuels/seqmap/pkg/seq"

// Grid describes how a sequence of length N is cut into blocks of
// BpsPerBlock bases. The final block may be shorter.
type Grid struct {
	N           int
	BpsPerBlock int
}

// NewGrid returns a grid, forcing at least one base per block.
func NewGrid(n, bpsPerBlock int) Grid {
	if bpsPerBlock < 1 {
		bpsPerBlock = 1
	}
	return Grid{N: n, BpsPerBlock: bpsPerBlock}
}

// BlockCount returns ceil(N / BpsPerBlock).
func (g Grid) BlockCount() int {
	if g.N <= 0 || g.BpsPerBlock <= 0 {
		return 0
	}
	return (g.N + g.BpsPerBlock - 1) / g.BpsPerBlock
}

// BlockOf returns the block holding index i, clamped to the grid.
func (g Grid) BlockOf(i int) int {
	count := g.BlockCount()
	if count == 0 {
		return 0
	}
	b := i / g.BpsPerBlock
	switch {
	case b < 0:
		return 0
	case b >= count:
		return count - 1
	}
	return b
}

// Part says which portion of its parent range a Piece carries.
type Part int

const (
	// PartWhole is an unsplit range.
	PartWhole Part = iota
	// PartHead runs from the parent's start forward to the origin.
	PartHead
	// PartTail runs from the origin forward to the parent's end.
	PartTail
)

func (p Part) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartTail:
		return "tail"
	}
	return "whole"
}

// Piece is the part of a range copied into a block. From and To bound the
// part in sequence coordinates (To may equal N); they are not clipped to
// the block.
type Piece struct {
	seq.NamedRange
	Part Part
	From int
	To   int
}

// ParentID returns the id shared by both halves of a split range.
func (p Piece) ParentID() string { return p.ID }

// Split breaks r into its whole or head/tail parts for a sequence of
// length n. Tail parts come first, matching block order from the origin.
func Split(r seq.NamedRange, n int) []Piece {
	switch {
	case seq.IsFullWrap(r.Range) && r.Start == 0:
		return []Piece{{NamedRange: r, Part: PartWhole, From: 0, To: n}}
	case seq.IsFullWrap(r.Range), seq.CrossesOrigin(r.Range):
		pieces := make([]Piece, 0, 2)
		if r.End > 0 {
			pieces = append(pieces, Piece{NamedRange: r, Part: PartTail, From: 0, To: r.End})
		}
		return append(pieces, Piece{NamedRange: r, Part: PartHead, From: r.Start, To: n})
	default:
		return []Piece{{NamedRange: r, Part: PartWhole, From: r.Start, To: r.End}}
	}
}

// blocksOf returns the first and last block touched by [from, to).
func (g Grid) blocksOf(from, to int) (int, int, bool) {
	if to <= from {
		return 0, 0, false
	}
	return g.BlockOf(from), g.BlockOf(to - 1), true
}

// FragmentMulti copies every range of every row into each block it
// touches. The result is indexed [block][row] and every block carries the
// same number of rows, empty where the row has nothing in that block.
func FragmentMulti(rs RowSet, g Grid) [][][]Piece {
	count := g.BlockCount()
	out := make([][][]Piece, count)
	for b := range out {
		out[b] = make([][]Piece, len(rs))
	}
	for ri, row := range rs {
		for _, r := range row {
			for _, p := range Split(r, g.N) {
				first, last, ok := g.blocksOf(p.From, p.To)
				if !ok {
					continue
				}
				for b := first; b <= last; b++ {
					out[b][ri] = append(out[b][ri], p)
				}
			}
		}
	}
	return out
}

// FragmentSingle performs the same assignment for a flat list. When
// allowDuplicates is false a block receives at most one piece per id, the
// first one assigned.
func FragmentSingle(ranges []seq.NamedRange, g Grid, allowDuplicates bool) [][]Piece {
	count := g.BlockCount()
	out := make([][]Piece, count)
	for _, r := range ranges {
		for _, p := range Split(r, g.N) {
			first, last, ok := g.blocksOf(p.From, p.To)
			if !ok {
				continue
			}
			for b := first; b <= last; b++ {
				if !allowDuplicates && hasID(out[b], p.ID) {
					continue
				}
				out[b] = append(out[b], p)
			}
		}
	}
	return out
}

func hasID(pieces []Piece, id string) bool {
	for _, p := range pieces {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Package hits answers "which features cover this base" for the pointer
// and keyboard handlers.
//
// Ranges are split with [rows.Split] so that origin-crossing and
// full-wrap ranges become plain half-open intervals, then stored in a
// biogo interval tree.
package hits

import (
	"fmt"
	"slices"

	"github.com/biogo/store/interval"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/rows"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// span is one linear piece of an indexed range. order is the position of
// the parent range in the input.
type span struct {
	Start, End int
	UID        uintptr
	order      int
}

func (s span) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return s.End > b.Start && s.Start < b.End
}

func (s span) ID() uintptr { return s.UID }

func (s span) Range() interval.IntRange {
	return interval.IntRange{Start: s.Start, End: s.End}
}

func (s span) String() string {
	return fmt.Sprintf("[%d,%d)#%d", s.Start, s.End, s.UID)
}

// Index is an immutable base → feature lookup.
type Index struct {
	n      int
	ranges []seq.NamedRange
	tree   interval.IntTree
}

// New indexes ranges over a sequence of length n. Ranges must already be
// normalized.
func New(ranges []seq.NamedRange, n int) (*Index, error) {
	x := &Index{n: n, ranges: ranges}
	if n <= 0 {
		return x, nil
	}
	var uid uintptr
	for i, r := range ranges {
		if r.Start < 0 || r.Start >= n || r.End < 0 || r.End >= n {
			return nil, errors.New(errors.ErrCodeInvalidRange, "range %s (%s) outside sequence of length %d", r.ID, r.Range, n)
		}
		for _, p := range rows.Split(r, n) {
			uid++
			if err := x.tree.Insert(span{Start: p.From, End: p.To, UID: uid, order: i}, true); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "index range %s", r.ID)
			}
		}
	}
	x.tree.AdjustRanges()
	return x, nil
}

// Len returns the number of indexed intervals, counting both halves of a
// split range.
func (x *Index) Len() int { return x.tree.Len() }

// At returns every range covering base, in input order.
func (x *Index) At(base int) []seq.NamedRange {
	if x.n <= 0 {
		return nil
	}
	base = seq.Mod(base, x.n)
	return x.collect(span{Start: base, End: base + 1})
}

// Overlapping returns every range sharing at least one base with r, in
// input order.
func (x *Index) Overlapping(r seq.Range) []seq.NamedRange {
	if x.n <= 0 {
		return nil
	}
	var queries []span
	for _, p := range rows.Split(seq.NamedRange{Range: r}, x.n) {
		queries = append(queries, span{Start: p.From, End: p.To})
	}
	return x.collect(queries...)
}

func (x *Index) collect(queries ...span) []seq.NamedRange {
	seen := make(map[int]bool)
	var orders []int
	for _, q := range queries {
		for _, e := range x.tree.Get(q) {
			o := e.(span).order
			if !seen[o] {
				seen[o] = true
				orders = append(orders, o)
			}
		}
	}
	slices.Sort(orders)
	out := make([]seq.NamedRange, len(orders))
	for i, o := range orders {
		out[i] = x.ranges[o]
	}
	return out
}

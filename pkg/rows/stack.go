package rows

import "github.com/matzehuels/seqmap/pkg/seq"

// Row is a list of ranges that pairwise do not overlap, in insertion order.
type Row []seq.NamedRange

// RowSet is the stacked output, in the order rows were opened.
type RowSet []Row

// Len returns the total number of ranges across all rows.
func (rs RowSet) Len() int {
	var n int
	for _, r := range rs {
		n += len(r)
	}
	return n
}

// Stack packs ranges into rows for a sequence of length n.
func Stack(ranges []seq.NamedRange, n int) RowSet {
	var rows RowSet
	for _, a := range ranges {
		i := firstFit(rows, a.Range, n)
		if i < 0 {
			rows = append(rows, Row{a})
			continue
		}
		rows[i] = append(rows[i], a)
	}
	return rows
}

func firstFit(rows RowSet, a seq.Range, n int) int {
	if seq.IsFullWrap(a) {
		return -1
	}
	for i, row := range rows {
		if fits(row, a, n) {
			return i
		}
	}
	return -1
}

// fits applies the origin-aware test against the row's last member. A
// full-wrap member is treated as crossing, which closes the row.
func fits(row Row, a seq.Range, n int) bool {
	b := row[len(row)-1].Range
	switch {
	case seq.CrossesOrigin(b) || seq.IsFullWrap(b):
		return b.End+n <= a.Start
	case !seq.CrossesOrigin(a):
		return b.End <= a.Start
	default:
		return b.End < a.Start && a.End < row[0].Start
	}
}

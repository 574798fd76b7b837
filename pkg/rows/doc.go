// Package rows stacks possibly-overlapping ranges into display rows and
// partitions those rows across the fixed-width blocks of the linear map.
//
// # Stacking
//
// [Stack] is a greedy first-fit packer: each range goes into the first row
// whose most recently inserted member it does not overlap, otherwise it
// opens a new row. Input order determines the result, so the same input
// always yields the same rows.
//
// # Fragmentation
//
// [FragmentMulti] and [FragmentSingle] copy each range into every block it
// touches. A range that wraps through the origin becomes two linked
// [Piece] records, a [PartHead] running from its start to the origin and a
// [PartTail] running from the origin to its end, both carrying the parent
// id. A full-wrap range that does not begin at index 0 is split the same
// way at its start, so the block holding the start shows both halves.
package rows

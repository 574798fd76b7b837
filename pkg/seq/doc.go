// Package seq defines the shared data shapes of a sequence map: the
// [Sequence] being displayed, the [Range] and [NamedRange] values laid over
// it, and the modular-arithmetic helpers every layout and selection
// component builds on.
//
// # Index Space
//
// All positions are zero-based indices into the sequence. Ranges are
// half-open: a range covers start up to, but not including, end. Because
// sequences may be circular, index arithmetic is modular over the sequence
// length N, and a range can take one of three shapes:
//
//   - ordinary (end > start): covers end-start bases
//   - origin-crossing (end < start): wraps through index 0 and covers
//     (N-start)+end bases
//   - full-wrap (end == start): covers the entire sequence
//
// Linear sequences use the same encoding, with the seam at index 0.
//
// Every branch in the row stacker, both projections and the selection
// engine is expressed in terms of [Extent], [CrossesOrigin] and
// [IsFullWrap].
package seq

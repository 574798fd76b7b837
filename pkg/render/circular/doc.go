// Package circular implements the angular geometry of the plasmid disc.
//
// Index 0 sits at 12 o'clock and indices increase clockwise. Features are
// positioned in unrotated coordinates and the whole group is rotated by
// [Projection.RotationOf] so text can stay upright while the ring turns
// under it. The rotation reference is the circular anchor held by an
// [anchor.Store].
//
// [Projection.ArcBoundary] builds the closed outline of a ring segment as a
// [Path] of move, line and arc primitives. A segment cannot span a full
// circle because a closed ring is not expressible as one arc command;
// [Drawable] shrinks a full-length request by [FullCircleEpsilon].
package circular

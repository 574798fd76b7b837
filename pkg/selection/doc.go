// Package selection implements the interactive selection state machine
// shared by the circular and linear views.
//
// A [Selection] is a directional arc over the circular index space: Start
// and End are base boundaries and Clockwise picks which of the two arcs
// between them is meant. Ref names the feature the selection came from,
// or [RefAll] when the whole sequence is selected.
//
// The [Engine] consumes pointer, keyboard, copy and select-all events and
// replaces its Selection on every accepted change. It is synchronous and
// owned by a single view; it is not safe for concurrent use.
//
// # Circular drags
//
// The circular view only sees discrete hit-tests, so the engine cannot
// observe a drag through the origin directly. A jump larger than
// [ZeroCrossThreshold] of the ring between two samples is read as a wrap.
// An accumulated drag length distinguishes a full loop from a short
// backward drag past the start; once it reaches N the selection becomes
// [RefAll].
package selection

package selection

import "github.com/matzehuels/seqmap/pkg/seq"

// =============================================================================
// Linear drags
// =============================================================================

func (e *Engine) linearDown(base int, shift bool) {
	start := base
	if shift {
		start = e.sel.Start
	}
	e.state = DraggingLinear
	e.commit(Selection{Start: start, End: base, Clockwise: base >= start})
}

func (e *Engine) linearMove(base int) {
	start := e.sel.Start
	e.commit(Selection{Start: start, End: base, Clockwise: base >= start})
}

// =============================================================================
// Circular drags
// =============================================================================

func (e *Engine) circularDown(base int, shift bool) {
	n := e.seq.Len()
	e.state = DraggingCircular
	if shift {
		cw := e.sel.Clockwise
		e.drag = dragState{prev: base, acc: Length(e.sel.Start, base, cw, n)}
		e.drag.started = e.drag.acc > 0
		e.commit(Selection{Start: e.sel.Start, End: base, Clockwise: cw})
		return
	}
	e.drag = dragState{prev: base}
	e.commit(Selection{Start: base, End: base, Clockwise: true})
}

// circularMove advances the drag to base. The accumulated length is signed
// by whether the motion agrees with the selection's direction; a negative
// total means the drag has backed past its start, which flips direction.
func (e *Engine) circularMove(base int) {
	n := e.seq.Len()
	d := &e.drag
	if base == d.prev {
		return
	}

	change := d.prev - base
	if change < 0 {
		change = -change
	}
	increased := base > d.prev
	crossedZero := float64(change) > ZeroCrossThreshold*float64(n)
	forward := increased
	delta := change
	if crossedZero {
		forward = !increased
		delta = n - change
	}

	next := e.sel
	if forward == next.Clockwise {
		d.acc += delta
	} else {
		d.acc -= delta
	}
	d.prev = base

	if next.IsAll() {
		e.circularMoveAll(next, base, forward)
		return
	}

	if d.acc < 0 {
		next.Clockwise = !next.Clockwise
		d.acc = -d.acc
	}
	if float64(d.acc) < ReselectFraction*float64(n) && !d.started {
		next.Clockwise = forward
		if distance(next.Start, base, forward, n) > d.acc {
			next.Clockwise = !forward
		}
	}

	next.End = base
	next.Ref = ""
	if d.acc >= n {
		d.acc = n + seq.Mod(d.acc, n)
		next.Ref = RefAll
	}
	e.commit(next)
}

// circularMoveAll handles motion while the whole sequence is selected. The
// accumulator stays folded into [N, 2N) so continuing around keeps the
// selection full. Backing off below a full turn shows up as the fold
// landing exactly on the distance from the start, more than
// ZeroCrossThreshold of the ring away.
func (e *Engine) circularMoveAll(next Selection, base int, forward bool) {
	n := e.seq.Len()
	d := &e.drag
	backward := forward != next.Clockwise

	d.acc = n + seq.Mod(d.acc, n)
	dist := distance(next.Start, base, next.Clockwise, n)
	next.End = base
	if backward && dist == d.acc-n && float64(dist) > ZeroCrossThreshold*float64(n) {
		d.acc -= n
		next.Ref = ""
	}
	e.commit(next)
}

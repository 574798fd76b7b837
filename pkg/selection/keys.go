package selection

import "github.com/matzehuels/seqmap/pkg/seq"

// Key moves the linear cursor, or extends the selection when shift is
// held. Up and Down move a whole block when the layout has more than one.
// Keys are ignored while the circular view is active.
func (e *Engine) Key(ev KeyEvent) {
	n := e.seq.Len()
	switch {
	case e.active == SurfaceCircular:
		e.drop("key-"+ev.Key.String(), "circular view active")
		return
	case n == 0:
		e.drop("key-"+ev.Key.String(), "empty sequence")
		return
	}

	step := 1
	if (ev.Key == KeyUp || ev.Key == KeyDown) && e.lin != nil && e.lin.Grid.BlockCount() > 1 {
		step = e.lin.Grid.BpsPerBlock
	}
	forward := ev.Key == KeyRight || ev.Key == KeyDown
	delta := step
	if !forward {
		delta = -step
	}

	cur := e.sel
	if !ev.Shift {
		pos := e.wrap(cur.End + delta)
		e.commit(Selection{Start: pos, End: pos, Clockwise: true})
		return
	}

	next := Selection{Start: cur.Start, End: e.wrap(cur.End + delta), Clockwise: cur.Clockwise}
	switch {
	case cur.IsCursor():
		next.Clockwise = forward
	case !cur.IsAll() && forward != cur.Clockwise && step > cur.Length:
		// Shrinking past the start turns the selection around.
		next.Clockwise = forward
	}
	e.commit(next)
}

// wrap folds a cursor position into the sequence: modulo N for circular
// sequences, clamped to [0, N] for linear ones.
func (e *Engine) wrap(i int) int {
	n := e.seq.Len()
	if e.seq.IsCircular() {
		return seq.Mod(i, n)
	}
	return clamp(i, n)
}

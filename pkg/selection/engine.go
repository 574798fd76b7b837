package selection

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/observability"
	"github.com/matzehuels/seqmap/pkg/render/circular"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/seq"
)

const (
	// ZeroCrossThreshold is the fraction of the ring a single drag sample
	// must jump before it is read as a pass through the origin. It is a
	// sampling-rate heuristic; faster pointers need a lower value.
	ZeroCrossThreshold = 0.9

	// ReselectFraction is the fraction of the ring within which a fresh
	// circular drag may still choose its direction.
	ReselectFraction = 0.01

	// DoubleClickWindow is how close two clicks must be for an amino acid
	// click to select its whole translation.
	DoubleClickWindow = 500 * time.Millisecond
)

// Clipboard receives copied bases.
type Clipboard interface {
	WriteText(text string) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger enables debug logging of dropped events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClipboard sets the copy target.
func WithClipboard(c Clipboard) Option {
	return func(e *Engine) { e.clipboard = c }
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// OnChange registers fn to receive every accepted selection.
func OnChange(fn func(Selection)) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, fn) }
}

// dragState is the bookkeeping of an active circular drag.
type dragState struct {
	prev    int
	acc     int
	started bool
}

// Engine is the selection state machine for one sequence view.
type Engine struct {
	seq     seq.Sequence
	anchors *anchor.Store
	circ    *circular.Projection
	lin     *linear.Projection

	sel       Selection
	state     State
	active    Surface
	drag      dragState
	lastClick time.Time

	now       func() time.Time
	logger    *log.Logger
	clipboard Clipboard
	listeners []func(Selection)
	ctx       context.Context
}

// New returns an engine over s. anchors may be nil when no view needs to
// follow feature clicks.
func New(s seq.Sequence, anchors *anchor.Store, opts ...Option) *Engine {
	e := &Engine{
		seq:     s,
		anchors: anchors,
		sel:     Empty().derive(s),
		now:     time.Now,
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetProjections attaches the geometry used to resolve pointer positions.
// Either may be nil; events on a surface without a projection are dropped.
func (e *Engine) SetProjections(c *circular.Projection, l *linear.Projection) {
	e.circ, e.lin = c, l
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection { return e.sel }

// State returns the interaction state.
func (e *Engine) State() State { return e.state }

// Sequence returns the sequence the engine selects over.
func (e *Engine) Sequence() seq.Sequence { return e.seq }

// SetActive records which view has focus. Keyboard input only applies
// while the linear view is active.
func (e *Engine) SetActive(s Surface) { e.active = s }

// SetSequence swaps in a new sequence and resets the selection and
// anchors. A sequence that fails validation leaves the engine unchanged.
func (e *Engine) SetSequence(s seq.Sequence) error {
	if err := errors.ValidateSequence(s.Bases); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSequence, err, "set sequence")
	}
	e.seq = s
	e.state = Idle
	e.drag = dragState{}
	if e.anchors != nil {
		e.anchors.Reset(s.Len())
	}
	e.commit(Empty())
	return nil
}

// SetSelection replaces the selection from outside the event stream, for
// example when a host jumps to a search hit. Indices are folded into the
// sequence.
func (e *Engine) SetSelection(sel Selection) {
	n := e.seq.Len()
	if e.seq.IsCircular() {
		sel.Start, sel.End = seq.Mod(sel.Start, n), seq.Mod(sel.End, n)
	} else {
		sel.Start, sel.End = clamp(sel.Start, n), clamp(sel.End, n)
	}
	e.commit(sel)
}

// SelectAll selects the whole sequence, anchored at the current start.
func (e *Engine) SelectAll() {
	e.commit(Selection{Start: e.sel.Start, End: e.sel.Start, Clockwise: true, Ref: RefAll})
}

// Copy writes the selected bases to the clipboard.
func (e *Engine) Copy() error {
	if e.clipboard == nil {
		return errors.New(errors.ErrCodeUnsupported, "no clipboard configured")
	}
	if err := e.clipboard.WriteText(e.sel.Sequence); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "copy selection")
	}
	return nil
}

// Pointer feeds a pointer sample to the state machine.
func (e *Engine) Pointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		e.active = ev.Surface
		if ev.Target != nil {
			e.click(ev.Surface, ev.Target)
			return
		}
		e.lastClick = e.now()
		base, ok := e.resolve(ev)
		if !ok {
			return
		}
		if ev.Surface == SurfaceCircular {
			e.circularDown(base, ev.Shift)
		} else {
			e.linearDown(base, ev.Shift)
		}
	case PointerMove:
		if e.state == Idle {
			return
		}
		base, ok := e.resolve(ev)
		if !ok {
			return
		}
		if e.state == DraggingCircular {
			e.circularMove(base)
		} else {
			e.linearMove(base)
		}
	case PointerUp:
		e.state = Idle
	}
}

// resolve maps a pointer position to a base on the surface the engine is
// dragging on, or the event's surface when idle.
func (e *Engine) resolve(ev PointerEvent) (int, bool) {
	surface := ev.Surface
	switch e.state {
	case DraggingCircular:
		surface = SurfaceCircular
	case DraggingLinear:
		surface = SurfaceLinear
	}
	if e.seq.Len() == 0 {
		e.drop(ev.Kind.String(), "empty sequence")
		return 0, false
	}
	if surface == SurfaceCircular {
		if e.circ == nil {
			e.drop(ev.Kind.String(), "no circular projection")
			return 0, false
		}
		base, ok := e.circ.IndexAt(circular.Point{X: ev.X, Y: ev.Y})
		if !ok {
			e.drop(ev.Kind.String(), "pointer at disc center")
		}
		return base, ok
	}
	if e.lin == nil {
		e.drop(ev.Kind.String(), "no linear projection")
		return 0, false
	}
	block, ok := e.lin.Block(ev.Block)
	if !ok {
		e.drop(ev.Kind.String(), "pointer outside blocks")
		return 0, false
	}
	return e.lin.BaseAt(block, ev.X)
}

// commit derives and publishes sel unless it equals the current value.
func (e *Engine) commit(sel Selection) {
	sel = sel.derive(e.seq)
	if sel == e.sel {
		return
	}
	e.sel = sel
	observability.Selection().OnSelectionChange(e.ctx, sel.Start, sel.End, sel.Clockwise, sel.Ref, sel.Length)
	for _, fn := range e.listeners {
		fn(sel)
	}
}

func (e *Engine) drop(event, reason string) {
	observability.Selection().OnEventDropped(e.ctx, event, reason)
	if e.logger != nil {
		e.logger.Debug("selection event dropped", "event", event, "reason", reason)
	}
}

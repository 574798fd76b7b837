package selection

import "github.com/matzehuels/seqmap/pkg/seq"

// State is the engine's interaction state.
type State int

const (
	Idle State = iota
	DraggingLinear
	DraggingCircular
)

func (s State) String() string {
	switch s {
	case DraggingLinear:
		return "dragging-linear"
	case DraggingCircular:
		return "dragging-circular"
	}
	return "idle"
}

// Surface is the view an event arrived on.
type Surface int

const (
	SurfaceLinear Surface = iota
	SurfaceCircular
)

func (s Surface) String() string {
	if s == SurfaceCircular {
		return "circular"
	}
	return "linear"
}

// PointerKind distinguishes pointer-down, move and up.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	}
	return "pointer-down"
}

// PointerEvent is a pointer sample. On the linear surface X is the offset
// within Block; on the circular surface X and Y are viewport coordinates.
// Target is nil when the pointer is over sequence text or the disc rather
// than a drawn feature.
type PointerEvent struct {
	Kind    PointerKind
	Surface Surface
	Block   int
	X, Y    float64
	Shift   bool
	Target  Target
}

// Target is a clickable glyph. The set of implementations is closed.
type Target interface {
	isTarget()
}

// Feature is a drawn named range: an annotation, enzyme site, primer,
// search hit, translation or highlight.
type Feature struct {
	seq.NamedRange
}

// AminoAcid is one codon glyph of a translation. Parent is the
// translation it belongs to.
type AminoAcid struct {
	Codon  seq.Range
	Parent seq.NamedRange
}

func (Feature) isTarget()   {}
func (AminoAcid) isTarget() {}

// Key is an arrow key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// ParseKey maps a key name ("left", "right", "up", "down") to its Key.
func ParseKey(s string) (Key, bool) {
	for k := KeyLeft; k <= KeyDown; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KeyLeft, false
}

// KeyEvent is an arrow key press, optionally shift-modified.
type KeyEvent struct {
	Key   Key
	Shift bool
}

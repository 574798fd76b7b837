package selection

import (
	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// click selects the feature under the pointer and moves the other view's
// anchor to its start.
func (e *Engine) click(surface Surface, target Target) {
	now := e.now()
	prev := e.lastClick
	e.lastClick = now

	var r seq.NamedRange
	switch t := target.(type) {
	case Feature:
		if !selectable(t.Kind) {
			e.drop("feature-click", t.Kind.String()+" is not selectable")
			return
		}
		r = t.NamedRange
	case AminoAcid:
		if !prev.IsZero() && now.Sub(prev) <= DoubleClickWindow {
			r = t.Parent
		} else {
			r = seq.NamedRange{Range: t.Codon, ID: t.Parent.ID, Name: t.Parent.Name, Kind: seq.KindTranslation}
		}
	default:
		e.drop("feature-click", "unknown target")
		return
	}

	// A counter-clockwise arc runs from the feature's end back to its start.
	next := Selection{Start: r.Start, End: r.End, Clockwise: r.Direction != seq.Reverse, Ref: r.ID, Name: r.Name}
	if !next.Clockwise {
		next.Start, next.End = r.End, r.Start
	}
	e.commit(next)
	if e.anchors == nil {
		return
	}
	if surface == SurfaceCircular {
		e.anchors.SetAnchor(anchor.Linear, r.Start)
	} else {
		e.anchors.SetAnchor(anchor.Circular, r.Start)
	}
}

// selectable reports whether clicking a feature of kind k selects it.
// Highlights are passive overlays.
func selectable(k seq.Kind) bool {
	switch k {
	case seq.KindAnnotation, seq.KindEnzyme, seq.KindPrimer, seq.KindTranslation, seq.KindSearch:
		return true
	case seq.KindHighlight:
		return false
	}
	return false
}

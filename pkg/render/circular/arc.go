package circular

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/seqmap/pkg/seq"
)

// FullCircleEpsilon is subtracted from a segment that would otherwise
// close on itself.
const FullCircleEpsilon = 0.1

// NotchScale sizes an arrow notch relative to the line height.
const NotchScale = 0.5

// Op is a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	ArcTo
	ClosePath
)

// Segment is one path command. Radius, LargeArc and Sweep only apply to
// ArcTo.
type Segment struct {
	Op       Op
	To       Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

// Path is an ordered list of commands forming a closed outline.
type Path []Segment

// String renders the path in SVG path-data syntax.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case MoveTo:
			b.WriteString("M " + num(s.To.X) + " " + num(s.To.Y))
		case LineTo:
			b.WriteString("L " + num(s.To.X) + " " + num(s.To.Y))
		case ArcTo:
			r := num(s.Radius)
			b.WriteString("A " + r + " " + r + " 0 " + flag(s.LargeArc) + " " + flag(s.Sweep) + " " + num(s.To.X) + " " + num(s.To.Y))
		case ClosePath:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Arc describes a ring segment. Offset is the index the segment starts at
// and Length its size in bases. SweepForward draws the outer edge
// clockwise. NotchStart and NotchEnd cut arrowheads into the respective
// ends.
type Arc struct {
	InnerRadius  float64
	OuterRadius  float64
	Length       float64
	LargeArc     bool
	Offset       float64
	SweepForward bool
	NotchStart   bool
	NotchEnd     bool
}

// ArcBoundary returns the closed outline of a. Coordinates are unrotated;
// the caller applies RotationOf to the group.
func (p *Projection) ArcBoundary(a Arc) Path {
	start, end := a.Offset, a.Offset+a.Length
	mid := (a.InnerRadius + a.OuterRadius) / 2

	delta := p.notchDepth(mid)
	limit := a.Length
	if a.NotchStart && a.NotchEnd {
		limit /= 2
	}
	if delta > limit {
		delta = limit
	}

	leftIdx, rightIdx := start, end
	if a.NotchStart {
		leftIdx = start + delta
	}
	if a.NotchEnd {
		rightIdx = end - delta
	}

	topLeft := p.CoordinateAt(leftIdx, a.OuterRadius, false)
	topRight := p.CoordinateAt(rightIdx, a.OuterRadius, false)
	bottomRight := p.CoordinateAt(rightIdx, a.InnerRadius, false)
	bottomLeft := p.CoordinateAt(leftIdx, a.InnerRadius, false)

	path := Path{
		{Op: MoveTo, To: topLeft},
		{Op: ArcTo, To: topRight, Radius: a.OuterRadius, LargeArc: a.LargeArc, Sweep: a.SweepForward},
	}
	if a.NotchEnd {
		path = append(path, Segment{Op: LineTo, To: p.CoordinateAt(end, mid, false)})
	}
	path = append(path,
		Segment{Op: LineTo, To: bottomRight},
		Segment{Op: ArcTo, To: bottomLeft, Radius: a.InnerRadius, LargeArc: a.LargeArc, Sweep: !a.SweepForward},
	)
	if a.NotchStart {
		path = append(path, Segment{Op: LineTo, To: p.CoordinateAt(start, mid, false)})
	}
	return append(path, Segment{Op: ClosePath})
}

// notchDepth converts NotchScale line heights at radius r into bases.
func (p *Projection) notchDepth(r float64) float64 {
	if r <= 0 || p.N <= 0 {
		return 0
	}
	return NotchScale * p.LineHeight / (2 * math.Pi * r) * float64(p.N)
}

// Drawable clamps a segment length so it never closes on itself.
func Drawable(length float64, n int) float64 {
	if length >= float64(n) {
		return float64(n) - FullCircleEpsilon
	}
	return length
}

// RangeArc builds the segment for r between the given radii, with an
// arrow on the end r points at.
func (p *Projection) RangeArc(r seq.Range, inner, outer float64) Arc {
	length := Drawable(float64(seq.Extent(r, p.N)), p.N)
	return Arc{
		InnerRadius:  inner,
		OuterRadius:  outer,
		Length:       length,
		LargeArc:     length > float64(p.N)/2,
		Offset:       float64(r.Start),
		SweepForward: true,
		NotchStart:   r.Direction == seq.Reverse,
		NotchEnd:     r.Direction == seq.Forward,
	}
}

// SelectionArc builds the highlight segment for a selection running from
// start for length bases, in the given direction. A counter-clockwise
// selection is drawn forward from its end.
func (p *Projection) SelectionArc(start, end, length int, clockwise bool, inner, outer float64) Arc {
	offset := start
	if !clockwise {
		offset = end
	}
	l := Drawable(float64(length), p.N)
	return Arc{
		InnerRadius:  inner,
		OuterRadius:  outer,
		Length:       l,
		LargeArc:     l > float64(p.N)/2,
		Offset:       float64(offset),
		SweepForward: true,
	}
}

package circular

import (
	"math"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// Point is a position in viewport coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Projection maps sequence indices onto a disc of Radius around Center.
type Projection struct {
	N          int
	Radius     float64
	Center     Point
	LineHeight float64

	anchors *anchor.Store
}

// New returns a projection for a sequence of length n. anchors may be nil,
// in which case the rotation reference is always index 0.
func New(n int, radius float64, center Point, lineHeight float64, anchors *anchor.Store) *Projection {
	return &Projection{N: n, Radius: radius, Center: center, LineHeight: lineHeight, anchors: anchors}
}

func (p *Projection) anchor() float64 {
	if p.anchors == nil {
		return 0
	}
	return float64(p.anchors.Get().Circular)
}

// CoordinateAt returns the point at index on a circle of the given radius.
// When rotate is set the index is first shifted by the circular anchor.
func (p *Projection) CoordinateAt(index, radius float64, rotate bool) Point {
	if p.N <= 0 {
		return p.Center
	}
	if rotate {
		index -= p.anchor()
	}
	angle := (index/float64(p.N) - 0.25) * 2 * math.Pi
	return Point{
		X: p.Center.X + radius*math.Cos(angle),
		Y: p.Center.Y + radius*math.Sin(angle),
	}
}

// RotationOf returns, in degrees, how far index sits clockwise from the
// anchor.
func (p *Projection) RotationOf(index float64) float64 {
	if p.N <= 0 {
		return 0
	}
	return (index - p.anchor()) / float64(p.N) * 360
}

// RotatePoint rotates pt clockwise (on screen) about Center.
func (p *Projection) RotatePoint(pt Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := pt.X-p.Center.X, pt.Y-p.Center.Y
	return Point{
		X: p.Center.X + dx*cos - dy*sin,
		Y: p.Center.Y + dx*sin + dy*cos,
	}
}

// IndexAt resolves the base under pt, accounting for rotation. It reports
// false when no angle can be derived: an empty sequence or a point at the
// exact center.
func (p *Projection) IndexAt(pt Point) (int, bool) {
	dx, dy := pt.X-p.Center.X, pt.Y-p.Center.Y
	if p.N <= 0 || (dx == 0 && dy == 0) {
		return 0, false
	}
	fraction := math.Atan2(dy, dx)/(2*math.Pi) + 0.25
	fraction -= math.Floor(fraction)
	index := int(math.Round(fraction*float64(p.N))) + int(p.anchor())
	return seq.Mod(index, p.N), true
}

// Visible reports whether index falls in the upper half of the rotated
// disc, within a quarter turn of the anchor.
func (p *Projection) Visible(index int) bool {
	if p.N <= 0 {
		return false
	}
	d := seq.Mod(index-int(p.anchor()), p.N)
	if d > p.N/2 {
		d = p.N - d
	}
	return d <= p.N/4
}

// Ring is the radial band one row of features occupies.
type Ring struct {
	Inner, Outer float64
}

// Rings stacks rowCount bands inward from outer, each lineHeight deep
// with a fifth of a line between rows. Rows that would cross the center
// are dropped.
func Rings(rowCount int, outer, lineHeight float64) []Ring {
	rings := make([]Ring, 0, rowCount)
	band := lineHeight * 0.8
	for i := 0; i < rowCount; i++ {
		o := outer - float64(i)*lineHeight
		in := o - band
		if in <= 0 {
			break
		}
		rings = append(rings, Ring{Inner: in, Outer: o})
	}
	return rings
}

// Ticks returns evenly spaced tick indices for a sequence of length n,
// using a 1, 2 or 5 times power-of-ten step and at most 20 ticks.
func Ticks(n int) []int {
	if n <= 0 {
		return nil
	}
	step := tickStep(n)
	ticks := make([]int, 0, n/step+1)
	for i := 0; i < n; i += step {
		ticks = append(ticks, i)
	}
	return ticks
}

func tickStep(n int) int {
	for mag := 1; ; mag *= 10 {
		for _, m := range []int{1, 2, 5} {
			if s := m * mag; (n+s-1)/s <= 20 {
				return s
			}
		}
	}
}

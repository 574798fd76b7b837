package circular

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/seq"
)

const tolerance = 1e-6

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestCoordinateAt(t *testing.T) {
	p := New(100, 50, Point{X: 100, Y: 100}, 10, nil)

	tests := []struct {
		name  string
		index float64
		want  Point
	}{
		{"origin at twelve o'clock", 0, Point{100, 50}},
		{"quarter at three o'clock", 25, Point{150, 100}},
		{"half at six o'clock", 50, Point{100, 150}},
		{"three quarters at nine o'clock", 75, Point{50, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.CoordinateAt(tt.index, 50, false)
			if !near(got, tt.want) {
				t.Errorf("CoordinateAt(%v) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestCoordinateAtRotated(t *testing.T) {
	store := anchor.New(100)
	store.SetAnchor(anchor.Circular, 25)
	p := New(100, 50, Point{X: 100, Y: 100}, 10, store)

	got := p.CoordinateAt(25, 50, true)
	if want := (Point{100, 50}); !near(got, want) {
		t.Errorf("CoordinateAt(anchor) = %v, want %v", got, want)
	}
}

func TestRotationSymmetry(t *testing.T) {
	store := anchor.New(360)
	p := New(360, 80, Point{X: 120, Y: 90}, 10, store)

	for _, a := range []int{0, 17, 180, 359} {
		store.SetAnchor(anchor.Circular, a)
		for i := 0; i < 360; i += 7 {
			// Rotating the unrotated group by the origin's rotation lands on
			// the rotated coordinate.
			grouped := p.RotatePoint(p.CoordinateAt(float64(i), 80, false), p.RotationOf(0))
			direct := p.CoordinateAt(float64(i), 80, true)
			if !near(grouped, direct) {
				t.Fatalf("anchor %d index %d: group rotation %v, direct %v", a, i, grouped, direct)
			}

			// A label drawn at twelve o'clock and rotated by RotationOf(i)
			// reaches index i.
			label := p.RotatePoint(p.CoordinateAt(0, 80, false), p.RotationOf(float64(i)))
			if !near(label, direct) {
				t.Fatalf("anchor %d index %d: label %v, direct %v", a, i, label, direct)
			}
		}
	}
}

func TestIndexAtRoundTrip(t *testing.T) {
	store := anchor.New(1000)
	p := New(1000, 200, Point{X: 250, Y: 250}, 10, store)

	for _, a := range []int{0, 333, 999} {
		store.SetAnchor(anchor.Circular, a)
		for i := 0; i < 1000; i += 37 {
			pt := p.CoordinateAt(float64(i), 120, true)
			got, ok := p.IndexAt(pt)
			if !ok || got != i {
				t.Errorf("anchor %d: IndexAt(CoordinateAt(%d)) = %d, %v", a, i, got, ok)
			}
		}
	}
}

func TestIndexAtUndefined(t *testing.T) {
	p := New(100, 50, Point{X: 10, Y: 10}, 10, nil)
	if _, ok := p.IndexAt(Point{X: 10, Y: 10}); ok {
		t.Error("IndexAt(center) ok = true, want false")
	}

	empty := New(0, 50, Point{}, 10, nil)
	if _, ok := empty.IndexAt(Point{X: 5, Y: 5}); ok {
		t.Error("IndexAt on empty sequence ok = true, want false")
	}
}

func TestVisible(t *testing.T) {
	store := anchor.New(100)
	p := New(100, 50, Point{}, 10, store)
	store.SetAnchor(anchor.Circular, 10)

	tests := []struct {
		index int
		want  bool
	}{
		{10, true},
		{35, true},
		{36, false},
		{85, true},
		{84, false},
		{60, false},
	}
	for _, tt := range tests {
		if got := p.Visible(tt.index); got != tt.want {
			t.Errorf("Visible(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestRings(t *testing.T) {
	rings := Rings(3, 100, 10)
	if len(rings) != 3 {
		t.Fatalf("len(Rings) = %d, want 3", len(rings))
	}
	for i, r := range rings {
		if r.Inner >= r.Outer {
			t.Errorf("ring %d: inner %v >= outer %v", i, r.Inner, r.Outer)
		}
		if i > 0 && r.Outer > rings[i-1].Inner {
			t.Errorf("ring %d overlaps ring %d", i, i-1)
		}
	}

	if got := Rings(50, 30, 10); len(got) != 3 {
		t.Errorf("len(Rings past center) = %d, want 3", len(got))
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		n     int
		step  int
		count int
	}{
		{0, 0, 0},
		{10, 1, 10},
		{21, 2, 11},
		{100, 5, 20},
		{5386, 500, 11},
	}
	for _, tt := range tests {
		got := Ticks(tt.n)
		if len(got) != tt.count {
			t.Errorf("len(Ticks(%d)) = %d, want %d", tt.n, len(got), tt.count)
			continue
		}
		if len(got) > 1 && got[1]-got[0] != tt.step {
			t.Errorf("Ticks(%d) step = %d, want %d", tt.n, got[1]-got[0], tt.step)
		}
	}
}

func TestArcBoundary(t *testing.T) {
	p := New(100, 50, Point{X: 100, Y: 100}, 10, nil)

	path := p.ArcBoundary(Arc{InnerRadius: 40, OuterRadius: 50, Length: 25, SweepForward: true})
	want := "M 100 50 A 50 50 0 0 1 150 100 L 140 100 A 40 40 0 0 0 100 60 Z"
	if got := path.String(); got != want {
		t.Errorf("ArcBoundary() = %q, want %q", got, want)
	}
}

func TestArcBoundaryNotches(t *testing.T) {
	p := New(100, 50, Point{X: 100, Y: 100}, 10, nil)

	tests := []struct {
		name  string
		arc   Arc
		lines int
	}{
		{"plain", Arc{InnerRadius: 40, OuterRadius: 50, Length: 25}, 1},
		{"forward arrow", Arc{InnerRadius: 40, OuterRadius: 50, Length: 25, NotchEnd: true}, 2},
		{"reverse arrow", Arc{InnerRadius: 40, OuterRadius: 50, Length: 25, NotchStart: true}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := p.ArcBoundary(tt.arc)
			lines := 0
			for _, s := range path {
				if s.Op == LineTo {
					lines++
				}
			}
			if lines != tt.lines {
				t.Errorf("LineTo count = %d, want %d", lines, tt.lines)
			}
			if path[len(path)-1].Op != ClosePath {
				t.Error("path is not closed")
			}
		})
	}
}

func TestArcBoundaryNotchTip(t *testing.T) {
	p := New(100, 50, Point{X: 100, Y: 100}, 10, nil)
	path := p.ArcBoundary(Arc{InnerRadius: 40, OuterRadius: 50, Length: 25, NotchEnd: true, SweepForward: true})

	// The arrow tip sits on the mid radius at the true end of the range.
	tip := path[2].To
	if want := p.CoordinateAt(25, 45, false); !near(tip, want) {
		t.Errorf("arrow tip = %v, want %v", tip, want)
	}
	// The outer arc stops short of the tip.
	if near(path[1].To, p.CoordinateAt(25, 50, false)) {
		t.Error("outer arc reaches the tip, want it pulled back by the notch")
	}
}

func TestRangeArcFullWrap(t *testing.T) {
	p := New(100, 50, Point{}, 10, nil)
	arc := p.RangeArc(seq.Range{Start: 30, End: 30}, 40, 50)
	if want := 100 - FullCircleEpsilon; arc.Length != want {
		t.Errorf("Length = %v, want %v", arc.Length, want)
	}
	if !arc.LargeArc {
		t.Error("LargeArc = false, want true")
	}
}

func TestRangeArcCrossing(t *testing.T) {
	p := New(100, 50, Point{}, 10, nil)
	arc := p.RangeArc(seq.Range{Start: 90, End: 10, Direction: seq.Reverse}, 40, 50)
	if arc.Length != 20 || arc.Offset != 90 {
		t.Errorf("RangeArc = offset %v length %v, want 90 and 20", arc.Offset, arc.Length)
	}
	if !arc.NotchStart || arc.NotchEnd {
		t.Errorf("notches = %v/%v, want start only", arc.NotchStart, arc.NotchEnd)
	}
}

func TestSelectionArc(t *testing.T) {
	p := New(100, 50, Point{}, 10, nil)

	cw := p.SelectionArc(10, 30, 20, true, 40, 50)
	if cw.Offset != 10 || cw.Length != 20 {
		t.Errorf("clockwise arc = offset %v length %v, want 10 and 20", cw.Offset, cw.Length)
	}

	ccw := p.SelectionArc(30, 10, 20, false, 40, 50)
	if ccw.Offset != 10 || ccw.Length != 20 {
		t.Errorf("counter-clockwise arc = offset %v length %v, want 10 and 20", ccw.Offset, ccw.Length)
	}

	all := p.SelectionArc(5, 5, 100, true, 40, 50)
	if all.Length != 100-FullCircleEpsilon {
		t.Errorf("full arc length = %v, want %v", all.Length, 100-FullCircleEpsilon)
	}
}

func TestPathString(t *testing.T) {
	p := Path{{Op: MoveTo, To: Point{1.234, 5}}, {Op: ClosePath}}
	if got := p.String(); !strings.HasPrefix(got, "M 1.23 5") {
		t.Errorf("String() = %q", got)
	}
}

package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/render/circular"
)

func (r *svgRenderer) renderCircular(buf *bytes.Buffer, l layout.Layout) {
	c := l.Circle
	w, h := l.Viewport.Width, l.Viewport.Height
	openSVG(buf, w, h)
	defer closeSVG(buf)

	n := l.Len()
	if n == 0 {
		return
	}

	store := anchor.New(n)
	store.SetAnchor(anchor.Circular, r.anchors.Circular)
	center := circular.Point{X: c.CenterX, Y: c.CenterY}
	proj := circular.New(n, c.Radius, center, l.Viewport.LineHeight, store)
	lh := l.Viewport.LineHeight

	fmt.Fprintf(buf, `  <g class="map" transform="rotate(%s %s %s)">`+"\n",
		num(proj.RotationOf(0)), num(c.CenterX), num(c.CenterY))

	fmt.Fprintf(buf, `    <circle class="backbone" cx="%s" cy="%s" r="%s"/>`+"\n",
		num(c.CenterX), num(c.CenterY), num(c.Radius))

	for _, t := range c.Ticks {
		p1 := proj.CoordinateAt(float64(t), c.Radius, false)
		p2 := proj.CoordinateAt(float64(t), c.Radius+lh/2, false)
		label := proj.CoordinateAt(float64(t), c.Radius+lh*1.5, false)
		fmt.Fprintf(buf, `    <line class="tick" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(p1.X), num(p1.Y), num(p2.X), num(p2.Y))
		fmt.Fprintf(buf, `    <text class="tick-label" x="%s" y="%s" text-anchor="middle">%d</text>`+"\n",
			num(label.X), num(label.Y), t+1)
	}

	features := featureIndex(l)
	inner := c.Radius
	for _, ring := range c.Rings {
		inner = ring.Inner
		for _, a := range ring.Arcs {
			f := features[a.ID]
			fmt.Fprintf(buf, `    <path id="arc-%s" class="feature %s" d="%s" fill="%s">`,
				escape(a.ID), f.Kind, a.Path, ColorOf(f))
			writeTitle(buf, f)
			buf.WriteString("</path>\n")
		}
	}

	r.renderCircularSelection(buf, proj, inner)
	buf.WriteString("  </g>\n")

	if l.Name != "" {
		fmt.Fprintf(buf, `  <text class="name" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			num(c.CenterX), num(c.CenterY), escape(l.Name))
	}
}

func (r *svgRenderer) renderCircularSelection(buf *bytes.Buffer, proj *circular.Projection, inner float64) {
	s := r.selection
	if s == nil {
		return
	}
	if s.IsCursor() {
		from := proj.CoordinateAt(float64(s.Start), inner, false)
		to := proj.CoordinateAt(float64(s.Start), proj.Radius, false)
		fmt.Fprintf(buf, `    <line class="cursor" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(from.X), num(from.Y), num(to.X), num(to.Y))
		return
	}
	arc := proj.SelectionArc(s.Start, s.End, s.Length, s.Clockwise, inner, proj.Radius)
	fmt.Fprintf(buf, `    <path class="selection" d="%s"/>`+"\n", proj.ArcBoundary(arc))
}

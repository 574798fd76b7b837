package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// Bases are printed only when each one is at least this wide.
const minBaseTextWidth = 8.0

// BlockHeight returns the height of one linear block: an index line, the
// sequence line and one line per track row.
func BlockHeight(l layout.Layout) float64 {
	return float64(l.RowCount()+2) * l.Viewport.LineHeight
}

func (r *svgRenderer) renderLinear(buf *bytes.Buffer, l layout.Layout) {
	n := l.Len()
	store := anchor.New(n)
	store.SetAnchor(anchor.Linear, r.anchors.Linear)
	lin := linear.New(n, l.Viewport.Width, l.Viewport.CharWidth, store)
	bh := BlockHeight(l)

	first, last := 0, len(l.Blocks)-1
	if r.window {
		first, last = lin.VisibleBlocks(bh, l.Viewport.Height)
	}

	height := float64(max(0, last-first+1)) * bh
	openSVG(buf, l.Viewport.Width, height)
	defer closeSVG(buf)

	rowOffset := trackOffsets(l)
	features := featureIndex(l)
	lh := l.Viewport.LineHeight

	for bi := first; bi <= last; bi++ {
		b := l.Blocks[bi]
		pb := linear.Block{Index: b.Index, FirstBase: b.FirstBase, LastBase: b.LastBase}

		fmt.Fprintf(buf, `  <g class="block" id="block-%d" transform="translate(0 %s)">`+"\n", b.Index, num(float64(bi-first)*bh))
		fmt.Fprintf(buf, `    <text class="index" x="0" y="%s">%d</text>`+"\n", num(lh*0.8), b.FirstBase+1)

		backbone := lin.FindXAndWidth(pb, float64(b.FirstBase), float64(b.LastBase))
		if lin.CharWidth >= minBaseTextWidth {
			fmt.Fprintf(buf, `    <text class="bases" x="0" y="%s" textLength="%s">%s</text>`+"\n",
				num(lh*1.8), num(backbone.Width), l.Bases[b.FirstBase:b.LastBase])
		} else {
			fmt.Fprintf(buf, `    <line class="backbone" x1="0" y1="%s" x2="%s" y2="%s"/>`+"\n",
				num(lh*1.5), num(backbone.Width), num(lh*1.5))
		}

		for _, row := range b.Rows {
			y := float64(2+rowOffset[row.Kind]+row.Row) * lh
			for _, p := range row.Pieces {
				f := features[p.ID]
				fmt.Fprintf(buf, `    <rect class="feature %s" x="%s" y="%s" width="%s" height="%s" fill="%s">`,
					row.Kind, num(p.X), num(y), num(p.Width), num(lh*0.8), ColorOf(f))
				writeTitle(buf, f)
				buf.WriteString("</rect>\n")
			}
		}

		r.renderLinearSelection(buf, lin, pb, bh)
		buf.WriteString("  </g>\n")
	}
}

// trackOffsets returns the first global row of every track.
func trackOffsets(l layout.Layout) map[seq.Kind]int {
	offsets := make(map[seq.Kind]int, len(l.Tracks))
	next := 0
	for _, t := range l.Tracks {
		offsets[t.Kind] = next
		next += len(t.Rows)
	}
	return offsets
}

func (r *svgRenderer) renderLinearSelection(buf *bytes.Buffer, lin *linear.Projection, b linear.Block, bh float64) {
	s := r.selection
	if s == nil {
		return
	}
	if s.IsCursor() {
		if s.Start < b.FirstBase || s.Start > b.LastBase {
			return
		}
		x := float64(s.Start-b.FirstBase) * lin.CharWidth
		fmt.Fprintf(buf, `    <line class="cursor" x1="%s" y1="0" x2="%s" y2="%s"/>`+"\n", num(x), num(x), num(bh))
		return
	}
	for _, g := range lin.ForRange(b, seq.NamedRange{Range: s.Range()}) {
		fmt.Fprintf(buf, `    <rect class="selection" x="%s" y="0" width="%s" height="%s"/>`+"\n",
			num(g.X), num(g.Width), num(bh))
	}
}

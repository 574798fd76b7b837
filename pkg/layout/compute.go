package layout

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/observability"
	"github.com/matzehuels/seqmap/pkg/render/circular"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/rows"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// Fraction of the smaller viewport side used as the circle diameter.
const circleFill = 0.9

// Options configures [Compute].
type Options struct {
	Width        float64
	Height       float64
	ZoomLinear   int
	ZoomCircular int
	LineHeight   float64
	// Kinds limits the tracks laid out. Empty means every kind.
	Kinds []seq.Kind
}

// CharWidth returns the per-base width for the linear zoom level.
func (o Options) CharWidth() float64 { return linear.CharWidth(o.ZoomLinear) }

// Validate checks the viewport and zoom levels.
func (o Options) Validate() error {
	if err := errors.ValidateViewport(o.Width, o.Height, o.CharWidth()); err != nil {
		return err
	}
	if o.LineHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidViewport, "line height must be positive, got %g", o.LineHeight)
	}
	if o.ZoomLinear < 0 || o.ZoomLinear > 100 || o.ZoomCircular < 0 || o.ZoomCircular > 100 {
		return errors.New(errors.ErrCodeInvalidViewport, "zoom must be within 0..100")
	}
	return nil
}

func (o Options) includes(k seq.Kind) bool {
	if len(o.Kinds) == 0 {
		return true
	}
	for _, want := range o.Kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Stacked reports whether features of kind k are stacked into rows. Flat
// kinds share a single row.
func Stacked(k seq.Kind) bool {
	switch k {
	case seq.KindAnnotation, seq.KindPrimer, seq.KindTranslation:
		return true
	}
	return false
}

// labelled kinds contribute names to block labels.
func labelled(k seq.Kind) bool {
	return k == seq.KindAnnotation || k == seq.KindPrimer
}

// =============================================================================
// Compute
// =============================================================================

type track struct {
	kind    seq.Kind
	stacked bool
	rows    rows.RowSet
}

// Compute lays out doc for the given viewport.
func Compute(ctx context.Context, doc io.Document, opts Options) (l Layout, err error) {
	if err := opts.Validate(); err != nil {
		return Layout{}, err
	}

	n := doc.Sequence.Len()
	hooks := observability.Layout()
	start := time.Now()
	hooks.OnLayoutStart(ctx, n)
	defer func() {
		hooks.OnLayoutComplete(ctx, n, len(l.Blocks), time.Since(start), err)
	}()

	var tracks []track
	var named []seq.NamedRange
	for _, k := range seq.Kinds {
		if !opts.includes(k) {
			continue
		}
		ranges := doc.ByKind(k)
		if len(ranges) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Layout{}, err
		}
		tracks = append(tracks, stack(ctx, k, ranges, n))
		if labelled(k) {
			named = append(named, ranges...)
		}
	}

	lin := linear.New(n, opts.Width, opts.CharWidth(), nil)
	l = Layout{
		Name:     doc.Name,
		Bases:    doc.Sequence.Bases,
		Topology: doc.Sequence.Topology.String(),
		Viewport: Viewport{
			Width:       opts.Width,
			Height:      opts.Height,
			CharWidth:   opts.CharWidth(),
			LineHeight:  opts.LineHeight,
			BpsPerBlock: lin.Grid.BpsPerBlock,
		},
		Features: featuresOf(tracks),
	}
	for _, t := range tracks {
		l.Tracks = append(l.Tracks, Track{Kind: t.kind, Stacked: t.stacked, Rows: idsOf(t.rows)})
	}
	l.Blocks = blocks(lin, tracks, named)
	l.Circle = circle(n, opts, tracks)
	return l, nil
}

func stack(ctx context.Context, k seq.Kind, ranges []seq.NamedRange, n int) track {
	hooks := observability.Layout()
	start := time.Now()
	hooks.OnStackStart(ctx, k.String(), len(ranges))

	t := track{kind: k, stacked: Stacked(k)}
	if t.stacked {
		t.rows = rows.Stack(ranges, n)
	} else {
		t.rows = rows.RowSet{rows.Row(ranges)}
	}

	hooks.OnStackComplete(ctx, k.String(), len(t.rows), time.Since(start))
	return t
}

func featuresOf(tracks []track) []seq.NamedRange {
	var out []seq.NamedRange
	for _, t := range tracks {
		for _, row := range t.rows {
			out = append(out, row...)
		}
	}
	return out
}

func idsOf(rs rows.RowSet) [][]string {
	out := make([][]string, len(rs))
	for i, row := range rs {
		ids := make([]string, len(row))
		for j, r := range row {
			ids[j] = r.ID
		}
		out[i] = ids
	}
	return out
}

// =============================================================================
// Linear
// =============================================================================

func blocks(lin *linear.Projection, tracks []track, named []seq.NamedRange) []Block {
	bs := lin.Blocks()
	out := make([]Block, len(bs))
	for i, b := range bs {
		out[i] = Block{Index: b.Index, FirstBase: b.FirstBase, LastBase: b.LastBase}
	}

	for _, t := range tracks {
		var perBlock [][][]rows.Piece
		if t.stacked {
			perBlock = rows.FragmentMulti(t.rows, lin.Grid)
		} else {
			flat := rows.FragmentSingle(t.rows[0], lin.Grid, true)
			perBlock = make([][][]rows.Piece, len(flat))
			for b, pieces := range flat {
				perBlock[b] = [][]rows.Piece{pieces}
			}
		}
		for bi, blockRows := range perBlock {
			for ri, pieces := range blockRows {
				if len(pieces) == 0 {
					continue
				}
				row := BlockRow{Kind: t.kind, Row: ri, Pieces: make([]Piece, len(pieces))}
				for pi, p := range pieces {
					row.Pieces[pi] = Piece{ID: p.ID, Part: p.Part.String(), Geometry: lin.ForPiece(bs[bi], p)}
				}
				out[bi].Rows = append(out[bi].Rows, row)
			}
		}
	}

	for bi, pieces := range rows.FragmentSingle(named, lin.Grid, false) {
		for _, p := range pieces {
			out[bi].Labels = append(out[bi].Labels, p.ID)
		}
	}
	return out
}

// =============================================================================
// Circular
// =============================================================================

func circle(n int, opts Options, tracks []track) Circle {
	radius := math.Min(opts.Width, opts.Height) / 2 * circleFill
	radius *= 1 + float64(opts.ZoomCircular)/100
	c := Circle{
		Radius:  radius,
		CenterX: opts.Width / 2,
		CenterY: opts.Height / 2,
		Ticks:   circular.Ticks(n),
	}
	if n == 0 {
		return c
	}

	proj := circular.New(n, radius, circular.Point{X: c.CenterX, Y: c.CenterY}, opts.LineHeight, nil)
	total := 0
	for _, t := range tracks {
		total += len(t.rows)
	}
	// The outermost line is left for the backbone.
	rings := circular.Rings(total, radius-opts.LineHeight, opts.LineHeight)

	next := 0
	for _, t := range tracks {
		for ri, row := range t.rows {
			if next >= len(rings) {
				return c
			}
			band := rings[next]
			next++
			ring := Ring{Kind: t.kind, Row: ri, Inner: band.Inner, Outer: band.Outer, Arcs: make([]Arc, len(row))}
			for ai, r := range row {
				arc := proj.RangeArc(r.Range, band.Inner, band.Outer)
				ring.Arcs[ai] = Arc{ID: r.ID, Path: proj.ArcBoundary(arc).String()}
			}
			c.Rings = append(c.Rings, ring)
		}
	}
	return c
}

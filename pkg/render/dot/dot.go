package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// Options configures overlap graph generation.
type Options struct {
	// Detailed adds the row, range and strand to node labels.
	// When false, only the feature name is shown.
	Detailed bool
}

// Edge is a pair of features in one track that overlap.
type Edge struct {
	From, To string
}

// Overlaps returns the overlap edges of track t, in row order.
func Overlaps(l layout.Layout, t layout.Track) []Edge {
	if !t.Stacked {
		return nil
	}
	var ids []string
	for _, row := range t.Rows {
		ids = append(ids, row...)
	}

	var edges []Edge
	for i, a := range ids {
		fa, _ := l.Feature(a)
		for _, b := range ids[i+1:] {
			fb, _ := l.Feature(b)
			if seq.Overlaps(fa.Range, fb.Range) {
				edges = append(edges, Edge{From: a, To: b})
			}
		}
	}
	return edges
}

// ToDOT converts the tracks of l to Graphviz DOT source.
func ToDOT(l layout.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, t := range l.Tracks {
		fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+t.Kind.String())
		fmt.Fprintf(&buf, "    label=%q;\n", t.Kind.String())
		for ri, row := range t.Rows {
			for _, id := range row {
				f, _ := l.Feature(id)
				attrs := fmtAttrs(f, fmtLabel(f, ri, opts.Detailed))
				fmt.Fprintf(&buf, "    %q [%s];\n", id, strings.Join(attrs, ", "))
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, t := range l.Tracks {
		for _, e := range Overlaps(l, t) {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(f seq.NamedRange, row int, detailed bool) string {
	name := f.Name
	if name == "" {
		name = f.ID
	}
	if !detailed {
		return name
	}
	strand := "."
	switch f.Direction {
	case seq.Forward:
		strand = "+"
	case seq.Reverse:
		strand = "-"
	}
	return fmt.Sprintf("%s\nrow: %d\n%d..%d (%s)", name, row, f.Start+1, f.End, strand)
}

func fmtAttrs(f seq.NamedRange, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if f.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", f.Color))
	}
	if seq.CrossesOrigin(f.Range) || seq.IsFullWrap(f.Range) {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// whose origin is zero, so the graph scales like the map sinks.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// View selects which projection [RenderSVG] paints.
type View string

const (
	ViewCircular View = "circular"
	ViewLinear   View = "linear"
)

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewCircular, ViewLinear:
		return v, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid view: %q (must be one of: circular, linear)", s)
}

// Default fill per kind, used when a feature carries no color.
var palette = map[seq.Kind]string{
	seq.KindAnnotation:  "#8FDDDF",
	seq.KindEnzyme:      "#C8C8C8",
	seq.KindPrimer:      "#F2D479",
	seq.KindTranslation: "#D7C0F0",
	seq.KindSearch:      "#FBB2B2",
	seq.KindHighlight:   "#FFFB85",
}

const svgCSS = `
    .backbone { fill: none; stroke: #333; stroke-width: 1; }
    .tick { stroke: #333; stroke-width: 1; }
    .tick-label, .index { font: 10px monospace; fill: #333; }
    .bases { font: 12px monospace; fill: #000; }
    .feature { stroke: #555; stroke-width: 0.5; }
    .selection { fill: #DEF6FF; fill-opacity: 0.6; stroke: #00A7E1; stroke-width: 1; }
    .cursor { stroke: #000; stroke-width: 1.5; }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	view      View
	anchors   anchor.Index
	selection *selection.Selection
	window    bool
}

func WithView(v View) SVGOption            { return func(r *svgRenderer) { r.view = v } }
func WithAnchors(i anchor.Index) SVGOption { return func(r *svgRenderer) { r.anchors = i } }
func WithWindow() SVGOption                { return func(r *svgRenderer) { r.window = true } }
func WithSelection(s selection.Selection) SVGOption {
	return func(r *svgRenderer) { r.selection = &s }
}

// RenderSVG paints l. The default view is circular.
func RenderSVG(l layout.Layout, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{view: ViewCircular}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	switch r.view {
	case ViewCircular:
		r.renderCircular(&buf, l)
	case ViewLinear:
		r.renderLinear(&buf, l)
	default:
		_, err := ParseView(string(r.view))
		return nil, err
	}
	return buf.Bytes(), nil
}

func openSVG(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(w), num(h), w, h)
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", svgCSS)
}

func closeSVG(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}

// num rounds to two decimals and drops trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// ColorOf returns the fill of f: its own color, or the default for its kind.
func ColorOf(f seq.NamedRange) string {
	if f.Color != "" {
		return f.Color
	}
	return palette[f.Kind]
}

// featureIndex maps ids to features for painters.
func featureIndex(l layout.Layout) map[string]seq.NamedRange {
	m := make(map[string]seq.NamedRange, len(l.Features))
	for _, f := range l.Features {
		m[f.ID] = f
	}
	return m
}

func writeTitle(buf *bytes.Buffer, f seq.NamedRange) {
	fmt.Fprintf(buf, "<title>%s %d..%d</title>", escape(f.Name), f.Start+1, f.End)
}

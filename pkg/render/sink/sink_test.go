package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

func toyLayout(t *testing.T, opts layout.Options) layout.Layout {
	t.Helper()
	doc := io.Document{
		Name:     "toy <1>",
		Sequence: seq.New(strings.Repeat("ACGT", 25), seq.Circular),
		Features: []seq.NamedRange{
			{Range: seq.Range{Start: 10, End: 30, Direction: seq.Forward}, ID: "a", Name: "a", Kind: seq.KindAnnotation},
			{Range: seq.Range{Start: 90, End: 10, Direction: seq.Reverse}, ID: "c", Name: "c", Kind: seq.KindAnnotation, Color: "#ff0000"},
			{Range: seq.Range{Start: 5, End: 6}, ID: "e1", Name: "EcoRI", Kind: seq.KindEnzyme},
		},
	}
	l, err := layout.Compute(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return l
}

var toyOpts = layout.Options{Width: 100, Height: 100, LineHeight: 10}

func TestRenderJSON(t *testing.T) {
	l := toyLayout(t, toyOpts)
	sel := selection.Selection{Start: 10, End: 20, Clockwise: true, Length: 10}

	data, err := RenderJSON(l, WithJSONAnchors(anchor.Index{Circular: 5, Linear: 60}), WithJSONSelection(sel))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out.Name != "toy <1>" || len(out.Blocks) != 2 {
		t.Errorf("layout = %q with %d blocks, want toy layout with 2 blocks", out.Name, len(out.Blocks))
	}
	if out.Anchors == nil || out.Anchors.Linear != 60 {
		t.Errorf("Anchors = %+v, want linear 60", out.Anchors)
	}
	if out.Selection == nil || out.Selection.Length != 10 {
		t.Errorf("Selection = %+v, want length 10", out.Selection)
	}
}

func TestRenderJSONCompact(t *testing.T) {
	l := toyLayout(t, toyOpts)

	data, err := RenderJSON(l, WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Error("compact output contains newlines")
	}
	if bytes.Contains(data, []byte(`"anchors"`)) || bytes.Contains(data, []byte(`"selection"`)) {
		t.Error("output without options carries anchors or selection")
	}
}

func TestRenderSVGCircular(t *testing.T) {
	l := toyLayout(t, toyOpts)

	tests := []struct {
		name string
		opts []SVGOption
		want []string
		not  []string
	}{
		{
			name: "default",
			want: []string{
				`viewBox="0 0 100 100"`,
				`transform="rotate(0 50 50)"`,
				`<circle class="backbone" cx="50" cy="50" r="45"/>`,
				`id="arc-a" class="feature annotation"`,
				`fill="#ff0000"`,
				`<title>EcoRI 6..6</title>`,
				`toy &lt;1&gt;`,
			},
			not: []string{`class="selection"`, `class="cursor"`},
		},
		{
			name: "rotated",
			opts: []SVGOption{WithAnchors(anchor.Index{Circular: 25})},
			want: []string{`transform="rotate(-90 50 50)"`},
		},
		{
			name: "selection",
			opts: []SVGOption{WithSelection(selection.Selection{Start: 10, End: 40, Clockwise: true, Length: 30})},
			want: []string{`<path class="selection" d="M `},
		},
		{
			name: "cursor",
			opts: []SVGOption{WithSelection(selection.Selection{Start: 10, End: 10, Clockwise: true})},
			want: []string{`<line class="cursor"`},
			not:  []string{`class="selection"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderSVG(l, tt.opts...)
			if err != nil {
				t.Fatalf("RenderSVG() error = %v", err)
			}
			svg := string(data)
			for _, w := range tt.want {
				if !strings.Contains(svg, w) {
					t.Errorf("RenderSVG() missing %q", w)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(svg, n) {
					t.Errorf("RenderSVG() contains %q", n)
				}
			}
			if !strings.HasSuffix(svg, "</svg>\n") {
				t.Error("RenderSVG() output not closed")
			}
		})
	}
}

func TestRenderSVGLinear(t *testing.T) {
	l := toyLayout(t, toyOpts)

	data, err := RenderSVG(l, WithView(ViewLinear), WithSelection(selection.Selection{Start: 95, End: 5, Clockwise: true, Length: 10}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	svg := string(data)

	// Three rows plus two text lines at 10px per line.
	if BlockHeight(l) != 50 {
		t.Errorf("BlockHeight() = %v, want 50", BlockHeight(l))
	}
	for _, w := range []string{
		`viewBox="0 0 100 100"`,
		`id="block-0" transform="translate(0 0)"`,
		`id="block-1" transform="translate(0 50)"`,
		`<line class="backbone"`,
		`<rect class="feature annotation" x="20" y="20" width="40" height="8"`,
		`<rect class="feature enzyme" x="10" y="40" width="2" height="8"`,
		`<rect class="selection" x="0" y="0" width="10" height="50"/>`,
		`<rect class="selection" x="90" y="0" width="10" height="50"/>`,
	} {
		if !strings.Contains(svg, w) {
			t.Errorf("RenderSVG() missing %q", w)
		}
	}
}

func TestRenderSVGLinearBases(t *testing.T) {
	opts := toyOpts
	opts.Width = 140
	opts.ZoomLinear = 100
	l := toyLayout(t, opts)

	data, err := RenderSVG(l, WithView(ViewLinear))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(data), `>ACGTACGTAC</text>`) {
		t.Error("RenderSVG() at full zoom does not print bases")
	}
}

func TestRenderSVGLinearWindow(t *testing.T) {
	opts := toyOpts
	opts.Height = 40
	l := toyLayout(t, opts)

	data, err := RenderSVG(l, WithView(ViewLinear), WithWindow(), WithAnchors(anchor.Index{Linear: 60}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	svg := string(data)
	if strings.Contains(svg, `id="block-0"`) || !strings.Contains(svg, `id="block-1" transform="translate(0 0)"`) {
		t.Errorf("windowed render should show only block 1 at the top:\n%s", svg)
	}
}

func TestRenderSVGInvalidView(t *testing.T) {
	l := toyLayout(t, toyOpts)
	if _, err := RenderSVG(l, WithView("spiral")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderSVG() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"circular", ViewCircular, false},
		{"linear", ViewLinear, false},
		{"", "", true},
		{"Linear", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseView(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("ParseView(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

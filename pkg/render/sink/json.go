package sink

import (
	"encoding/json"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/selection"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	anchors   *anchor.Index
	selection *selection.Selection
	compact   bool
}

// WithJSONAnchors records the central index in the output.
func WithJSONAnchors(i anchor.Index) JSONOption {
	return func(r *jsonRenderer) { r.anchors = &i }
}

// WithJSONSelection records the current selection in the output.
func WithJSONSelection(s selection.Selection) JSONOption {
	return func(r *jsonRenderer) { r.selection = &s }
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	layout.Layout
	Anchors   *anchor.Index        `json:"anchors,omitempty"`
	Selection *selection.Selection `json:"selection,omitempty"`
}

// RenderJSON exports l.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Layout: l, Anchors: r.anchors, Selection: r.selection}
	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

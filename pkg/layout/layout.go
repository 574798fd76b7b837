package layout

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// =============================================================================
// Layout
// =============================================================================

// Layout is the computed arrangement of one document.
type Layout struct {
	Name     string           `json:"name,omitempty"`
	Bases    string           `json:"bases"`
	Topology string           `json:"topology"`
	Viewport Viewport         `json:"viewport"`
	Features []seq.NamedRange `json:"features"`
	Tracks   []Track          `json:"tracks"`
	Blocks   []Block          `json:"blocks"`
	Circle   Circle           `json:"circle"`
}

// Len returns the sequence length.
func (l *Layout) Len() int { return len(l.Bases) }

// Feature looks a feature up by id.
func (l *Layout) Feature(id string) (seq.NamedRange, bool) {
	for _, f := range l.Features {
		if f.ID == id {
			return f, true
		}
	}
	return seq.NamedRange{}, false
}

// RowCount returns the total number of rows across tracks.
func (l *Layout) RowCount() int {
	n := 0
	for _, t := range l.Tracks {
		n += len(t.Rows)
	}
	return n
}

// Viewport records the geometry the layout was computed for.
type Viewport struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	CharWidth   float64 `json:"char_width"`
	LineHeight  float64 `json:"line_height"`
	BpsPerBlock int     `json:"bps_per_block"`
}

// Track is the row assignment of one feature kind. Each row lists
// feature ids in insertion order.
type Track struct {
	Kind    seq.Kind   `json:"kind"`
	Stacked bool       `json:"stacked"`
	Rows    [][]string `json:"rows"`
}

// =============================================================================
// Linear
// =============================================================================

// Block is one line of the linear view.
type Block struct {
	Index     int        `json:"index"`
	FirstBase int        `json:"first_base"`
	LastBase  int        `json:"last_base"`
	Rows      []BlockRow `json:"rows,omitempty"`
	Labels    []string   `json:"labels,omitempty"`
}

// BlockRow is the part of one track row that falls inside a block.
type BlockRow struct {
	Kind   seq.Kind `json:"kind"`
	Row    int      `json:"row"`
	Pieces []Piece  `json:"pieces"`
}

// Piece is a placed fragment of a feature.
type Piece struct {
	ID   string `json:"id"`
	Part string `json:"part"`
	linear.Geometry
}

// =============================================================================
// Circular
// =============================================================================

// Circle is the circular view of the layout.
type Circle struct {
	Radius  float64 `json:"radius"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Rings   []Ring  `json:"rings"`
	Ticks   []int   `json:"ticks"`
}

// Ring is one track row drawn as a band of the disc.
type Ring struct {
	Kind  seq.Kind `json:"kind"`
	Row   int      `json:"row"`
	Inner float64  `json:"inner"`
	Outer float64  `json:"outer"`
	Arcs  []Arc    `json:"arcs"`
}

// Arc is a feature outline in unrotated coordinates.
type Arc struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal serializes l to indented JSON.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal decodes a layout, rejecting one whose blocks do not cover
// its sequence.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if l.Len() > 0 && len(l.Blocks) == 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "layout of %d bases has no blocks", l.Len())
	}
	return l, nil
}

// WriteFile writes l to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return Unmarshal(data)
}

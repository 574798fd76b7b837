// Package pipeline runs the document → layout → artifacts pipeline for
// seqmap.
//
// The CLI and the HTTP server both go through a [Runner] so that caching,
// defaults and validation behave the same everywhere.
//
// # Stages
//
//  1. Layout: stack rows per feature kind, fragment them into blocks and
//     place them with both projections ([layout.Compute])
//  2. Render: write the layout as JSON, SVG, PDF, PNG or an overlap graph
//
// Each stage is cached on its own: a layout under a hash of the document
// and the viewport, an artifact under a hash of the layout, its format and
// the view state painted into it.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Width:   800,
//	    Height:  600,
//	    Formats: []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
//
// [layout.Compute]: github.com/matzehuels/seqmap/pkg/layout.Compute
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/cache"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/render/sink"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultZoomLinear gives 8px per base.
	DefaultZoomLinear = 50

	// DefaultLineHeight is the height of one track row in pixels.
	DefaultLineHeight = 14.0

	// DefaultPNGScale renders PNGs at twice the viewport resolution.
	DefaultPNGScale = 2.0
)

// DefaultView is the default SVG view.
const DefaultView = string(sink.ViewCircular)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	// FormatDOT is the Graphviz source of the overlap graph.
	FormatDOT = "dot"
	// FormatOverlap is the overlap graph rendered to SVG.
	FormatOverlap = "overlap"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:    true,
	FormatSVG:     true,
	FormatPDF:     true,
	FormatPNG:     true,
	FormatDOT:     true,
	FormatOverlap: true,
}

// FileExtension returns the file extension written for format. JSON maps
// get their own suffix so they never replace the input document.
func FileExtension(format string) string {
	switch format {
	case FormatOverlap:
		return "overlap.svg"
	case FormatJSON:
		return "map.json"
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width        float64  `json:"width,omitempty"`
	Height       float64  `json:"height,omitempty"`
	ZoomLinear   int      `json:"zoom_linear,omitempty"`
	ZoomCircular int      `json:"zoom_circular,omitempty"`
	LineHeight   float64  `json:"line_height,omitempty"`
	Kinds        []string `json:"kinds,omitempty"`
	Refresh      bool     `json:"refresh,omitempty"`

	// Render options
	Formats   []string             `json:"formats,omitempty"`
	View      string               `json:"view,omitempty"`
	Window    bool                 `json:"window,omitempty"`
	Detailed  bool                 `json:"detailed,omitempty"`
	Anchors   anchor.Index         `json:"anchors"`
	Selection *selection.Selection `json:"selection,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocumentHash is the content hash of the input document.
	DocumentHash string

	// Layout is the computed layout.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bases      int
	Features   int
	Rows       int
	Blocks     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// StatsOf counts the sizes of l. Timings are left zero.
func StatsOf(l layout.Layout) Stats {
	return Stats{
		Bases:    l.Len(),
		Features: len(l.Features),
		Rows:     l.RowCount(),
		Blocks:   len(l.Blocks),
	}
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: json, svg, pdf, png, dot, overlap)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseKinds converts kind names to kinds.
func ParseKinds(names []string) ([]seq.Kind, error) {
	kinds := make([]seq.Kind, 0, len(names))
	for _, name := range names {
		k, ok := seq.ParseKind(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation. Zoom has
// no default here: zero is the widest valid level.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.LineHeight == 0 {
		o.LineHeight = DefaultLineHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := ParseKinds(o.Kinds); err != nil {
		return err
	}
	return o.LayoutOptions().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	_, err := sink.ParseView(o.View)
	return err
}

// LayoutOptions converts to layout.Options. Unknown kinds are skipped;
// ValidateForLayout reports them.
func (o *Options) LayoutOptions() layout.Options {
	var kinds []seq.Kind
	for _, name := range o.Kinds {
		if k, ok := seq.ParseKind(name); ok {
			kinds = append(kinds, k)
		}
	}
	return layout.Options{
		Width:        o.Width,
		Height:       o.Height,
		ZoomLinear:   o.ZoomLinear,
		ZoomCircular: o.ZoomCircular,
		LineHeight:   o.LineHeight,
		Kinds:        kinds,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	lo := o.LayoutOptions()
	kinds := make([]string, len(lo.Kinds))
	for i, k := range lo.Kinds {
		kinds[i] = k.String()
	}
	return cache.LayoutKeyOpts{
		Width:        lo.Width,
		Height:       lo.Height,
		CharWidth:    lo.CharWidth(),
		ZoomCircular: lo.ZoomCircular,
		LineHeight:   lo.LineHeight,
		Kinds:        kinds,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatDOT, FormatOverlap:
		opts.Detailed = o.Detailed
	case FormatJSON:
		opts.State = o.stateHash(false)
	default:
		opts.View = o.View
		opts.State = o.stateHash(o.Window)
	}
	return opts
}

// stateHash identifies the view state painted into an artifact.
func (o *Options) stateHash(window bool) string {
	data, _ := json.Marshal(struct {
		Anchors   anchor.Index         `json:"anchors"`
		Selection *selection.Selection `json:"selection,omitempty"`
		Window    bool                 `json:"window,omitempty"`
	}{o.Anchors, o.Selection, window})
	return cache.Hash(data)
}

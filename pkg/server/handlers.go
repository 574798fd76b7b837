package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/buildinfo"
	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/hits"
	"github.com/matzehuels/seqmap/pkg/io"
	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/pipeline"
	"github.com/matzehuels/seqmap/pkg/render/linear"
	"github.com/matzehuels/seqmap/pkg/selection"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// =============================================================================
// Requests
// =============================================================================

type documentRequest struct {
	Document json.RawMessage  `json:"document"`
	Options  pipeline.Options `json:"options"`
}

type hitsRequest struct {
	Document json.RawMessage `json:"document"`
	Base     *int            `json:"base,omitempty"`
	Range    *seq.Range      `json:"range,omitempty"`
}

type keyPress struct {
	Key   string `json:"key"`
	Shift bool   `json:"shift,omitempty"`
}

type selectionRequest struct {
	Document  json.RawMessage      `json:"document"`
	Options   pipeline.Options     `json:"options"`
	Selection *selection.Selection `json:"selection,omitempty"`
	SelectAll bool                 `json:"select_all,omitempty"`
	Keys      []keyPress           `json:"keys,omitempty"`
}

// decode reads a JSON body into v and parses its document.
func decode(w http.ResponseWriter, r *http.Request, v any, raw func() json.RawMessage) (*io.Document, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request")
	}
	doc := raw()
	if len(doc) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	return io.ReadJSON(bytes.NewReader(doc))
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

type layoutResponse struct {
	DocumentHash string        `json:"document_hash"`
	Cached       bool          `json:"cached"`
	Layout       layout.Layout `json:"layout"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	doc, err := decode(w, r, &req, func() json.RawMessage { return req.Document })
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), doc, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	hash, err := pipeline.DocumentHash(doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{DocumentHash: hash, Cached: hit, Layout: l})
}

var contentTypes = map[string]string{
	pipeline.FormatJSON:    "application/json",
	pipeline.FormatSVG:     "image/svg+xml",
	pipeline.FormatPDF:     "application/pdf",
	pipeline.FormatPNG:     "image/png",
	pipeline.FormatDOT:     "text/vnd.graphviz",
	pipeline.FormatOverlap: "image/svg+xml",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req documentRequest
	doc, err := decode(w, r, &req, func() json.RawMessage { return req.Document })
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := req.Options
	opts.Formats = []string{format}
	result, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheState := "miss"
	if result.CacheInfo.RenderHit {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheState)
	w.Header().Set("X-Document-Hash", result.DocumentHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

type hitsResponse struct {
	Features []seq.NamedRange `json:"features"`
}

func (s *Server) handleHits(w http.ResponseWriter, r *http.Request) {
	var req hitsRequest
	doc, err := decode(w, r, &req, func() json.RawMessage { return req.Document })
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if (req.Base == nil) == (req.Range == nil) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "exactly one of base or range is required"))
		return
	}

	n := doc.Sequence.Len()
	idx, err := hits.New(doc.Features, n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var found []seq.NamedRange
	if req.Base != nil {
		found = idx.At(*req.Base)
	} else {
		if err := errors.ValidateRange(req.Range.Start, req.Range.End, n); err != nil {
			s.writeError(w, r, err)
			return
		}
		found = idx.Overlapping(*req.Range)
	}
	if found == nil {
		found = []seq.NamedRange{}
	}
	writeJSON(w, http.StatusOK, hitsResponse{Features: found})
}

type selectionResponse struct {
	Selection selection.Selection `json:"selection"`
	Anchors   anchor.Index        `json:"anchors"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	doc, err := decode(w, r, &req, func() json.RawMessage { return req.Document })
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	keys := make([]selection.KeyEvent, len(req.Keys))
	for i, k := range req.Keys {
		key, ok := selection.ParseKey(k.Key)
		if !ok {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid key: %q", k.Key))
			return
		}
		keys[i] = selection.KeyEvent{Key: key, Shift: k.Shift}
	}

	opts := req.Options
	if err := opts.ValidateForLayout(); err != nil {
		s.writeError(w, r, err)
		return
	}

	n := doc.Sequence.Len()
	anchors := anchor.New(n)
	engine := selection.New(doc.Sequence, anchors,
		selection.WithContext(r.Context()),
		selection.WithLogger(s.logger))
	engine.SetProjections(nil, linear.New(n, opts.Width, opts.LayoutOptions().CharWidth(), anchors))

	if req.Selection != nil {
		engine.SetSelection(*req.Selection)
	}
	if req.SelectAll {
		engine.SelectAll()
	}
	for _, k := range keys {
		engine.Key(k)
	}
	writeJSON(w, http.StatusOK, selectionResponse{Selection: engine.Selection(), Anchors: anchors.Get()})
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/seqmap/pkg/layout"
	"github.com/matzehuels/seqmap/pkg/render"
	"github.com/matzehuels/seqmap/pkg/render/dot"
	"github.com/matzehuels/seqmap/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. opts must
// have passed ValidateForRender.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	mapSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = sink.RenderSVG(l, svgOptions(opts)...)
		return svg, err
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(l, jsonOptions(opts)...)
		case FormatSVG:
			data, err = mapSVG()
		case FormatPDF:
			if data, err = mapSVG(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatPNG:
			if data, err = mapSVG(); err == nil {
				data, err = render.ToPNG(ctx, data, DefaultPNGScale)
			}
		case FormatDOT:
			data = []byte(dot.ToDOT(l, dot.Options{Detailed: opts.Detailed}))
		case FormatOverlap:
			data, err = dot.RenderSVG(ctx, dot.ToDOT(l, dot.Options{Detailed: opts.Detailed}))
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithView(sink.View(opts.View)),
		sink.WithAnchors(opts.Anchors),
	}
	if opts.Selection != nil {
		svgOpts = append(svgOpts, sink.WithSelection(*opts.Selection))
	}
	if opts.Window {
		svgOpts = append(svgOpts, sink.WithWindow())
	}
	return svgOpts
}

func jsonOptions(opts Options) []sink.JSONOption {
	jsonOpts := []sink.JSONOption{sink.WithJSONAnchors(opts.Anchors)}
	if opts.Selection != nil {
		jsonOpts = append(jsonOpts, sink.WithJSONSelection(*opts.Selection))
	}
	return jsonOpts
}

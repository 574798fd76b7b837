// Package render holds the projections and painters of the sequence map.
//
// # Projections
//
//   - [circular]: index to angle, ring radii, arc outlines
//   - [linear]: blocks, per-block x and width, pointer to base
//
// Both are pure: they read the central index from an [anchor.Store] but
// never write it.
//
// # Output
//
// The [sink] subpackage writes JSON and SVG, and [dot] exports the row
// stacking as a Graphviz overlap graph. [ToPDF] and [ToPNG] convert any
// SVG with the external rsvg-convert tool:
//
//	svg, _ := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [circular]: github.com/matzehuels/seqmap/pkg/render/circular
// [linear]: github.com/matzehuels/seqmap/pkg/render/linear
// [sink]: github.com/matzehuels/seqmap/pkg/render/sink
// [dot]: github.com/matzehuels/seqmap/pkg/render/dot
// [anchor.Store]: github.com/matzehuels/seqmap/pkg/anchor.Store
package render

// Package sink writes a computed [layout.Layout] in an output format.
//
// # JSON
//
// [RenderJSON] exports the layout, optionally with the current anchors
// and selection so a host can restore the view.
//
// # SVG
//
// [RenderSVG] paints one view of the layout:
//
//	svg, err := sink.RenderSVG(l,
//	    sink.WithView(sink.ViewCircular),
//	    sink.WithAnchors(store.Get()),
//	    sink.WithSelection(engine.Selection()),
//	)
//
// The circular view draws every ring arc in unrotated coordinates inside
// one group rotated by the circular anchor, so labels and arcs never need
// recomputing when the map spins. The linear view stacks one band per
// block; [WithWindow] limits it to the blocks visible from the linear
// anchor.
//
// SVG output is a reference painter for exports and tests. PDF and PNG
// are produced from it with [render.ToPDF] and [render.ToPNG].
//
// [layout.Layout]: github.com/matzehuels/seqmap/pkg/layout.Layout
// [render.ToPDF]: github.com/matzehuels/seqmap/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/seqmap/pkg/render.ToPNG
package sink

// Package dot exports the row stacking of a layout as a Graphviz graph.
//
// Every feature of a stacked track becomes a node inside a cluster for its
// kind, and every pair of features in the same track that share a base is
// joined by an edge. Those edges are exactly the conflicts that forced the
// stacker to open a new row, which makes the graph a debugging view for
// crowded maps.
//
//	src := dot.ToDOT(l, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Flat tracks (enzymes, search hits, highlights) are listed as nodes but
// carry no edges since they never stack.
package dot

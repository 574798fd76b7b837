// Package pkg provides the core libraries for seqmap, a circular and linear
// sequence map with a shared selection model.
//
// # Overview
//
// seqmap takes an annotated DNA, RNA or protein sequence and lays it out
// twice: as a plasmid disc with features drawn as arcs, and as a linear
// viewer that wraps the bases into blocks. Both views share one anchor index
// and one selection, so scrolling or selecting in one view is reflected in
// the other. The pkg directory is organized into four areas:
//
//  1. Domain logic: [seq], [rows], [anchor], [render], [selection], [hits]
//  2. Serialization: [io] for input documents, [layout] for computed maps
//  3. Orchestration: [pipeline] (document → layout → artifacts)
//  4. Infrastructure: [cache], [config], [server], [errors],
//     [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through seqmap:
//
//	Sequence document (JSON)
//	         ↓
//	    [io] package (parse + validate)
//	         ↓
//	    [rows] package (stack overlapping features into rows)
//	         ↓
//	    [layout] package (fragment rows into blocks, place arcs)
//	         ↓
//	    [render/sink] package (SVG/JSON, then PDF/PNG via [render])
//
// # Quick Start
//
// Load a document and render the linear view:
//
//	import (
//	    "github.com/matzehuels/seqmap/pkg/cache"
//	    "github.com/matzehuels/seqmap/pkg/io"
//	    "github.com/matzehuels/seqmap/pkg/pipeline"
//	)
//
//	doc, _ := io.ImportJSON("puc19.json")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    View:    "linear",
//	})
//
// # Main Packages
//
// [seq] - Ranges, named features and sequences. Ranges are half-open and
// may wrap the origin of a circular sequence.
//
// [rows] - Row stacking of overlapping ranges and their fragmentation over
// the blocks of the linear viewer.
//
// [anchor] - The central index each view scrolls to. Views publish anchor
// changes and subscribe to each other's.
//
// [render/circular] and [render/linear] - The two projections: angles and
// radii of the disc, blocks and pixel offsets of the linear viewer.
//
// [selection] - The selection state machine. Pointer drags, feature clicks
// and keyboard steps all fold into one [selection.Selection].
//
// [hits] - Interval lookup from a base to the features covering it.
//
// [render/sink] - Output writers for a computed layout (SVG, JSON).
// [render/dot] exports the overlap graph of the row stacking via Graphviz.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/selection/...    # Specific package
//
// [seq]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/seq
// [rows]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/rows
// [anchor]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/anchor
// [render]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/render
// [render/circular]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/render/circular
// [render/linear]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/render/linear
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/render/sink
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/render/dot
// [selection]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/selection
// [selection.Selection]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/selection#Selection
// [hits]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/hits
// [io]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/io
// [layout]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/seqmap/pkg/buildinfo
package pkg

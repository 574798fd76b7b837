// Package layout computes and serializes the drawable arrangement of a
// sequence document.
//
// [Compute] runs the row stacker per feature kind, fragments the rows into
// linear blocks, places every piece with the linear projection and builds
// ring arcs with the circular projection. The resulting [Layout] is a
// plain value: it is what the JSON sink writes, what the cache stores and
// what the SVG sink paints.
//
// # Tracks
//
// Annotations, primers and translations are stacked into rows so that
// overlapping features never collide. Enzyme sites, search hits and
// highlights are flat: each kind occupies a single row and may overlap
// itself.
//
// # Serialization
//
// Layouts use JSON:
//
//	data, err := layout.Marshal(l)
//	l, err := layout.Unmarshal(data)
package layout

package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/seqmap/pkg/errors"
)

// WriteJSON encodes d in the format [ReadJSON] accepts.
func WriteJSON(d *Document, w io.Writer) error {
	out := document{
		Name:     d.Name,
		Seq:      d.Sequence.Bases,
		Topology: d.Sequence.Topology.String(),
	}
	groups := out.groups()
	for _, f := range d.Features {
		for _, g := range groups {
			if g.kind == f.Kind {
				*g.ranges = append(*g.ranges, f)
				break
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// ExportJSON writes d to a JSON file at path.
func ExportJSON(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

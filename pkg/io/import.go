package io

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// ReadJSON decodes a document from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The topology is neither "circular" nor "linear"
//   - The sequence contains characters outside the nucleotide and protein
//     alphabets
//   - Features are given for an empty sequence
//   - Two features share an id
//
// Features without an id receive a random UUID. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}

	topology, ok := seq.ParseTopology(data.Topology)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown topology %q", data.Topology)
	}
	bases := strings.Join(strings.Fields(data.Seq), "")
	if err := errors.ValidateSequence(bases); err != nil {
		return nil, err
	}

	doc := &Document{Name: data.Name, Sequence: seq.New(bases, topology)}
	n := doc.Sequence.Len()
	seen := make(map[string]bool)
	for _, g := range data.groups() {
		for _, f := range *g.ranges {
			if n == 0 {
				return nil, errors.New(errors.ErrCodeInvalidRange, "%s %q on an empty sequence", g.kind, f.Name)
			}
			f.Kind = g.kind
			f.Range = seq.Normalize(f.Range, n)
			if f.ID == "" {
				f.ID = uuid.NewString()
			}
			if seen[f.ID] {
				return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate feature id %q", f.ID)
			}
			seen[f.ID] = true
			doc.Features = append(doc.Features, f)
		}
	}
	return doc, nil
}

// ImportJSON reads a document from the file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

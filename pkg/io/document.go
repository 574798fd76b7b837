package io

import "github.com/matzehuels/seqmap/pkg/seq"

// Document is a sequence with its features.
type Document struct {
	Name     string
	Sequence seq.Sequence
	Features []seq.NamedRange
}

// ByKind returns the features of kind k in document order.
func (d *Document) ByKind(k seq.Kind) []seq.NamedRange {
	var out []seq.NamedRange
	for _, f := range d.Features {
		if f.Kind == k {
			out = append(out, f)
		}
	}
	return out
}

// Feature looks a feature up by id.
func (d *Document) Feature(id string) (seq.NamedRange, bool) {
	for _, f := range d.Features {
		if f.ID == id {
			return f, true
		}
	}
	return seq.NamedRange{}, false
}

type document struct {
	Name         string           `json:"name,omitempty"`
	Seq          string           `json:"seq"`
	Topology     string           `json:"topology,omitempty"`
	Annotations  []seq.NamedRange `json:"annotations,omitempty"`
	Primers      []seq.NamedRange `json:"primers,omitempty"`
	Enzymes      []seq.NamedRange `json:"enzymes,omitempty"`
	Searches     []seq.NamedRange `json:"searches,omitempty"`
	Translations []seq.NamedRange `json:"translations,omitempty"`
	Highlights   []seq.NamedRange `json:"highlights,omitempty"`
}

// groups pairs every feature array with the kind it holds.
func (d *document) groups() []struct {
	kind   seq.Kind
	ranges *[]seq.NamedRange
} {
	return []struct {
		kind   seq.Kind
		ranges *[]seq.NamedRange
	}{
		{seq.KindAnnotation, &d.Annotations},
		{seq.KindPrimer, &d.Primers},
		{seq.KindEnzyme, &d.Enzymes},
		{seq.KindSearch, &d.Searches},
		{seq.KindTranslation, &d.Translations},
		{seq.KindHighlight, &d.Highlights},
	}
}

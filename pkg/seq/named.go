package seq

import (
	"fmt"
	"strings"
)

// Kind is the closed set of feature kinds a sequence map displays.
type Kind int

const (
	KindAnnotation Kind = iota
	KindEnzyme
	KindPrimer
	KindTranslation
	KindSearch
	KindHighlight
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{KindAnnotation, KindEnzyme, KindPrimer, KindTranslation, KindSearch, KindHighlight}

var kindNames = [...]string{
	KindAnnotation:  "annotation",
	KindEnzyme:      "enzyme",
	KindPrimer:      "primer",
	KindTranslation: "translation",
	KindSearch:      "search",
	KindHighlight:   "highlight",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindAnnotation, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown feature kind %q", b)
	}
	*k = parsed
	return nil
}

// NamedRange is a Range carrying identity and display data. Identity is
// by ID.
type NamedRange struct {
	Range
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Kind  Kind   `json:"kind"`
}

// String renders the range with its id, e.g. "ampR[100,900)".
func (n NamedRange) String() string {
	return n.Name + n.Range.String()
}

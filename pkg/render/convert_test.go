package render

import (
	"context"
	"testing"

	"github.com/matzehuels/seqmap/pkg/errors"
)

func TestConvertMissingBinary(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "seqmap-no-such-converter"
	defer func() { rsvgBinary = old }()

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	if _, err := ToPDF(context.Background(), svg); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
	if _, err := ToPNG(context.Background(), svg, 2); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNGScale(t *testing.T) {
	if _, err := ToPNG(context.Background(), nil, 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToPNG(scale 0) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

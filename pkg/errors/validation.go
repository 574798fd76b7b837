package errors

import (
	"strings"
)

// Alphabets accepted by ValidateSequence. IUPAC ambiguity codes are
// allowed for nucleotides; '*' marks a stop in protein sequences.
const (
	dnaAlphabet     = "ACGTURYKMSWBDHVN"
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWYBZXUO*"
)

// maxSequenceLength bounds a single document. Larger inputs are almost
// always whole genomes, which a plasmid map cannot usefully draw.
const maxSequenceLength = 10_000_000

// ValidateSequence checks that bases is a nucleotide or protein sequence.
// Whitespace and case are ignored. An empty sequence is valid.
func ValidateSequence(bases string) error {
	if len(bases) > maxSequenceLength {
		return New(ErrCodeInvalidSequence, "sequence too long (%d bases, max %d)", len(bases), maxSequenceLength)
	}
	upper := strings.ToUpper(bases)
	for i, r := range upper {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if !strings.ContainsRune(dnaAlphabet, r) && !strings.ContainsRune(proteinAlphabet, r) {
			return New(ErrCodeInvalidSequence, "invalid character %q at position %d", r, i)
		}
	}
	return nil
}

// ValidateRange checks that start and end are indices of a sequence of
// length n. The layout engine itself assumes normalized ranges; this is
// for collaborators that want to reject instead of normalizing.
func ValidateRange(start, end, n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidRange, "range [%d,%d) on an empty sequence", start, end)
	}
	if start < 0 || start >= n {
		return New(ErrCodeInvalidRange, "start %d outside [0,%d)", start, n)
	}
	if end < 0 || end >= n {
		return New(ErrCodeInvalidRange, "end %d outside [0,%d)", end, n)
	}
	return nil
}

// ValidateViewport checks the geometry a sizing collaborator supplies.
func ValidateViewport(width, height, charWidth float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidViewport, "viewport must be positive, got %.1fx%.1f", width, height)
	}
	if charWidth <= 0 {
		return New(ErrCodeInvalidViewport, "char width must be positive, got %.2f", charWidth)
	}
	if charWidth > width {
		return New(ErrCodeInvalidViewport, "char width %.2f exceeds viewport width %.1f", charWidth, width)
	}
	return nil
}

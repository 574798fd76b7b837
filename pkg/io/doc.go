// Package io reads and writes sequence documents as JSON.
//
// # JSON Format
//
// A document carries one sequence and its features, grouped by kind:
//
//	{
//	  "name": "pUC19",
//	  "seq": "TCGCGCGTTTCGGTGATGACGG...",
//	  "topology": "circular",
//	  "annotations": [
//	    {"id": "ampR", "name": "AmpR", "start": 1166, "end": 1885, "direction": 1}
//	  ],
//	  "primers": [],
//	  "enzymes": [],
//	  "searches": [],
//	  "translations": [],
//	  "highlights": []
//	}
//
// Every feature array holds ranges with these fields:
//
//   - start, end: half-open bounds; start == end covers the whole sequence
//   - direction: 1 forward, -1 reverse, 0 none
//   - id: unique identifier (generated when missing)
//   - name: display label
//   - color: optional CSS color
//
// The array a feature appears in decides its kind; a "kind" field inside
// the feature is overridden on import.
//
// # Normalization
//
// The layout engine assumes every range lies in [0, N). [ReadJSON] folds
// start and end modulo N, so producers may emit negative or overlong
// indices for features that wrap. Whitespace in "seq" is stripped and the
// bases are upper-cased.
//
// # Round Trip
//
// [WriteJSON] emits the same format, so a document can be imported,
// normalized and exported again without loss.
package io

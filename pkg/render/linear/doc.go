// Package linear implements the block geometry of the linear viewer.
//
// The sequence is cut into blocks of BpsPerBlock bases, one per text line.
// Each block is rendered from the pieces [rows.FragmentMulti] assigned to
// it; this package turns a piece into a horizontal offset and width and
// says whether the piece continues past either edge of the block.
package linear

package linear

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/rows"
	"github.com/matzehuels/seqmap/pkg/seq"
)

func TestCharWidth(t *testing.T) {
	tests := []struct {
		zoom int
		want float64
	}{
		{-5, MinCharWidth},
		{0, MinCharWidth},
		{50, 8},
		{100, MaxCharWidth},
		{200, MaxCharWidth},
	}
	for _, tt := range tests {
		if got := CharWidth(tt.zoom); got != tt.want {
			t.Errorf("CharWidth(%d) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestBpsPerBlock(t *testing.T) {
	tests := []struct {
		width, char float64
		want        int
	}{
		{800, 8, 100},
		{805, 8, 100},
		{5, 8, 1},
		{800, 0, 1},
	}
	for _, tt := range tests {
		if got := BpsPerBlock(tt.width, tt.char); got != tt.want {
			t.Errorf("BpsPerBlock(%v, %v) = %d, want %d", tt.width, tt.char, got, tt.want)
		}
	}
}

func TestBlocks(t *testing.T) {
	p := New(3744, 750, 2, nil)
	blocks := p.Blocks()
	if len(blocks) != 10 {
		t.Fatalf("len(Blocks()) = %d, want 10", len(blocks))
	}
	if want := (Block{Index: 9, FirstBase: 3375, LastBase: 3744}); blocks[9] != want {
		t.Errorf("Blocks()[9] = %+v, want %+v", blocks[9], want)
	}
	if blocks[9].Len() != 369 {
		t.Errorf("final block Len() = %d, want 369", blocks[9].Len())
	}
	if _, ok := p.Block(10); ok {
		t.Error("Block(10) ok = true, want false")
	}
}

func TestFindXAndWidth(t *testing.T) {
	p := New(1000, 800, 8, nil)
	block0, _ := p.Block(0)
	block2, _ := p.Block(2)

	tests := []struct {
		name        string
		block       Block
		first, last float64
		want        Geometry
	}{
		{"degenerate cursor", block0, 0, 0, Geometry{}},
		{"inside block", block2, 250, 280, Geometry{X: 400, Width: 240}},
		{"starts before block", block2, 150, 250, Geometry{X: 0, Width: 400}},
		{"ends after block", block2, 250, 400, Geometry{X: 400, Width: 400}},
		{"fractional indices truncate", block0, 10.7, 20.2, Geometry{X: 80, Width: 80}},
		{"no overlap clamps width", block2, 400, 500, Geometry{X: 1600, Width: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.FindXAndWidth(tt.block, tt.first, tt.last); got != tt.want {
				t.Errorf("FindXAndWidth(%v, %v) = %+v, want %+v", tt.first, tt.last, got, tt.want)
			}
		})
	}
}

func TestForPiece(t *testing.T) {
	p := New(1000, 800, 8, nil)
	block := func(i int) Block {
		b, _ := p.Block(i)
		return b
	}
	named := func(start, end int) seq.NamedRange {
		return seq.NamedRange{Range: seq.Range{Start: start, End: end}, ID: "f"}
	}

	crossing := rows.Split(named(900, 50), 1000)
	whole := rows.Split(named(150, 350), 1000)
	full := rows.Split(named(0, 0), 1000)

	tests := []struct {
		name  string
		block Block
		piece rows.Piece
		want  Geometry
	}{
		{"tail of crossing range", block(0), crossing[0], Geometry{X: 0, Width: 400, OverflowLeft: true}},
		{"head of crossing range", block(9), crossing[1], Geometry{X: 0, Width: 800, OverflowRight: true}},
		{"middle of long range", block(2), whole[0], Geometry{X: 0, Width: 800, OverflowLeft: true, OverflowRight: true}},
		{"start of long range", block(1), whole[0], Geometry{X: 400, Width: 400, OverflowRight: true}},
		{"full wrap from origin, first block", block(0), full[0], Geometry{X: 0, Width: 800, OverflowRight: true}},
		{"full wrap from origin, last block", block(9), full[0], Geometry{X: 0, Width: 800, OverflowLeft: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ForPiece(tt.block, tt.piece); got != tt.want {
				t.Errorf("ForPiece() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestForRangeFullWrap(t *testing.T) {
	p := New(1000, 800, 8, nil)
	r := seq.NamedRange{Range: seq.Range{Start: 250, End: 250}, ID: "all"}

	start, _ := p.Block(2)
	want := []Geometry{
		{X: 0, Width: 400, OverflowLeft: true},
		{X: 400, Width: 400, OverflowRight: true},
	}
	if diff := cmp.Diff(want, p.ForRange(start, r)); diff != "" {
		t.Errorf("ForRange(start block) mismatch (-want +got):\n%s", diff)
	}

	other, _ := p.Block(5)
	want = []Geometry{{X: 0, Width: 800, OverflowLeft: true, OverflowRight: true}}
	if diff := cmp.Diff(want, p.ForRange(other, r)); diff != "" {
		t.Errorf("ForRange(other block) mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseAt(t *testing.T) {
	p := New(1000, 800, 8, nil)
	b, _ := p.Block(2)

	tests := []struct {
		x    float64
		want int
	}{
		{0, 200},
		{83, 210},
		{-50, 200},
		{5000, 300},
	}
	for _, tt := range tests {
		got, ok := p.BaseAt(b, tt.x)
		if !ok || got != tt.want {
			t.Errorf("BaseAt(%v) = %d, %v, want %d", tt.x, got, ok, tt.want)
		}
	}

	empty := New(0, 800, 8, nil)
	if _, ok := empty.BaseAt(Block{}, 10); ok {
		t.Error("BaseAt on empty projection ok = true, want false")
	}
}

func TestVisibleBlocks(t *testing.T) {
	store := anchor.New(1000)
	p := New(1000, 800, 8, store)

	tests := []struct {
		anchor      int
		first, last int
	}{
		{0, 0, 3},
		{420, 4, 7},
		{950, 6, 9},
	}
	for _, tt := range tests {
		store.SetAnchor(anchor.Linear, tt.anchor)
		first, last := p.VisibleBlocks(50, 175)
		if first != tt.first || last != tt.last {
			t.Errorf("anchor %d: VisibleBlocks() = (%d, %d), want (%d, %d)", tt.anchor, first, last, tt.first, tt.last)
		}
	}

	empty := New(0, 800, 8, nil)
	if first, last := empty.VisibleBlocks(50, 175); first != 0 || last != -1 {
		t.Errorf("VisibleBlocks on empty = (%d, %d), want (0, -1)", first, last)
	}
}

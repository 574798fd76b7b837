package linear

import (
	"math"

	"github.com/matzehuels/seqmap/pkg/anchor"
	"github.com/matzehuels/seqmap/pkg/rows"
	"github.com/matzehuels/seqmap/pkg/seq"
)

const (
	// MinCharWidth is the width of one base at zoom 0.
	MinCharWidth = 2.0
	// MaxCharWidth is the width of one base at zoom 100.
	MaxCharWidth = 14.0
)

// CharWidth maps a zoom level in [0, 100] to the pixel width of a base.
func CharWidth(zoom int) float64 {
	z := math.Max(0, math.Min(100, float64(zoom)))
	return MinCharWidth + (MaxCharWidth-MinCharWidth)*z/100
}

// BpsPerBlock returns how many bases fit on one line of the viewport.
func BpsPerBlock(viewportWidth, charWidth float64) int {
	if charWidth <= 0 {
		return 1
	}
	return max(1, int(math.Floor(viewportWidth/charWidth)))
}

// Block is one line of the linear view covering [FirstBase, LastBase).
type Block struct {
	Index     int
	FirstBase int
	LastBase  int
}

// Len returns the number of bases in the block.
func (b Block) Len() int { return b.LastBase - b.FirstBase }

// Geometry is the horizontal placement of a piece within a block.
type Geometry struct {
	X             float64 `json:"x"`
	Width         float64 `json:"width"`
	OverflowLeft  bool    `json:"overflowLeft"`
	OverflowRight bool    `json:"overflowRight"`
}

// Projection lays a sequence out as rows of blocks.
type Projection struct {
	Grid          rows.Grid
	ViewportWidth float64
	CharWidth     float64

	anchors *anchor.Store
}

// New returns a projection whose block width is derived from the
// viewport. anchors may be nil.
func New(n int, viewportWidth, charWidth float64, anchors *anchor.Store) *Projection {
	return &Projection{
		Grid:          rows.NewGrid(n, BpsPerBlock(viewportWidth, charWidth)),
		ViewportWidth: viewportWidth,
		CharWidth:     charWidth,
		anchors:       anchors,
	}
}

// Blocks returns every block in order.
func (p *Projection) Blocks() []Block {
	count := p.Grid.BlockCount()
	blocks := make([]Block, count)
	for i := range blocks {
		blocks[i], _ = p.Block(i)
	}
	return blocks
}

// Block returns block i, or false when i is outside the grid.
func (p *Projection) Block(i int) (Block, bool) {
	if i < 0 || i >= p.Grid.BlockCount() {
		return Block{}, false
	}
	first := i * p.Grid.BpsPerBlock
	return Block{Index: i, FirstBase: first, LastBase: min(first+p.Grid.BpsPerBlock, p.Grid.N)}, true
}

// FindXAndWidth places [first, last) inside block b. Both indices are
// truncated to whole bases. The width covers only the part overlapping
// the block and is zero when first equals last.
func (p *Projection) FindXAndWidth(b Block, first, last float64) Geometry {
	f, l := int(first), int(last)
	x := math.Max(0, float64(f-b.FirstBase)*p.CharWidth)
	if f == l {
		return Geometry{X: x}
	}
	overlap := min(l, b.LastBase) - max(f, b.FirstBase)
	width := p.ViewportWidth * float64(overlap) / float64(p.Grid.BpsPerBlock)
	return Geometry{X: x, Width: math.Max(0, width)}
}

// ForPiece places a fragmented piece in block b. A head piece always
// continues past the right edge and a tail piece past the left edge, since
// each is half of a range that wraps through the origin.
func (p *Projection) ForPiece(b Block, piece rows.Piece) Geometry {
	g := p.FindXAndWidth(b, float64(piece.From), float64(piece.To))
	g.OverflowLeft = piece.From < b.FirstBase || piece.Part == rows.PartTail
	g.OverflowRight = piece.To > b.LastBase || piece.Part == rows.PartHead
	return g
}

// ForRange splits r and places every piece that touches block b.
func (p *Projection) ForRange(b Block, r seq.NamedRange) []Geometry {
	var out []Geometry
	for _, piece := range rows.Split(r, p.Grid.N) {
		if piece.From < b.LastBase && piece.To > b.FirstBase {
			out = append(out, p.ForPiece(b, piece))
		}
	}
	return out
}

// BaseAt converts a horizontal offset in block b to the nearest base
// boundary. It reports false for an empty projection.
func (p *Projection) BaseAt(b Block, x float64) (int, bool) {
	if p.Grid.N <= 0 || p.CharWidth <= 0 {
		return 0, false
	}
	base := b.FirstBase + int(math.Round(x/p.CharWidth))
	return max(b.FirstBase, min(base, b.LastBase)), true
}

// VisibleBlocks returns the inclusive range of blocks shown in a viewport
// of the given height, starting at the block holding the linear anchor.
// It returns (0, -1) when nothing fits.
func (p *Projection) VisibleBlocks(blockHeight, viewportHeight float64) (first, last int) {
	count := p.Grid.BlockCount()
	if count == 0 || blockHeight <= 0 {
		return 0, -1
	}
	fit := max(1, int(math.Ceil(viewportHeight/blockHeight)))
	if p.anchors != nil {
		first = p.Grid.BlockOf(p.anchors.Get().Linear)
	}
	last = min(count-1, first+fit-1)
	first = max(0, last-fit+1)
	return first, last
}

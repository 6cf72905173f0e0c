package collisions

import "github.com/solarlune/resolv"

const (
	// CellSize is the width and height of a resolv cell in pixels.
	CellSize = 16

	TagBird = "bird"
	TagPipe = "pipe"

	// bodyPadding grows rectangular bodies so that resolv's cell coverage,
	// which stops one pixel short of the far edge, still contains every
	// point strictly inside the rectangle.
	bodyPadding = 1
)

// Playfield is a resolv space that covers the visible playfield plus one
// playfield-sized margin on every side. Bodies positioned outside of it are
// clamped onto its border, which keeps a point that lies inside an unbounded
// rectangle (like the column above an upper pipe) inside that rectangle's
// clamped body.
type Playfield struct {
	space *resolv.Space

	marginX, marginY float64
	// width and height of the space in pixels
	width, height float64
}

func NewPlayfield(width, height int) *Playfield {
	spaceWidth := roundUpToCell(3 * width)
	spaceHeight := roundUpToCell(3 * height)
	return &Playfield{
		space:   resolv.NewSpace(spaceWidth, spaceHeight, CellSize, CellSize),
		marginX: float64(width),
		marginY: float64(height),
		width:   float64(spaceWidth),
		height:  float64(spaceHeight),
	}
}

func roundUpToCell(v int) int {
	if v <= 0 {
		return CellSize
	}
	return (v + CellSize - 1) / CellSize * CellSize
}

// Top returns the smallest world y covered by the playfield space.
func (p *Playfield) Top() float64 {
	return -p.marginY
}

// Bottom returns the largest world y covered by the playfield space.
func (p *Playfield) Bottom() float64 {
	return p.height - p.marginY - 1
}

// NewBody adds a one pixel body with the given tags to the space.
func (p *Playfield) NewBody(tags ...string) *Body {
	obj := resolv.NewObject(0, 0, 1, 1, tags...)
	p.space.Add(obj)
	return &Body{
		object:    obj,
		playfield: p,
	}
}

// Remove takes the body out of the space.
func (p *Playfield) Remove(b *Body) {
	p.space.Remove(b.object)
}

func (p *Playfield) clampX(x float64) float64 {
	return clamp(x+p.marginX, 0, p.width-1)
}

func (p *Playfield) clampY(y float64) float64 {
	return clamp(y+p.marginY, 0, p.height-1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Body is an object in the playfield space addressed in world coordinates.
type Body struct {
	object    *resolv.Object
	playfield *Playfield
}

// SetPoint moves the body to a single world position.
func (b *Body) SetPoint(x, y float64) {
	b.object.Position.X = b.playfield.clampX(x)
	b.object.Position.Y = b.playfield.clampY(y)
	b.object.Size.X = 1
	b.object.Size.Y = 1
	b.object.Update()
}

// SetRect moves and resizes the body to cover the world rectangle
// spanning (x0, y0) to (x1, y1).
func (b *Body) SetRect(x0, y0, x1, y1 float64) {
	sx0 := b.playfield.clampX(x0 - bodyPadding)
	sy0 := b.playfield.clampY(y0 - bodyPadding)
	sx1 := b.playfield.clampX(x1 + bodyPadding)
	sy1 := b.playfield.clampY(y1 + bodyPadding)
	b.object.Position.X = sx0
	b.object.Position.Y = sy0
	b.object.Size.X = max(sx1-sx0, 1)
	b.object.Size.Y = max(sy1-sy0, 1)
	b.object.Update()
}

// Touches reports whether the body shares a cell with any body carrying the
// given tags. It is a broad phase: a true result only means the bodies may
// overlap.
func (b *Body) Touches(tags ...string) bool {
	return b.object.Check(0, 0, tags...) != nil
}

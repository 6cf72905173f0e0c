package objects

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/flappy/pkg/collisions"
	"github.com/cbodonnell/flappy/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Pipe is a pair of pipes framing a gap. It scrolls left at a constant speed
// and respawns at the right edge with a new gap once it leaves the screen.
type Pipe struct {
	*BaseObject

	rng       *rand.Rand
	playfield *collisions.Playfield
	upper     *collisions.Body
	lower     *collisions.Body

	// top and bottom bound the gap, bottom is always top + spacing.
	top    float64
	bottom float64
	// passed is set once the bird has been credited for this pipe.
	passed bool

	speed   float64
	spacing float64
	// width and spriteHeight are the size of the pipe sprite.
	width        float64
	spriteHeight float64

	// fieldWidth and fieldHeight are the size of the playfield.
	fieldWidth  float64
	fieldHeight float64
}

var _ GameObject = &Pipe{}

type NewPipeOptions struct {
	// Sprite is the lower pipe. It is flipped vertically for the upper pipe.
	Sprite *ebiten.Image
	// Playfield holds the pipe bodies for collision checks.
	Playfield *collisions.Playfield
	// Rand picks the gap position.
	Rand *rand.Rand

	Speed   float64
	Spacing float64

	FieldWidth  float64
	FieldHeight float64
}

func NewPipe(id string, opts NewPipeOptions) (*Pipe, error) {
	if opts.Sprite == nil {
		return nil, fmt.Errorf("pipe sprite is required")
	}
	if opts.Playfield == nil {
		return nil, fmt.Errorf("playfield is required")
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}

	p := &Pipe{
		BaseObject:   NewBaseObject(id, &NewBaseObjectOpts{Frames: []*ebiten.Image{opts.Sprite}}),
		rng:          opts.Rand,
		playfield:    opts.Playfield,
		upper:        opts.Playfield.NewBody(collisions.TagPipe),
		lower:        opts.Playfield.NewBody(collisions.TagPipe),
		speed:        opts.Speed,
		spacing:      opts.Spacing,
		width:        float64(opts.Sprite.Bounds().Dx()),
		spriteHeight: float64(opts.Sprite.Bounds().Dy()),
		fieldWidth:   opts.FieldWidth,
		fieldHeight:  opts.FieldHeight,
	}
	p.Set()

	return p, nil
}

// GapRange returns the inclusive range the top of the gap is drawn from.
func (o *Pipe) GapRange() (lo, hi int) {
	return int(o.fieldHeight / 7), int(3 * o.fieldHeight / 5)
}

// Set moves the pipe to the right edge of the playfield with a new random gap.
func (o *Pipe) Set() {
	lo, hi := o.GapRange()
	o.top = float64(lo + o.rng.Intn(hi-lo+1))
	o.bottom = o.top + o.spacing
	o.Position.X = o.fieldWidth
	o.Position.Y = o.bottom
	o.passed = false
	o.syncBodies()
	log.Trace("Pipe %s set with gap [%v, %v]", o.ID, o.top, o.bottom)
}

func (o *Pipe) Update() error {
	o.Position.X -= o.speed
	if o.offscreen() {
		o.Set()
		return nil
	}
	o.syncBodies()
	return nil
}

func (o *Pipe) offscreen() bool {
	return o.Position.X+o.width < 0
}

func (o *Pipe) syncBodies() {
	x0, x1 := o.Position.X, o.Position.X+o.width
	o.upper.SetRect(x0, -o.fieldHeight, x1, o.top)
	o.lower.SetRect(x0, o.bottom, x1, 2*o.fieldHeight)
}

// Destroy takes both halves out of the collision space.
func (o *Pipe) Destroy() error {
	o.playfield.Remove(o.upper)
	o.playfield.Remove(o.lower)
	return nil
}

func (o *Pipe) Draw(screen *ebiten.Image) {
	sprite := o.Frames[0]

	lower := &ebiten.DrawImageOptions{}
	lower.GeoM.Translate(o.Position.X, o.bottom)
	screen.DrawImage(sprite, lower)

	upper := &ebiten.DrawImageOptions{}
	upper.GeoM.Scale(1, -1)
	upper.GeoM.Translate(o.Position.X, o.top)
	screen.DrawImage(sprite, upper)
}

// markPassed credits the pipe once. It returns false if it was already credited.
func (o *Pipe) markPassed() bool {
	if o.passed {
		return false
	}
	o.passed = true
	return true
}

func (o *Pipe) X() float64 {
	return o.Position.X
}

func (o *Pipe) Top() float64 {
	return o.top
}

func (o *Pipe) Bottom() float64 {
	return o.bottom
}

func (o *Pipe) Width() float64 {
	return o.width
}

func (o *Pipe) Passed() bool {
	return o.passed
}

package objects

import (
	"github.com/cbodonnell/flappy/client/input"
	"github.com/cbodonnell/flappy/client/sounds"
	"github.com/cbodonnell/flappy/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	ReceiveEvent(e input.Event)
}

// SoundPlayer plays sound effects without waiting for them to finish.
type SoundPlayer interface {
	Play(id sounds.ID)
}

// BaseObject holds what every game object has: a position and an ordered,
// possibly empty, list of frames. All behavior defaults to a no-op.
type BaseObject struct {
	ID       string
	Position kinematic.Vector
	Frames   []*ebiten.Image
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	X, Y   float64
	Frames []*ebiten.Image
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		ID: id,
	}
	if opts != nil {
		o.Position = kinematic.Vector{X: opts.X, Y: opts.Y}
		o.Frames = opts.Frames
	}
	return o
}

func (o *BaseObject) GetID() string {
	return o.ID
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) ReceiveEvent(e input.Event) {}

func (o *BaseObject) Update() error {
	return nil
}

// Draw draws the first frame at the object position.
func (o *BaseObject) Draw(screen *ebiten.Image) {
	if len(o.Frames) == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.Position.X, o.Position.Y)
	screen.DrawImage(o.Frames[0], op)
}

package objects

import (
	"fmt"

	"github.com/cbodonnell/flappy/client/animations"
	"github.com/cbodonnell/flappy/client/input"
	"github.com/cbodonnell/flappy/client/sounds"
	"github.com/cbodonnell/flappy/pkg/collisions"
	"github.com/cbodonnell/flappy/pkg/kinematic"
	"github.com/cbodonnell/flappy/pkg/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

type DeathCause int

const (
	DeathCauseNone DeathCause = iota
	// DeathCauseHit is a collision with the pipe.
	DeathCauseHit
	// DeathCauseFall is dropping below the playfield.
	DeathCauseFall
)

func (c DeathCause) String() string {
	switch c {
	case DeathCauseNone:
		return "None"
	case DeathCauseHit:
		return "Hit"
	case DeathCauseFall:
		return "Fall"
	}
	return "Unknown"
}

// Bird is the player. It falls under gravity, flaps on the jump input,
// dies on hitting the pipe or falling off the playfield, and scores a point
// for every pipe it gets past.
type Bird struct {
	*BaseObject

	pipe      *Pipe
	sounds    SoundPlayer
	playfield *collisions.Playfield
	body      *collisions.Body
	animation *animations.Animation
	// logger tags every entry with the run ID of the current life.
	logger *log.Logger

	velocity   float64
	alive      bool
	points     int
	deathCause DeathCause
	// runID identifies the current life in the logs.
	runID string

	gravity     float64
	lift        float64
	startX      float64
	fieldHeight float64
	fallMargin  float64
}

var _ GameObject = &Bird{}

type NewBirdOptions struct {
	Frames []*ebiten.Image
	// FrameSpeed is the number of updates each flap frame is shown for.
	FrameSpeed int
	// Pipe is the obstacle the bird collides with and scores on.
	Pipe      *Pipe
	Sounds    SoundPlayer
	Playfield *collisions.Playfield

	Gravity     float64
	Lift        float64
	StartX      float64
	FieldHeight float64
	FallMargin  float64
}

func NewBird(id string, opts NewBirdOptions) (*Bird, error) {
	if opts.Pipe == nil {
		return nil, fmt.Errorf("pipe is required")
	}
	if opts.Sounds == nil {
		return nil, fmt.Errorf("sound player is required")
	}
	if opts.Playfield == nil {
		return nil, fmt.Errorf("playfield is required")
	}

	b := &Bird{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{Frames: opts.Frames}),
		pipe:       opts.Pipe,
		sounds:     opts.Sounds,
		playfield:  opts.Playfield,
		body:       opts.Playfield.NewBody(collisions.TagBird),
		animation: animations.NewAnimation(animations.NewAnimationOptions{
			Frames:     opts.Frames,
			FrameSpeed: opts.FrameSpeed,
		}),
		gravity:     opts.Gravity,
		lift:        opts.Lift,
		startX:      opts.StartX,
		fieldHeight: opts.FieldHeight,
		fallMargin:  opts.FallMargin,
	}
	b.respawn()

	return b, nil
}

// respawn resets the bird to the start of a new life and repositions the pipe.
func (o *Bird) respawn() {
	o.points = 0
	o.Position.X = o.startX
	o.Position.Y = o.fieldHeight / 2
	o.velocity = 0
	o.alive = true
	o.deathCause = DeathCauseNone
	o.runID = uuid.NewString()
	o.logger = log.Default().With("run", o.runID)
	o.animation.Reset()
	o.body.SetPoint(o.Position.X, o.Position.Y)
	o.pipe.Set()
	o.logger.Debug("Bird %s spawned", o.ID)
}

func (o *Bird) Update() error {
	o.velocity = kinematic.Step(o.velocity, o.gravity)
	if o.Position.Y < o.fieldHeight+o.fallMargin {
		o.Position.Y += o.velocity
	}
	o.body.SetPoint(o.Position.X, o.Position.Y)

	if o.alive {
		o.animation.Update()
		// a hit takes precedence over a fall in the same tick
		if o.colliding() {
			o.die(DeathCauseHit)
		} else if o.Position.Y > o.fieldHeight {
			o.die(DeathCauseFall)
		}
	}

	if o.alive && o.Position.X > o.pipe.Position.X && o.pipe.markPassed() {
		o.points++
		o.sounds.Play(sounds.Point)
		o.logger.Debug("Scored, points: %d", o.points)
	}

	return nil
}

// colliding reports whether the bird is inside the horizontal span of the pipe
// and outside of its gap.
func (o *Bird) colliding() bool {
	if !o.body.Touches(collisions.TagPipe) {
		return false
	}
	p := o.pipe
	return collisions.OutsideGap(o.Position.X, o.Position.Y, p.Position.X, p.Position.X+p.width, p.top, p.bottom)
}

func (o *Bird) die(cause DeathCause) {
	o.alive = false
	o.deathCause = cause
	switch cause {
	case DeathCauseHit:
		o.sounds.Play(sounds.Hit)
	case DeathCauseFall:
		o.sounds.Play(sounds.Fall)
	}
	o.logger.Info("Run ended by %s with %d points", cause, o.points)
}

// Destroy takes the bird out of the collision space.
func (o *Bird) Destroy() error {
	o.playfield.Remove(o.body)
	return nil
}

func (o *Bird) ReceiveEvent(e input.Event) {
	if !e.IsJump() {
		return
	}
	if !o.alive {
		o.respawn()
		return
	}
	o.velocity += o.lift
	o.sounds.Play(sounds.Flap)
}

func (o *Bird) Draw(screen *ebiten.Image) {
	o.animation.Draw(screen, o.Position.X, o.Position.Y)
}

func (o *Bird) X() float64 {
	return o.Position.X
}

func (o *Bird) Y() float64 {
	return o.Position.Y
}

func (o *Bird) Velocity() float64 {
	return o.velocity
}

func (o *Bird) Alive() bool {
	return o.alive
}

func (o *Bird) Points() int {
	return o.points
}

func (o *Bird) DeathCause() DeathCause {
	return o.deathCause
}

func (o *Bird) RunID() string {
	return o.runID
}

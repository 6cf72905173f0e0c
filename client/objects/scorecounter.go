package objects

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScoreCounter draws the points of a bird with one sprite per digit.
type ScoreCounter struct {
	*BaseObject

	bird *Bird
}

var _ GameObject = &ScoreCounter{}

type NewScoreCounterOptions struct {
	// Digits are the sprites for 0 through 9.
	Digits []*ebiten.Image
	Bird   *Bird
	// X and Y are where the first digit is drawn.
	X, Y float64
}

func NewScoreCounter(id string, opts NewScoreCounterOptions) (*ScoreCounter, error) {
	if opts.Bird == nil {
		return nil, fmt.Errorf("bird is required")
	}
	if len(opts.Digits) != 10 {
		return nil, fmt.Errorf("expected 10 digit sprites, got %d", len(opts.Digits))
	}
	return &ScoreCounter{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			X:      opts.X,
			Y:      opts.Y,
			Frames: opts.Digits,
		}),
		bird: opts.Bird,
	}, nil
}

// DigitPlacement is a digit and the x position it is drawn at.
type DigitPlacement struct {
	Digit int
	X     float64
}

// Layout lays the digits of the score out left to right, advancing by the
// width of each digit sprite.
func (o *ScoreCounter) Layout() []DigitPlacement {
	s := strconv.Itoa(o.bird.Points())
	placements := make([]DigitPlacement, 0, len(s))
	x := o.Position.X
	for _, r := range s {
		d := int(r - '0')
		placements = append(placements, DigitPlacement{Digit: d, X: x})
		x += float64(o.Frames[d].Bounds().Dx())
	}
	return placements
}

func (o *ScoreCounter) Draw(screen *ebiten.Image) {
	for _, p := range o.Layout() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, o.Position.Y)
		screen.DrawImage(o.Frames[p.Digit], op)
	}
}

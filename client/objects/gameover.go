package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/flappy/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// GameOverOverlay tells the player how to respawn while the bird is dead.
type GameOverOverlay struct {
	*BaseObject

	bird *Bird
}

var _ GameObject = &GameOverOverlay{}

func NewGameOverOverlay(id string, bird *Bird) (*GameOverOverlay, error) {
	if bird == nil {
		return nil, fmt.Errorf("bird is required")
	}
	return &GameOverOverlay{
		BaseObject: NewBaseObject(id, nil),
		bird:       bird,
	}, nil
}

// Lines returns the text to show, or nil while the bird is alive.
func (o *GameOverOverlay) Lines() []string {
	if o.bird.Alive() {
		return nil
	}
	return []string{
		"Game Over",
		"Flap to retry",
	}
}

func (o *GameOverOverlay) Draw(screen *ebiten.Image) {
	lines := o.Lines()
	if lines == nil {
		return
	}
	faces := []font.Face{fonts.ArcadeLargeFont, fonts.ArcadeSmallFont}
	offsetY := float64(screen.Bounds().Dy()) / 3
	for i, line := range lines {
		t := strings.ToUpper(line)
		f := faces[min(i, len(faces)-1)]
		bounds, _ := font.BoundString(f, t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2, offsetY)
		op.ColorScale.ScaleWithColor(color.White)
		text.DrawWithOptions(screen, t, f, op)
		offsetY += float64(f.Metrics().Height>>6) * 2
	}
}

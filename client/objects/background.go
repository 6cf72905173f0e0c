package objects

import "github.com/hajimehoshi/ebiten/v2"

// Background is a static image drawn at the origin.
type Background struct {
	*BaseObject
}

var _ GameObject = &Background{}

func NewBackground(id string, img *ebiten.Image) *Background {
	var frames []*ebiten.Image
	if img != nil {
		frames = []*ebiten.Image{img}
	}
	return &Background{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{Frames: frames}),
	}
}

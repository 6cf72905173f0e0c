package animations

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Animation struct {
	// frames are the images of the animation in playback order.
	frames []*ebiten.Image
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index.
	frameIndex int
}

type NewAnimationOptions struct {
	Frames     []*ebiten.Image
	FrameSpeed int
}

func NewAnimation(opts NewAnimationOptions) *Animation {
	frameSpeed := opts.FrameSpeed
	if frameSpeed <= 0 {
		frameSpeed = 1
	}
	return &Animation{
		frames:     opts.Frames,
		frameSpeed: frameSpeed,
	}
}

func (a *Animation) Update() {
	if len(a.frames) == 0 {
		return
	}
	a.updateCount++
	a.frameIndex = (a.updateCount / a.frameSpeed) % len(a.frames)
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

func (a *Animation) FrameIndex() int {
	return a.frameIndex
}

// CurrentImage returns the frame to draw, or nil for an empty animation.
func (a *Animation) CurrentImage() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.frameIndex]
}

// Size returns the size of the current frame.
func (a *Animation) Size() (int, int) {
	img := a.CurrentImage()
	if img == nil {
		return 0, 0
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func (a *Animation) DefaultOptions() *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		Filter: ebiten.FilterNearest,
	}
}

// Draw draws the current frame with its top left corner at (x, y).
func (a *Animation) Draw(screen *ebiten.Image, x, y float64) {
	img := a.CurrentImage()
	if img == nil {
		return
	}
	op := a.DefaultOptions()
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

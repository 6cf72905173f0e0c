package collisions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutsideGap(t *testing.T) {
	// pipe spans x in (50, 102), gap spans y in [100, 225]
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "above the gap", x: 60, y: 50, want: true},
		{name: "below the gap", x: 60, y: 300, want: true},
		{name: "inside the gap", x: 60, y: 150, want: false},
		{name: "on the gap top", x: 60, y: 100, want: false},
		{name: "on the gap bottom", x: 60, y: 225, want: false},
		{name: "on the left edge", x: 50, y: 50, want: false},
		{name: "on the right edge", x: 102, y: 50, want: false},
		{name: "left of the pipe", x: 10, y: 50, want: false},
		{name: "far above the screen", x: 60, y: -2000, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutsideGap(tt.x, tt.y, 50, 102, 100, 225))
		})
	}
}

func TestBody_Touches(t *testing.T) {
	pf := NewPlayfield(288, 512)

	upper := pf.NewBody(TagPipe)
	lower := pf.NewBody(TagPipe)
	upper.SetRect(47, pf.Top(), 99, 100)
	lower.SetRect(47, 225, 99, pf.Bottom())

	bird := pf.NewBody(TagBird)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "inside the upper pipe", x: 50, y: 50, want: true},
		{name: "inside the lower pipe", x: 50, y: 400, want: true},
		{name: "far above the space", x: 50, y: -5000, want: true},
		{name: "just inside the right edge", x: 98.9, y: 10, want: true},
		{name: "far from the pipe", x: 200, y: 50, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bird.SetPoint(tt.x, tt.y)
			assert.Equal(t, tt.want, bird.Touches(TagPipe))
		})
	}
}

func TestPlayfield_Remove(t *testing.T) {
	pf := NewPlayfield(288, 512)
	pipe := pf.NewBody(TagPipe)
	pipe.SetRect(40, 0, 90, 100)
	bird := pf.NewBody(TagBird)
	bird.SetPoint(50, 50)
	assert.True(t, bird.Touches(TagPipe))

	pf.Remove(pipe)
	bird.SetPoint(50, 50)
	assert.False(t, bird.Touches(TagPipe))
}

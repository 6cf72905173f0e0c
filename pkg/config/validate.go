package config

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/flappy/pkg/log"
)

// ValidationError describes a configuration value that the game cannot run with.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks every value the game objects rely on at construction.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field, format string, args ...interface{}) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		invalid("logLevel", "%v", err)
	}
	if c.Window.Width <= 0 {
		invalid("window.width", "must be positive, got %d", c.Window.Width)
	}
	if c.Window.Height <= 0 {
		invalid("window.height", "must be positive, got %d", c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		invalid("window.scale", "must be positive, got %d", c.Window.Scale)
	}
	if c.TPS <= 0 {
		invalid("tps", "must be positive, got %d", c.TPS)
	}
	if c.Physics.Gravity <= 0 {
		invalid("physics.gravity", "must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.Lift >= 0 {
		invalid("physics.lift", "must be negative, got %v", c.Physics.Lift)
	}
	if c.Physics.BirdStartX < 0 || c.Physics.BirdStartX >= float64(c.Window.Width) {
		invalid("physics.birdStartX", "must be within the playfield, got %v", c.Physics.BirdStartX)
	}
	if c.Physics.FallMargin < 0 {
		invalid("physics.fallMargin", "must not be negative, got %v", c.Physics.FallMargin)
	}
	if c.Pipe.Speed <= 0 {
		invalid("pipe.speed", "must be positive, got %v", c.Pipe.Speed)
	}
	// the lowest gap top is 3/5 of the height, the gap must still end on screen
	if c.Pipe.Spacing <= 0 || float64(c.Window.Height)*3/5+c.Pipe.Spacing > float64(c.Window.Height) {
		invalid("pipe.spacing", "must be positive and fit below the lowest gap, got %v", c.Pipe.Spacing)
	}
	if c.Assets.Background == "" {
		invalid("assets.background", "is required")
	}
	if c.Assets.Pipe == "" {
		invalid("assets.pipe", "is required")
	}
	if len(c.Assets.Bird) != BirdFrameCount {
		invalid("assets.bird", "needs %d frames, got %d", BirdFrameCount, len(c.Assets.Bird))
	}
	if len(c.Assets.Digits) != DigitFrameCount {
		invalid("assets.digits", "needs %d frames, got %d", DigitFrameCount, len(c.Assets.Digits))
	}
	sounds := map[string]string{
		"assets.sounds.flap":  c.Assets.Sounds.Flap,
		"assets.sounds.hit":   c.Assets.Sounds.Hit,
		"assets.sounds.fall":  c.Assets.Sounds.Fall,
		"assets.sounds.point": c.Assets.Sounds.Point,
	}
	for field, path := range sounds {
		if path == "" {
			invalid(field, "is required")
		}
	}
	if c.Audio.SampleRate <= 0 {
		invalid("audio.sampleRate", "must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		invalid("audio.volume", "must be within [0, 1], got %v", c.Audio.Volume)
	}

	return errors.Join(errs...)
}

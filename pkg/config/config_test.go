package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 288, cfg.Window.Width)
	assert.Equal(t, 512, cfg.Window.Height)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -15.0, cfg.Physics.Lift)
	assert.Equal(t, 3.0, cfg.Pipe.Speed)
	assert.Equal(t, 125.0, cfg.Pipe.Spacing)
	assert.Len(t, cfg.Assets.Bird, BirdFrameCount)
	assert.Len(t, cfg.Assets.Digits, DigitFrameCount)
	assert.Equal(t, "sprites/7.png", cfg.Assets.Digits[7])
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flappy.yaml")
		doc := []byte("debug: true\npipe:\n  speed: 4\nwindow:\n  scale: 2\n")
		require.NoError(t, os.WriteFile(path, doc, 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 4.0, cfg.Pipe.Speed)
		assert.Equal(t, 2, cfg.Window.Scale)
		// untouched values keep their defaults
		assert.Equal(t, 125.0, cfg.Pipe.Spacing)
		assert.Equal(t, 288, cfg.Window.Width)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pipe: [1, 2"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{name: "zero width", modify: func(c *Config) { c.Window.Width = 0 }, field: "window.width"},
		{name: "zero tps", modify: func(c *Config) { c.TPS = 0 }, field: "tps"},
		{name: "upward gravity", modify: func(c *Config) { c.Physics.Gravity = -1 }, field: "physics.gravity"},
		{name: "downward lift", modify: func(c *Config) { c.Physics.Lift = 5 }, field: "physics.lift"},
		{name: "bird off screen", modify: func(c *Config) { c.Physics.BirdStartX = 400 }, field: "physics.birdStartX"},
		{name: "gap too tall", modify: func(c *Config) { c.Pipe.Spacing = 300 }, field: "pipe.spacing"},
		{name: "two bird frames", modify: func(c *Config) { c.Assets.Bird = c.Assets.Bird[:2] }, field: "assets.bird"},
		{name: "no hit sound", modify: func(c *Config) { c.Assets.Sounds.Hit = "" }, field: "assets.sounds.hit"},
		{name: "loud volume", modify: func(c *Config) { c.Audio.Volume = 2 }, field: "audio.volume"},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }, field: "logLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestLoad_exampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "flappy.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Window.Scale)
	assert.Equal(t, 0.8, cfg.Audio.Volume)
	assert.Len(t, cfg.Assets.Digits, DigitFrameCount)
}

func TestLoad_validatesDefaults(t *testing.T) {
	broken := Default()
	broken.TPS = 0

	_, err := load("", broken)
	assert.ErrorContains(t, err, "invalid tps")
}

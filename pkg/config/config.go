package config

import (
	"fmt"
	"os"

	"github.com/cbodonnell/flappy/pkg/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth  = 288
	DefaultScreenHeight = 512
	DefaultTPS          = 60

	BirdFrameCount  = 3
	DigitFrameCount = 10
)

// Config is the startup configuration of a game session.
// It is read once and never changes while the game is running.
type Config struct {
	LogLevel string  `yaml:"logLevel"`
	Debug    bool    `yaml:"debug"`
	Window   Window  `yaml:"window"`
	TPS      int     `yaml:"tps"`
	Physics  Physics `yaml:"physics"`
	Pipe     Pipe    `yaml:"pipe"`
	Score    Score   `yaml:"score"`
	Assets   Assets  `yaml:"assets"`
	Audio    Audio   `yaml:"audio"`
}

type Window struct {
	// Width is the logical playfield width in pixels.
	Width int `yaml:"width"`
	// Height is the logical playfield height in pixels.
	Height int `yaml:"height"`
	// Scale multiplies the logical size to get the window size.
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}

type Physics struct {
	// Gravity is added to the bird velocity every tick.
	Gravity float64 `yaml:"gravity"`
	// Lift is added to the bird velocity on every flap. It must be negative.
	Lift float64 `yaml:"lift"`
	// BirdStartX is the horizontal position of the bird.
	BirdStartX float64 `yaml:"birdStartX"`
	// FallMargin is how far below the playfield a dead bird keeps falling.
	FallMargin float64 `yaml:"fallMargin"`
}

type Pipe struct {
	// Speed is the distance the pipe scrolls left every tick.
	Speed float64 `yaml:"speed"`
	// Spacing is the height of the gap between the two pipe halves.
	Spacing float64 `yaml:"spacing"`
}

type Score struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// Assets names every file the game needs by role. Paths are relative to BasePath.
type Assets struct {
	BasePath   string   `yaml:"basePath"`
	Background string   `yaml:"background"`
	Bird       []string `yaml:"bird"`
	Pipe       string   `yaml:"pipe"`
	Digits     []string `yaml:"digits"`
	Sounds     Sounds   `yaml:"sounds"`
}

type Sounds struct {
	Flap  string `yaml:"flap"`
	Hit   string `yaml:"hit"`
	Fall  string `yaml:"fall"`
	Point string `yaml:"point"`
}

type Audio struct {
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
	Muted      bool    `yaml:"muted"`
}

// Default returns the configuration of the classic game.
func Default() *Config {
	digits := make([]string, DigitFrameCount)
	for i := range digits {
		digits[i] = fmt.Sprintf("sprites/%d.png", i)
	}
	return &Config{
		LogLevel: "info",
		Window: Window{
			Width:  DefaultScreenWidth,
			Height: DefaultScreenHeight,
			Scale:  1,
			Title:  "Flappy Bird",
		},
		TPS: DefaultTPS,
		Physics: Physics{
			Gravity:    0.5,
			Lift:       -15,
			BirdStartX: 50,
			FallMargin: 20,
		},
		Pipe: Pipe{
			Speed:   3,
			Spacing: 125,
		},
		Score: Score{
			OffsetX: 10,
			OffsetY: 10,
		},
		Assets: Assets{
			BasePath:   "resources",
			Background: "sprites/background-day.png",
			Bird: []string{
				"sprites/redbird-downflap.png",
				"sprites/redbird-midflap.png",
				"sprites/redbird-upflap.png",
			},
			Pipe:   "sprites/pipe-green.png",
			Digits: digits,
			Sounds: Sounds{
				Flap:  "audio/swoosh.wav",
				Hit:   "audio/hit.wav",
				Fall:  "audio/die.wav",
				Point: "audio/point.wav",
			},
		},
		Audio: Audio{
			SampleRate: 48000,
			Volume:     1,
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// An empty path returns the defaults. Either way the result is validated.
func Load(path string) (*Config, error) {
	return load(path, Default())
}

func load(path string, cfg *Config) (*Config, error) {
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default config: %v", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	log.Debug("Loaded config from %s", path)

	return cfg, nil
}

// Parse decodes data into cfg, keeping the values of fields the document omits,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %v", err)
	}
	return cfg.Validate()
}

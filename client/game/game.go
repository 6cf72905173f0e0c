package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/flappy/client/input"
	"github.com/cbodonnell/flappy/client/objects"
	"github.com/cbodonnell/flappy/client/scenes"
	"github.com/cbodonnell/flappy/pkg/log"
	"github.com/cbodonnell/flappy/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// MuteKey toggles the sound effects on and off.
const MuteKey = ebiten.KeyM

// EventSource produces the input events of a single tick.
type EventSource interface {
	Poll(q queue.Queue[input.Event]) error
}

// Muter is the part of the sound bank the game controls directly.
type Muter interface {
	ToggleMute() bool
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// scene is the current scene.
	scene scenes.Scene
	// events holds the input of the current tick until it is dispatched.
	events queue.Queue[input.Event]
	// source fills the event queue once per tick.
	source EventSource
	// muter is optional.
	muter Muter

	screenWidth  int
	screenHeight int
}

var _ ebiten.Game = &Game{}

type NewGameOptions struct {
	Debug  bool
	Scene  scenes.Scene
	Source EventSource
	Muter  Muter
	// EventQueueSize bounds the events buffered within a single tick.
	EventQueueSize int

	ScreenWidth  int
	ScreenHeight int
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Scene == nil {
		return nil, fmt.Errorf("scene is required")
	}
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", opts.ScreenWidth, opts.ScreenHeight)
	}
	source := opts.Source
	if source == nil {
		source = input.NewPoller()
	}

	g := &Game{
		debug:        opts.Debug,
		events:       queue.NewInMemoryQueue[input.Event](opts.EventQueueSize),
		source:       source,
		muter:        opts.Muter,
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
	}

	if err := g.SetScene(opts.Scene); err != nil {
		return nil, fmt.Errorf("failed to set scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	if err := g.source.Poll(g.events); err != nil {
		if !errors.Is(err, queue.ErrQueueFull) {
			return fmt.Errorf("failed to poll input: %v", err)
		}
		log.Warn("Dropped input events: %v", err)
	}

	// Handle input
	for _, e := range g.events.ReadAllMessages() {
		if e.IsQuit() {
			log.Info("Quit requested")
			if err := g.scene.Destroy(); err != nil {
				log.Error("Failed to destroy scene: %v", err)
			}
			return ebiten.Termination
		}
		if g.muter != nil && e.Type == input.EventTypeKeyDown && e.Key == MuteKey {
			log.Info("Sound muted: %t", g.muter.ToggleMute())
			continue
		}
		g.scene.ReceiveEvent(e)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

// birdScene is implemented by scenes with a player bird.
type birdScene interface {
	Bird() *objects.Bird
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	s, ok := g.scene.(birdScene)
	if !ok {
		return
	}
	bird := s.Bird()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Points: %d", bird.Points()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n\n   Y: %0.1f V: %0.1f", bird.Y(), bird.Velocity()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n\n\n   Run: %.8s", bird.RunID()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

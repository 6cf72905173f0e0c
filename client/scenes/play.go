package scenes

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/flappy/client/objects"
	"github.com/cbodonnell/flappy/pkg/collisions"
	"github.com/cbodonnell/flappy/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Object names in the play scene, in dispatch order.
const (
	ObjectBackground   = "background"
	ObjectPipe         = "pipe"
	ObjectBird         = "bird"
	ObjectScoreCounter = "scorecounter"
	ObjectGameOver     = "gameover"
)

// BirdFrameSpeed is the number of ticks each flap frame is shown for.
const BirdFrameSpeed = 6

// Sprites are the decoded images of the play scene, by role.
type Sprites struct {
	Background *ebiten.Image
	Bird       []*ebiten.Image
	Pipe       *ebiten.Image
	Digits     []*ebiten.Image
}

// PlayScene is the single game scene: the background, one pipe, the bird,
// its score and the game over overlay.
type PlayScene struct {
	*BaseScene

	bird *objects.Bird
	pipe *objects.Pipe
}

var _ Scene = &PlayScene{}

type NewPlaySceneOptions struct {
	Config  *config.Config
	Sprites Sprites
	Sounds  objects.SoundPlayer
	Rand    *rand.Rand
}

// NewPlayScene builds the objects in dependency order and hands each one the
// siblings it needs.
func NewPlayScene(opts NewPlaySceneOptions) (*PlayScene, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)
	playfield := collisions.NewPlayfield(cfg.Window.Width, cfg.Window.Height)

	background := objects.NewBackground(ObjectBackground, opts.Sprites.Background)

	pipe, err := objects.NewPipe(ObjectPipe, objects.NewPipeOptions{
		Sprite:      opts.Sprites.Pipe,
		Playfield:   playfield,
		Rand:        rng,
		Speed:       cfg.Pipe.Speed,
		Spacing:     cfg.Pipe.Spacing,
		FieldWidth:  width,
		FieldHeight: height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe: %v", err)
	}

	bird, err := objects.NewBird(ObjectBird, objects.NewBirdOptions{
		Frames:      opts.Sprites.Bird,
		FrameSpeed:  BirdFrameSpeed,
		Pipe:        pipe,
		Sounds:      opts.Sounds,
		Playfield:   playfield,
		Gravity:     cfg.Physics.Gravity,
		Lift:        cfg.Physics.Lift,
		StartX:      cfg.Physics.BirdStartX,
		FieldHeight: height,
		FallMargin:  cfg.Physics.FallMargin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bird: %v", err)
	}

	scoreCounter, err := objects.NewScoreCounter(ObjectScoreCounter, objects.NewScoreCounterOptions{
		Digits: opts.Sprites.Digits,
		Bird:   bird,
		X:      cfg.Score.OffsetX,
		Y:      cfg.Score.OffsetY,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create score counter: %v", err)
	}

	gameOver, err := objects.NewGameOverOverlay(ObjectGameOver, bird)
	if err != nil {
		return nil, fmt.Errorf("failed to create game over overlay: %v", err)
	}

	s := &PlayScene{
		BaseScene: NewBaseScene(),
		bird:      bird,
		pipe:      pipe,
	}
	for _, obj := range []objects.GameObject{background, pipe, bird, scoreCounter, gameOver} {
		if err := s.Add(obj.GetID(), obj); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *PlayScene) Bird() *objects.Bird {
	return s.bird
}

func (s *PlayScene) Pipe() *objects.Pipe {
	return s.pipe
}

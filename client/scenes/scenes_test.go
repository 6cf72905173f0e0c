package scenes

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/flappy/client/input"
	"github.com/cbodonnell/flappy/client/objects"
	"github.com/cbodonnell/flappy/client/sounds"
	"github.com/cbodonnell/flappy/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObject appends its id to a shared log on every call.
type recordingObject struct {
	*objects.BaseObject

	calls     *[]string
	updateErr error
}

func newRecordingObject(id string, calls *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: objects.NewBaseObject(id, nil),
		calls:      calls,
	}
}

func (o *recordingObject) ReceiveEvent(e input.Event) {
	*o.calls = append(*o.calls, "event:"+o.ID)
}

func (o *recordingObject) Update() error {
	*o.calls = append(*o.calls, "update:"+o.ID)
	return o.updateErr
}

func (o *recordingObject) Draw(screen *ebiten.Image) {
	*o.calls = append(*o.calls, "draw:"+o.ID)
}

func TestBaseScene_dispatchOrder(t *testing.T) {
	var calls []string
	s := NewBaseScene()
	for _, id := range []string{"background", "pipe", "bird", "scorecounter"} {
		require.NoError(t, s.Add(id, newRecordingObject(id, &calls)))
	}

	s.ReceiveEvent(input.KeyDown(input.JumpKey))
	require.NoError(t, s.Update())
	s.Draw(ebiten.NewImage(1, 1))

	assert.Equal(t, []string{
		"event:background", "event:pipe", "event:bird", "event:scorecounter",
		"update:background", "update:pipe", "update:bird", "update:scorecounter",
		"draw:background", "draw:pipe", "draw:bird", "draw:scorecounter",
	}, calls)
}

func TestBaseScene_Update_error(t *testing.T) {
	var calls []string
	s := NewBaseScene()
	broken := newRecordingObject("pipe", &calls)
	broken.updateErr = errors.New("boom")
	require.NoError(t, s.Add("pipe", broken))
	require.NoError(t, s.Add("bird", newRecordingObject("bird", &calls)))

	assert.ErrorContains(t, s.Update(), "failed to update pipe")
	assert.Equal(t, []string{"update:pipe"}, calls)
}

func TestBaseScene_Add_duplicate(t *testing.T) {
	var calls []string
	s := NewBaseScene()
	require.NoError(t, s.Add("bird", newRecordingObject("bird", &calls)))
	assert.Error(t, s.Add("bird", newRecordingObject("bird", &calls)))
}

type silentSounds struct {
	played []sounds.ID
}

func (s *silentSounds) Play(id sounds.ID) {
	s.played = append(s.played, id)
}

func testSprites() Sprites {
	digits := make([]*ebiten.Image, 10)
	for i := range digits {
		digits[i] = ebiten.NewImage(24, 36)
	}
	return Sprites{
		Background: ebiten.NewImage(288, 512),
		Bird: []*ebiten.Image{
			ebiten.NewImage(34, 24),
			ebiten.NewImage(34, 24),
			ebiten.NewImage(34, 24),
		},
		Pipe:   ebiten.NewImage(52, 320),
		Digits: digits,
	}
}

func newTestPlayScene(t *testing.T) (*PlayScene, *silentSounds) {
	t.Helper()
	player := &silentSounds{}
	s, err := NewPlayScene(NewPlaySceneOptions{
		Config:  config.Default(),
		Sprites: testSprites(),
		Sounds:  player,
		Rand:    rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	return s, player
}

func TestNewPlayScene(t *testing.T) {
	s, _ := newTestPlayScene(t)

	var names []string
	for _, obj := range s.Objects() {
		names = append(names, obj.GetID())
	}
	assert.Equal(t, []string{ObjectBackground, ObjectPipe, ObjectBird, ObjectScoreCounter, ObjectGameOver}, names)

	pipe, ok := s.GetObject(ObjectPipe)
	require.True(t, ok)
	assert.Same(t, s.Pipe(), pipe)

	bird, ok := s.GetObject(ObjectBird)
	require.True(t, ok)
	assert.Same(t, s.Bird(), bird)

	_, ok = s.GetObject("Bird")
	assert.False(t, ok)

	require.NoError(t, s.Init())
	require.NoError(t, s.Destroy())
}

func TestNewPlayScene_errors(t *testing.T) {
	_, err := NewPlayScene(NewPlaySceneOptions{Sprites: testSprites(), Sounds: &silentSounds{}})
	assert.Error(t, err)

	sprites := testSprites()
	sprites.Pipe = nil
	_, err = NewPlayScene(NewPlaySceneOptions{Config: config.Default(), Sprites: sprites, Sounds: &silentSounds{}})
	assert.Error(t, err)

	sprites = testSprites()
	sprites.Digits = sprites.Digits[:3]
	_, err = NewPlayScene(NewPlaySceneOptions{Config: config.Default(), Sprites: sprites, Sounds: &silentSounds{}})
	assert.Error(t, err)
}

func TestPlayScene_session(t *testing.T) {
	s, player := newTestPlayScene(t)
	bird, pipe := s.Bird(), s.Pipe()

	s.ReceiveEvent(input.KeyDown(input.JumpKey))
	assert.Equal(t, -15.0, bird.Velocity())
	assert.Equal(t, []sounds.ID{sounds.Flap}, player.played)

	// without input the bird eventually dies and the pipe keeps scrolling
	startX := pipe.X()
	for i := 0; i < 200 && bird.Alive(); i++ {
		require.NoError(t, s.Update())
	}
	require.False(t, bird.Alive())
	assert.NotEqual(t, startX, pipe.X())

	s.ReceiveEvent(input.KeyDown(input.JumpKey))
	assert.True(t, bird.Alive())
	assert.Equal(t, 0, bird.Points())
	assert.Equal(t, 0.0, bird.Velocity())
	assert.Equal(t, 288.0, pipe.X())
	assert.False(t, pipe.Passed())
}

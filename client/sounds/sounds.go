package sounds

import (
	"fmt"

	"github.com/cbodonnell/flappy/pkg/log"
)

// ID names a sound effect by its role in the game.
type ID int

const (
	Flap ID = iota
	Hit
	Fall
	Point
)

func (id ID) String() string {
	switch id {
	case Flap:
		return "flap"
	case Hit:
		return "hit"
	case Fall:
		return "fall"
	case Point:
		return "point"
	}
	return "unknown"
}

// Player is the part of an audio player the bank needs.
// *audio.Player from ebiten satisfies it.
type Player interface {
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Bank plays one-shot sound effects by ID.
type Bank struct {
	players map[ID]Player
	volume  float64
	muted   bool
}

type NewBankOptions struct {
	Players map[ID]Player
	// Volume is applied to every player, in [0, 1].
	Volume float64
	Muted  bool
}

func NewBank(opts NewBankOptions) *Bank {
	b := &Bank{
		players: make(map[ID]Player, len(opts.Players)),
		muted:   opts.Muted,
	}
	for id, p := range opts.Players {
		b.players[id] = p
	}
	b.SetVolume(opts.Volume)
	return b
}

// Play restarts the sound from the beginning. It does not wait for playback
// and unknown IDs are ignored.
func (b *Bank) Play(id ID) {
	if b.muted {
		return
	}
	player, ok := b.players[id]
	if !ok {
		log.Warn("No player for sound %s", id)
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn("Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	log.Trace("Playing sound %s", id)
}

func (b *Bank) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	b.volume = volume
	for _, p := range b.players {
		p.SetVolume(volume)
	}
}

func (b *Bank) Volume() float64 {
	return b.volume
}

func (b *Bank) Muted() bool {
	return b.muted
}

// ToggleMute flips the mute state and returns the new state.
func (b *Bank) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

// Validate returns an error if any of the given IDs has no player.
func (b *Bank) Validate(ids ...ID) error {
	for _, id := range ids {
		if _, ok := b.players[id]; !ok {
			return fmt.Errorf("missing sound %s", id)
		}
	}
	return nil
}

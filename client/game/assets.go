package game

import (
	"fmt"

	"github.com/cbodonnell/flappy/client/resources"
	"github.com/cbodonnell/flappy/client/scenes"
	"github.com/cbodonnell/flappy/client/sounds"
	"github.com/cbodonnell/flappy/pkg/config"
	"github.com/cbodonnell/flappy/pkg/log"
)

// LoadSprites decodes every image of the play scene.
func LoadSprites(m *resources.Manager, assets config.Assets) (scenes.Sprites, error) {
	background, err := m.LoadImage(assets.Background)
	if err != nil {
		return scenes.Sprites{}, fmt.Errorf("failed to load background: %v", err)
	}
	bird, err := m.LoadImages(assets.Bird)
	if err != nil {
		return scenes.Sprites{}, fmt.Errorf("failed to load bird frames: %v", err)
	}
	pipe, err := m.LoadImage(assets.Pipe)
	if err != nil {
		return scenes.Sprites{}, fmt.Errorf("failed to load pipe: %v", err)
	}
	digits, err := m.LoadImages(assets.Digits)
	if err != nil {
		return scenes.Sprites{}, fmt.Errorf("failed to load digits: %v", err)
	}

	log.Debug("Loaded %d sprites", 2+len(bird)+len(digits))

	return scenes.Sprites{
		Background: background,
		Bird:       bird,
		Pipe:       pipe,
		Digits:     digits,
	}, nil
}

// SoundPaths maps each sound effect to its file.
func SoundPaths(s config.Sounds) map[sounds.ID]string {
	return map[sounds.ID]string{
		sounds.Flap:  s.Flap,
		sounds.Hit:   s.Hit,
		sounds.Fall:  s.Fall,
		sounds.Point: s.Point,
	}
}

// LoadSounds creates a player for every sound effect.
func LoadSounds(m *resources.Manager, s config.Sounds) (map[sounds.ID]sounds.Player, error) {
	players := make(map[sounds.ID]sounds.Player)
	for id, p := range SoundPaths(s) {
		player, err := m.LoadSound(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s sound: %v", id, err)
		}
		players[id] = player
	}
	return players, nil
}

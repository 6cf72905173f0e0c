package resources

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/cbodonnell/flappy/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Manager loads images and sound effects from a file system and caches them by path,
// so every asset is decoded once per session.
// It is not safe for concurrent use; all loading happens on the game goroutine at startup.
type Manager struct {
	fsys         fs.FS
	audioContext *audio.Context

	imageCache map[string]*ebiten.Image
	soundCache map[string]*audio.Player
}

// NewManager creates a manager reading from fsys. audioContext may be nil
// when no sounds are loaded.
func NewManager(fsys fs.FS, audioContext *audio.Context) *Manager {
	return &Manager{
		fsys:         fsys,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		soundCache:   make(map[string]*audio.Player),
	}
}

// DecodeImage decodes a PNG from raw bytes.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return img, nil
}

// LoadImage returns the image at p, decoding it on first use.
func (m *Manager) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := m.imageCache[p]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %v", p, err)
	}
	decoded, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %v", p, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	m.imageCache[p] = img
	log.Trace("Loaded image %s (%dx%d)", p, img.Bounds().Dx(), img.Bounds().Dy())

	return img, nil
}

// LoadImages loads every path in order.
func (m *Manager) LoadImages(paths []string) ([]*ebiten.Image, error) {
	images := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := m.LoadImage(p)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// DecodeSound decodes a sound effect by file extension.
// Supported formats are .wav, .ogg and .mp3.
func DecodeSound(name string, data []byte) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		return wav.DecodeWithoutResampling(reader)
	case ".ogg":
		return vorbis.DecodeWithoutResampling(reader)
	case ".mp3":
		return mp3.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}

// LoadSound returns a player for the one-shot sound effect at p.
func (m *Manager) LoadSound(p string) (*audio.Player, error) {
	if player, ok := m.soundCache[p]; ok {
		return player, nil
	}
	if m.audioContext == nil {
		return nil, fmt.Errorf("failed to load sound %s: no audio context", p)
	}

	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %v", p, err)
	}
	stream, err := DecodeSound(p, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %v", p, err)
	}
	player, err := m.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %v", p, err)
	}

	m.soundCache[p] = player
	log.Trace("Loaded sound %s", p)

	return player, nil
}

package input

import (
	"github.com/cbodonnell/flappy/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JumpKey is the key that makes the bird flap, or respawns it when dead.
const JumpKey = ebiten.KeySpace

type EventType int

const (
	EventTypeKeyDown EventType = iota
	EventTypeQuit
)

func (t EventType) String() string {
	switch t {
	case EventTypeKeyDown:
		return "KeyDown"
	case EventTypeQuit:
		return "Quit"
	}
	return "Unknown"
}

// Event is a single discrete input.
type Event struct {
	Type EventType
	// Key is the key code of a KeyDown event.
	Key ebiten.Key
}

func KeyDown(key ebiten.Key) Event {
	return Event{Type: EventTypeKeyDown, Key: key}
}

func Quit() Event {
	return Event{Type: EventTypeQuit}
}

// IsJump returns a boolean value indicating whether the event is a jump input.
func (e Event) IsJump() bool {
	return e.Type == EventTypeKeyDown && e.Key == JumpKey
}

// IsQuit returns a boolean value indicating whether the event ends the session.
func (e Event) IsQuit() bool {
	return e.Type == EventTypeQuit
}

// Poller turns the input state of the current tick into events.
type Poller struct {
	keys       []ebiten.Key
	touchIDs   []ebiten.TouchID
	gamepadIDs []ebiten.GamepadID
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll enqueues the events of the current tick. It never blocks.
func (p *Poller) Poll(q queue.Queue[Event]) error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return q.Enqueue(Quit())
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, e := range KeyEvents(p.keys, p.isPointerJustPressed()) {
		if err := q.Enqueue(e); err != nil {
			return err
		}
	}

	return nil
}

// KeyEvents returns a KeyDown event per just pressed key. A pointer press adds
// a jump, unless the jump key was pressed in the same tick.
func KeyEvents(keys []ebiten.Key, pointer bool) []Event {
	events := make([]Event, 0, len(keys)+1)
	jumped := false
	for _, key := range keys {
		events = append(events, KeyDown(key))
		if key == JumpKey {
			jumped = true
		}
	}
	if pointer && !jumped {
		events = append(events, KeyDown(JumpKey))
	}
	return events
}

// isPointerJustPressed returns a boolean value indicating whether a mouse, touch or
// gamepad button was just pressed. These all stand in for the jump key.
func (p *Poller) isPointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		return true
	}
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, g := range p.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

package scenes

import (
	"fmt"

	"github.com/cbodonnell/flappy/client/input"
	"github.com/cbodonnell/flappy/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	ReceiveEvent(e input.Event)
	GetObject(name string) (objects.GameObject, bool)
}

// BaseScene owns a fixed set of objects and forwards every call to each of
// them in the order they were added.
type BaseScene struct {
	objects *objects.Registry
}

var _ Scene = &BaseScene{}

func NewBaseScene() *BaseScene {
	return &BaseScene{
		objects: objects.NewRegistry(),
	}
}

// Add registers obj under name. Names are unique within a scene.
func (s *BaseScene) Add(name string, obj objects.GameObject) error {
	if err := s.objects.Add(name, obj); err != nil {
		return fmt.Errorf("failed to add %s to scene: %v", name, err)
	}
	return nil
}

func (s *BaseScene) GetObject(name string) (objects.GameObject, bool) {
	return s.objects.Get(name)
}

// Objects returns the owned objects in dispatch order.
func (s *BaseScene) Objects() []objects.GameObject {
	return s.objects.All()
}

func (s *BaseScene) Init() error {
	for _, obj := range s.objects.All() {
		if err := obj.Init(); err != nil {
			return fmt.Errorf("failed to initialize %s: %v", obj.GetID(), err)
		}
	}
	return nil
}

func (s *BaseScene) Destroy() error {
	for _, obj := range s.objects.All() {
		if err := obj.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy %s: %v", obj.GetID(), err)
		}
	}
	return nil
}

func (s *BaseScene) ReceiveEvent(e input.Event) {
	for _, obj := range s.objects.All() {
		obj.ReceiveEvent(e)
	}
}

func (s *BaseScene) Update() error {
	for _, obj := range s.objects.All() {
		if err := obj.Update(); err != nil {
			return fmt.Errorf("failed to update %s: %v", obj.GetID(), err)
		}
	}
	return nil
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	for _, obj := range s.objects.All() {
		obj.Draw(screen)
	}
}

package objects

import "fmt"

// Registry is an insertion ordered set of objects keyed by id.
type Registry struct {
	order        []GameObject
	idxIDObjects map[string]GameObject
}

func NewRegistry() *Registry {
	return &Registry{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (r *Registry) Add(id string, obj GameObject) error {
	if _, ok := r.idxIDObjects[id]; ok {
		return fmt.Errorf("object with id %s already exists", id)
	}
	r.idxIDObjects[id] = obj
	r.order = append(r.order, obj)
	return nil
}

// Get returns the object registered under id.
func (r *Registry) Get(id string) (GameObject, bool) {
	obj, ok := r.idxIDObjects[id]
	return obj, ok
}

// All returns the objects in insertion order. The slice must not be modified.
func (r *Registry) All() []GameObject {
	return r.order
}

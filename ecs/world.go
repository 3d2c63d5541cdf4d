package ecs

import (
	"sort"

	"github.com/milk9111/hover/ecs/component"
)

// World owns entities, components, and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// Releaser is implemented by components that hold subscriptions or other
// resources. DestroyEntity calls Release before dropping the component.
type Releaser interface {
	Release()
}

// DestroyEntity releases and removes every component of e and invalidates
// the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, s := range w.stores {
		if r, ok := s.Get(id).(Releaser); ok {
			r.Release()
		}
		s.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation-slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent sets the component of the given kind on e.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(int(e.id()), value)
	return nil
}

// RemoveComponent reports whether a component was removed.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	s := w.store(kind.ID(), false)
	if !s.Has(int(e.id())) {
		return false
	}
	s.Remove(int(e.id()))
	return true
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(int(e.id()))
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !w.HasComponent(e, kind) {
		return nil, false
	}
	return w.store(kind.ID(), false).Get(int(e.id())), true
}

// Query returns live entities having every kind, ordered by entity slot.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	ids := intersect(sets...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-slot live entity having kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

package system

import (
	"log"

	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

// HoverSystem drives a hover.Tracker from the Ebitengine cursor.
type HoverSystem struct {
	view    *EbitenView
	index   *SpatialIndex
	scene   *Scene
	tracker *hover.Tracker
}

func NewHoverSystem(view *EbitenView, cfg hover.Config, logger *log.Logger) *HoverSystem {
	s := &HoverSystem{
		view:  view,
		index: NewSpatialIndex(),
	}
	s.tracker = hover.NewTracker(s.currentScene, view, cfg)
	s.tracker.SetLogger(logger)
	return s
}

func (s *HoverSystem) currentScene() hover.Scene {
	if s.scene == nil {
		return nil
	}
	return s.scene
}

// Start subscribes the tracker to the view.
func (s *HoverSystem) Start() bool {
	if !hover.IsSupported(s.view) {
		log.Printf("hover: view does not deliver pointer events")
		return false
	}
	return s.tracker.Start()
}

func (s *HoverSystem) Stop() {
	s.tracker.Stop()
}

func (s *HoverSystem) Tracker() *hover.Tracker {
	return s.tracker
}

func (s *HoverSystem) View() *EbitenView {
	return s.view
}

// Focused returns the focused node, if any.
func (s *HoverSystem) Focused() (Node, bool) {
	t, ok := s.tracker.Focused()
	if !ok {
		return Node{}, false
	}
	n, ok := t.(Node)
	return n, ok
}

// Reset drops focus without emitting events and unbinds the scene. The next
// Update binds whatever world it is given.
func (s *HoverSystem) Reset() {
	s.tracker.Reset()
	s.index.Clear()
	s.scene = nil
}

// Update binds the scene to w and polls the view. Switching worlds drops
// focus without emitting events.
func (s *HoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.scene == nil || s.scene.World() != w {
		s.Reset()
		s.scene = NewScene(w, s.index)
	}
	s.view.Poll()
}

// RecordHoverEvents mirrors e's hover triggers into the world event queue.
func RecordHoverEvents(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.HoverableComponent)
	if !ok {
		return
	}
	push := func(ev hover.Event) {
		w.Events().Push(ecs.Event{Type: string(ev.Type()), Entity: e, Data: ev})
	}
	if c.Hovered != nil {
		c.Hovered.Add(func(ev hover.HoveredEvent) { push(ev) })
	}
	if c.Hovering != nil {
		c.Hovering.Add(func(ev hover.HoveringEvent) { push(ev) })
	}
	if c.Unhovered != nil {
		c.Unhovered.Add(func(ev hover.UnhoveredEvent) { push(ev) })
	}
}

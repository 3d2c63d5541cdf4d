package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

// maxParentDepth bounds Parent chain walks so a cycle cannot hang a frame.
const maxParentDepth = 64

// Scene exposes an ECS world to the hover tracker.
type Scene struct {
	world *ecs.World
	index *SpatialIndex
}

// NewScene wraps w. A nil index makes point queries scan every sized entity.
func NewScene(w *ecs.World, index *SpatialIndex) *Scene {
	return &Scene{world: w, index: index}
}

func (s *Scene) World() *ecs.World {
	if s == nil {
		return nil
	}
	return s.world
}

// Node returns the scene node for e.
func (s *Scene) Node(e ecs.Entity) Node {
	return Node{world: s.World(), entity: e}
}

// FindPointSource returns the topmost touchable, visible, sized entity whose
// local rectangle contains p.
func (s *Scene) FindPointSource(p hover.Point) hover.Target {
	if s == nil || s.world == nil {
		return nil
	}
	var candidates []ecs.Entity
	if s.index != nil {
		s.index.Sync(s.world)
		candidates = s.index.Candidates(p)
	} else {
		candidates = s.world.Query(component.SizeComponent.Kind(), component.TouchableComponent.Kind())
	}
	SortDrawOrder(s.world, candidates)

	for i := len(candidates) - 1; i >= 0; i-- {
		e := candidates[i]
		if !hitTestable(s.world, e) {
			continue
		}
		size, _ := ecs.Get(s.world, e, component.SizeComponent)
		local, ok := localPoint(s.world, e, p)
		if !ok {
			continue
		}
		if local.X >= 0 && local.X <= size.W && local.Y >= 0 && local.Y <= size.H {
			return Node{world: s.world, entity: e}
		}
	}
	return nil
}

// Camera returns the first entity carrying both Camera and Transform.
func (s *Scene) Camera() (hover.Camera, bool) {
	if s == nil || s.world == nil {
		return hover.Camera{}, false
	}
	e, ok := s.world.First(component.CameraComponent.Kind())
	if !ok {
		return hover.Camera{}, false
	}
	return cameraOf(s.world, e)
}

func cameraOf(w *ecs.World, e ecs.Entity) (hover.Camera, bool) {
	cam, ok := ecs.Get(w, e, component.CameraComponent)
	if !ok {
		return hover.Camera{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return hover.Camera{}, false
	}
	return hover.Camera{
		X:       t.X,
		Y:       t.Y,
		Width:   cam.Width,
		Height:  cam.Height,
		ScaleX:  cam.ScaleX,
		ScaleY:  cam.ScaleY,
		AnchorX: cam.AnchorX,
		AnchorY: cam.AnchorY,
	}, true
}

func hitTestable(w *ecs.World, e ecs.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	if !ecs.Has(w, e, component.TouchableComponent) || ecs.Has(w, e, component.HiddenComponent) {
		return false
	}
	size, ok := ecs.Get(w, e, component.SizeComponent)
	return ok && size.W > 0 && size.H > 0
}

// SortDrawOrder sorts entities back to front: ascending RenderLayer, then slot.
func SortDrawOrder(w *ecs.World, entities []ecs.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		li := renderLayer(w, entities[i])
		lj := renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return entities[i].Slot() < entities[j].Slot()
	})
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return 0
}

// LocalGeoM returns e's transform relative to its parent.
func LocalGeoM(w *ecs.World, e ecs.Entity) ebiten.GeoM {
	var g ebiten.GeoM
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return g
	}
	if size, ok := ecs.Get(w, e, component.SizeComponent); ok {
		g.Translate(-t.AnchorX*size.W, -t.AnchorY*size.H)
	}
	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	g.Scale(sx, sy)
	g.Rotate(t.Rotation)
	g.Translate(t.X, t.Y)
	return g
}

// WorldGeoM maps e's local space into scene space through its Parent chain.
func WorldGeoM(w *ecs.World, e ecs.Entity) ebiten.GeoM {
	g := LocalGeoM(w, e)
	cur := e
	for depth := 0; depth < maxParentDepth; depth++ {
		p, ok := ecs.Get(w, cur, component.ParentComponent)
		if !ok || p.Entity == 0 {
			break
		}
		parent := ecs.Entity(p.Entity)
		if parent == e || !w.IsAlive(parent) {
			break
		}
		g.Concat(LocalGeoM(w, parent))
		cur = parent
	}
	return g
}

func localPoint(w *ecs.World, e ecs.Entity, p hover.Point) (hover.Point, bool) {
	g := WorldGeoM(w, e)
	if !g.IsInvertible() {
		return hover.Point{}, false
	}
	g.Invert()
	x, y := g.Apply(p.X, p.Y)
	return hover.Point{X: x, Y: y}, true
}

// Node is an entity viewed as a hover target.
type Node struct {
	world  *ecs.World
	entity ecs.Entity
}

func (n Node) Entity() ecs.Entity {
	return n.entity
}

// GlobalToLocal maps a scene point into the node's local space. A singular
// transform maps every point to the local origin.
func (n Node) GlobalToLocal(p hover.Point) hover.Point {
	if n.world == nil {
		return p
	}
	local, _ := localPoint(n.world, n.entity, p)
	return local
}

// LocalToGlobal maps a local point into scene space.
func (n Node) LocalToGlobal(p hover.Point) hover.Point {
	if n.world == nil {
		return p
	}
	g := WorldGeoM(n.world, n.entity)
	x, y := g.Apply(p.X, p.Y)
	return hover.Point{X: x, Y: y}
}

func (n Node) HoverCapability() *hover.Capability {
	if n.world == nil {
		return nil
	}
	c, ok := ecs.Get(n.world, n.entity, component.HoverableComponent)
	if !ok {
		return nil
	}
	return c
}

func (n Node) AttachHoverCapability() *hover.Capability {
	if c := n.HoverCapability(); c != nil {
		return c
	}
	c := &component.Hoverable{}
	if err := ecs.Add(n.world, n.entity, component.HoverableComponent, c); err != nil {
		return nil
	}
	return c
}

func (n Node) DetachHoverCapability() {
	if n.world == nil {
		return
	}
	ecs.Remove(n.world, n.entity, component.HoverableComponent)
}

func (n Node) SetTouchable(touchable bool) {
	if n.world == nil {
		return
	}
	if touchable {
		_ = ecs.Add(n.world, n.entity, component.TouchableComponent, &component.Touchable{})
		return
	}
	ecs.Remove(n.world, n.entity, component.TouchableComponent)
}

func (n Node) Alive() bool {
	return n.world != nil && n.world.IsAlive(n.entity)
}

// Title returns the node's hover title, or "".
func (n Node) Title() string {
	if c := n.HoverCapability(); c != nil {
		return c.Title
	}
	return ""
}

func (n Node) String() string {
	if n.world != nil {
		if name, ok := ecs.Get(n.world, n.entity, component.NameComponent); ok && name.Value != "" {
			return name.Value
		}
	}
	return "entity " + n.entity.String()
}

// NewNode returns the scene node for e in w.
func NewNode(w *ecs.World, e ecs.Entity) Node {
	return Node{world: w, entity: e}
}

package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

// SpatialIndex keeps one static box per hit-testable entity in a Chipmunk
// space so point queries only test entities whose bounds contain the point.
type SpatialIndex struct {
	space         *cp.Space
	entries       map[ecs.Entity]*indexEntry
	shapeToEntity map[*cp.Shape]ecs.Entity
}

type indexEntry struct {
	shape *cp.Shape
	bb    cp.BB
	seen  bool
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		space:         cp.NewSpace(),
		entries:       make(map[ecs.Entity]*indexEntry),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
	}
}

// Len returns the number of indexed entities.
func (si *SpatialIndex) Len() int {
	if si == nil {
		return 0
	}
	return len(si.entries)
}

// Sync brings the index in line with w. Shapes are rebuilt only when an
// entity's bounds changed.
func (si *SpatialIndex) Sync(w *ecs.World) {
	if si == nil || w == nil {
		return
	}
	for _, entry := range si.entries {
		entry.seen = false
	}

	for _, e := range w.Query(component.SizeComponent.Kind(), component.TouchableComponent.Kind()) {
		if !hitTestable(w, e) {
			continue
		}
		bb, ok := WorldBounds(w, e)
		if !ok {
			continue
		}
		entry, exists := si.entries[e]
		if exists && entry.bb == bb {
			entry.seen = true
			continue
		}
		if exists {
			si.removeShape(entry)
		}
		shape := cp.NewBox2(si.space.StaticBody, bb, 0)
		si.space.AddShape(shape)
		si.shapeToEntity[shape] = e
		si.entries[e] = &indexEntry{shape: shape, bb: bb, seen: true}
	}

	for e, entry := range si.entries {
		if entry.seen {
			continue
		}
		si.removeShape(entry)
		delete(si.entries, e)
	}
}

// Candidates returns the entities whose bounds contain p, in no particular order.
func (si *SpatialIndex) Candidates(p hover.Point) []ecs.Entity {
	if si == nil || si.space == nil {
		return nil
	}
	var out []ecs.Entity
	bb := cp.BB{L: p.X, B: p.Y, R: p.X, T: p.Y}
	si.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		if e, ok := si.shapeToEntity[shape]; ok {
			out = append(out, e)
		}
	}, nil)
	return out
}

// Clear drops every shape.
func (si *SpatialIndex) Clear() {
	if si == nil {
		return
	}
	for e, entry := range si.entries {
		si.removeShape(entry)
		delete(si.entries, e)
	}
}

func (si *SpatialIndex) removeShape(entry *indexEntry) {
	if entry == nil || entry.shape == nil {
		return
	}
	delete(si.shapeToEntity, entry.shape)
	si.space.RemoveShape(entry.shape)
	entry.shape = nil
}

// WorldBounds returns the scene-space AABB of e's transformed Size rect.
func WorldBounds(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	size, ok := ecs.Get(w, e, component.SizeComponent)
	if !ok {
		return cp.BB{}, false
	}
	g := WorldGeoM(w, e)
	corners := [4][2]float64{{0, 0}, {size.W, 0}, {0, size.H}, {size.W, size.H}}
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, c := range corners {
		x, y := g.Apply(c[0], c[1])
		bb.L = math.Min(bb.L, x)
		bb.R = math.Max(bb.R, x)
		bb.B = math.Min(bb.B, y)
		bb.T = math.Max(bb.T, y)
	}
	return bb, true
}

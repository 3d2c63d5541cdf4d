package system

import (
	"testing"

	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

func TestSpatialIndexSync(t *testing.T) {
	w := ecs.NewWorld()
	si := NewSpatialIndex()

	a := spawnBox(t, w, component.Transform{X: 0, Y: 0}, 10, 10)
	b := spawnBox(t, w, component.Transform{X: 50, Y: 50}, 10, 10)
	si.Sync(w)
	if si.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", si.Len())
	}

	got := si.Candidates(hover.Point{X: 5, Y: 5})
	if len(got) != 1 || got[0] != a {
		t.Fatalf("expected only a, got %v", got)
	}

	// Moving b rebuilds its shape.
	tr, _ := ecs.Get(w, b, component.TransformComponent)
	tr.X, tr.Y = 0, 0
	si.Sync(w)
	if got := si.Candidates(hover.Point{X: 5, Y: 5}); len(got) != 2 {
		t.Fatalf("expected a and b after move, got %v", got)
	}
	if got := si.Candidates(hover.Point{X: 55, Y: 55}); len(got) != 0 {
		t.Fatalf("stale shape left behind: %v", got)
	}

	ecs.Remove(w, a, component.TouchableComponent)
	w.DestroyEntity(b)
	si.Sync(w)
	if si.Len() != 0 {
		t.Fatalf("expected empty index, got %d", si.Len())
	}
	if got := si.Candidates(hover.Point{X: 5, Y: 5}); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestWorldBoundsRotated(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnBox(t, w, component.Transform{X: 100, Y: 100, AnchorX: 0.5, AnchorY: 0.5, Rotation: 3.141592653589793 / 2}, 20, 10)
	bb, ok := WorldBounds(w, e)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if !near(hover.Point{X: bb.L, Y: bb.B}, hover.Point{X: 95, Y: 90}) || !near(hover.Point{X: bb.R, Y: bb.T}, hover.Point{X: 105, Y: 110}) {
		t.Fatalf("unexpected bounds %+v", bb)
	}
}

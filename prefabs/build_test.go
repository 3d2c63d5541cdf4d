package prefabs

import (
	"image/color"
	"testing"

	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/ecs/system"
	"github.com/milk9111/hover/hover"
)

type recordingView struct {
	cursor  string
	tooltip string
}

func (v *recordingView) Origin() hover.Point     { return hover.Point{} }
func (v *recordingView) SetCursor(cursor string) { v.cursor = cursor }
func (v *recordingView) SetTooltip(title string) { v.tooltip = title }

type sampleScene struct {
	world   *ecs.World
	built   *Built
	view    *recordingView
	tracker *hover.Tracker
	scripts *system.HoverScriptSystem
}

func newSampleScene(t *testing.T) *sampleScene {
	t.Helper()
	spec, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	w := ecs.NewWorld()
	built, err := BuildScene(w, spec, Deps{Width: 640, Height: 360})
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	scene := system.NewScene(w, system.NewSpatialIndex())
	view := &recordingView{}
	s := &sampleScene{
		world:   w,
		built:   built,
		view:    view,
		tracker: hover.NewTracker(func() hover.Scene { return scene }, view, hover.Config{ShowTooltip: true}),
		scripts: system.NewHoverScriptSystem(LoadScript),
	}
	s.scripts.Update(w)
	return s
}

// moveScene moves the pointer to the window point showing scene point (x, y).
// The sample camera has origin (-160,-90) and scale 1.25.
func (s *sampleScene) moveScene(x, y float64) {
	s.tracker.HandlePointer(hover.PointerEvent{
		Kind:  hover.PointerMove,
		PageX: (x + 160) / 1.25,
		PageY: (y + 90) / 1.25,
	})
}

func TestBuildSceneLayout(t *testing.T) {
	s := newSampleScene(t)
	b := s.built

	if len(b.Sprites) != 5 || len(b.Rects) != 5 || len(b.Labels) != 5 {
		t.Fatalf("expected five rows, got %d/%d/%d", len(b.Sprites), len(b.Rects), len(b.Labels))
	}
	if !b.Pan {
		t.Fatalf("expected camera pan")
	}
	cam, ok := ecs.Get(s.world, b.Camera, component.CameraComponent)
	if !ok || cam.Width != 640 || cam.Height != 360 || cam.ScaleX != 1.25 {
		t.Fatalf("unexpected camera %+v", cam)
	}

	for i, e := range b.Rects {
		tr, _ := ecs.Get(s.world, e, component.TransformComponent)
		if tr.X != 40 || tr.Y != float64(i)*50+20 {
			t.Fatalf("rect %d at (%v,%v)", i, tr.X, tr.Y)
		}
		if !ecs.Has(s.world, e, component.TouchableComponent) {
			t.Fatalf("rect %d should be touchable", i)
		}
	}

	c, _ := ecs.Get(s.world, b.Named["aco3"], component.HoverableComponent)
	if c == nil || c.Title != "aco3: hello!" {
		t.Fatalf("unexpected aco3 capability %+v", c)
	}
	label, _ := ecs.Get(s.world, b.Named["label2"], component.LabelComponent)
	if label.Text != "test2" {
		t.Fatalf("unexpected label text %q", label.Text)
	}

	handle := b.Named["probe_handle"]
	p, ok := ecs.Get(s.world, handle, component.ParentComponent)
	if !ok || ecs.Entity(p.Entity) != b.Named["probe"] {
		t.Fatalf("probe_handle should be parented to probe")
	}
	if got := system.NewNode(s.world, handle).LocalToGlobal(hover.Point{}); got != (hover.Point{X: 300, Y: 50}) {
		t.Fatalf("probe_handle world origin = %v", got)
	}
}

func TestSampleSpriteHover(t *testing.T) {
	s := newSampleScene(t)
	aco := s.built.Named["aco1"]

	s.moveScene(20, 24)
	sprite, _ := ecs.Get(s.world, aco, component.FrameSpriteComponent)
	if !sprite.Playing {
		t.Fatalf("sprite should play while hovered")
	}
	if s.view.tooltip != "aco1: hello!" || s.view.cursor != hover.DefaultCursor {
		t.Fatalf("unexpected view state cursor=%q tooltip=%q", s.view.cursor, s.view.tooltip)
	}

	// Moving onto the rect transfers focus and stops the sprite.
	s.moveScene(50, 30)
	if sprite.Playing {
		t.Fatalf("sprite should stop after focus moved away")
	}
	if s.view.tooltip != "" {
		t.Fatalf("rect has no title, tooltip should clear, got %q", s.view.tooltip)
	}
}

func TestSampleRectScript(t *testing.T) {
	s := newSampleScene(t)
	rect := s.built.Named["rect1"]
	fill := func() color.NRGBA {
		r, _ := ecs.Get(s.world, rect, component.FilledRectComponent)
		return color.NRGBAModel.Convert(r.Color).(color.NRGBA)
	}

	s.moveScene(50, 30)
	if got := fill(); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected red rect while hovered, got %v", got)
	}
	s.tracker.HandlePointer(hover.PointerEvent{Kind: hover.PointerLeave})
	if got := fill(); got != (color.NRGBA{A: 0xff}) {
		t.Fatalf("expected black rect after leave, got %v", got)
	}
}

func TestSampleLabelDrift(t *testing.T) {
	s := newSampleScene(t)
	e := s.built.Named["label1"]

	s.moveScene(70, 25)
	label, _ := ecs.Get(s.world, e, component.LabelComponent)
	if label.Text != "hover!" || color.NRGBAModel.Convert(label.Color).(color.NRGBA) != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected red hover label, got %q %v", label.Text, label.Color)
	}

	// One window pixel right is 1.25 scene units; the label backs off by the
	// window delta.
	s.tracker.HandlePointer(hover.PointerEvent{Kind: hover.PointerMove, PageX: (70+160)/1.25 + 4, PageY: (25 + 90) / 1.25})
	tr, _ := ecs.Get(s.world, e, component.TransformComponent)
	if tr.X != 61 || tr.Y != 18 {
		t.Fatalf("expected label at (61,18), got (%v,%v)", tr.X, tr.Y)
	}

	s.tracker.HandlePointer(hover.PointerEvent{Kind: hover.PointerLeave})
	if label.Text != "test1" {
		t.Fatalf("expected label restored, got %q", label.Text)
	}
}

func TestSampleEventsRecorded(t *testing.T) {
	s := newSampleScene(t)
	s.world.Events().Drain()

	s.moveScene(50, 30)
	s.moveScene(51, 31)
	s.moveScene(-100, -50)

	var types []string
	for _, ev := range s.world.Events().Drain() {
		if ev.Entity != s.built.Named["rect1"] {
			t.Fatalf("unexpected entity %v", ev.Entity)
		}
		types = append(types, ev.Type)
	}
	want := []string{"hovered", "hovering", "unhovered"}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("got %v, want %v", types, want)
		}
	}
}

func TestBuildSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		world *ecs.World
		spec  SceneSpec
	}{
		{"nil_world", nil, SceneSpec{}},
		{"negative_rows", ecs.NewWorld(), SceneSpec{Rows: RowsSpec{Count: -1}}},
		{"unknown_parent", ecs.NewWorld(), SceneSpec{Entities: []EntitySpec{{Name: "a", Parent: "ghost"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildScene(tc.world, tc.spec, Deps{}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

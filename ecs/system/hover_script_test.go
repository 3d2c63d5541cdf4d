package system

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

const testRectScript = `
if event.type == "hovered" {
	self.fill = "#ff0000"
} else if event.type == "unhovered" {
	self.fill = "#000000"
}
`

const testLabelScript = `
if event.type == "hovering" {
	self.text = "dx=" + string(event.start_dx)
}
`

func scriptLoader(scripts map[string]string) ScriptLoader {
	return func(path string) ([]byte, error) {
		src, ok := scripts[path]
		if !ok {
			return nil, errors.New("not found")
		}
		return []byte(src), nil
	}
}

func spawnScripted(t *testing.T, w *ecs.World, path string) (ecs.Entity, *component.Hoverable) {
	t.Helper()
	e := spawnBox(t, w, component.Transform{}, 20, 20)
	_ = ecs.Add(w, e, component.FilledRectComponent, &component.FilledRect{Color: color.NRGBA{A: 0xff}})
	_ = ecs.Add(w, e, component.LabelComponent, &component.Label{Text: "test1"})
	_ = ecs.Add(w, e, component.HoverScriptComponent, &component.HoverScript{Path: path})
	n := hover.Grant(Node{world: w, entity: e})
	return e, n.HoverCapability()
}

func fillOf(w *ecs.World, e ecs.Entity) color.NRGBA {
	rect, _ := ecs.Get(w, e, component.FilledRectComponent)
	return color.NRGBAModel.Convert(rect.Color).(color.NRGBA)
}

func TestHoverScriptSystemFill(t *testing.T) {
	w := ecs.NewWorld()
	s := NewHoverScriptSystem(scriptLoader(map[string]string{"rect.tengo": testRectScript}))
	e, c := spawnScripted(t, w, "rect.tengo")

	s.Update(w)
	hs, _ := ecs.Get(w, e, component.HoverScriptComponent)
	if !hs.Bound {
		t.Fatalf("expected script to be bound")
	}

	c.Hovered.Fire(hover.NewHoveredEvent(hover.Point{X: 1, Y: 1}))
	if got := fillOf(w, e); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected red after hovered, got %v", got)
	}
	c.Unhovered.Fire(hover.NewUnhoveredEvent(hover.Point{}, hover.Point{}, hover.Point{}))
	if got := fillOf(w, e); got != (color.NRGBA{A: 0xff}) {
		t.Fatalf("expected black after unhovered, got %v", got)
	}

	// A second update must not bind twice.
	s.Update(w)
	if c.Hovered.Len() != 1 {
		t.Fatalf("expected a single script subscription, got %d", c.Hovered.Len())
	}
}

func TestHoverScriptSystemText(t *testing.T) {
	w := ecs.NewWorld()
	s := NewHoverScriptSystem(scriptLoader(map[string]string{"label.tengo": testLabelScript}))
	e, c := spawnScripted(t, w, "label.tengo")
	ecs.Remove(w, e, component.FilledRectComponent)
	s.Update(w)

	c.Hovering.Fire(hover.NewHoveringEvent(hover.Point{}, hover.Point{X: 3}, hover.Point{X: 1}))
	label, _ := ecs.Get(w, e, component.LabelComponent)
	if label.Text != "dx=3.0" && label.Text != "dx=3" {
		t.Fatalf("unexpected label text %q", label.Text)
	}
	size, _ := ecs.Get(w, e, component.SizeComponent)
	wantW, _ := MeasureLabel(label)
	if size.W != wantW {
		t.Fatalf("label size should follow text: got %v, want %v", size.W, wantW)
	}
}

func TestHoverScriptSystemRebindsAfterRegrant(t *testing.T) {
	w := ecs.NewWorld()
	s := NewHoverScriptSystem(scriptLoader(map[string]string{"rect.tengo": testRectScript}))
	e, _ := spawnScripted(t, w, "rect.tengo")
	s.Update(w)

	n := Node{world: w, entity: e}
	hover.Revoke(n)
	s.Update(w)
	if len(s.runtimes) != 0 {
		t.Fatalf("expected runtime dropped after revoke, got %d", len(s.runtimes))
	}

	hover.Grant(n)
	s.Update(w)
	c := n.HoverCapability()
	c.Hovered.Fire(hover.NewHoveredEvent(hover.Point{}))
	if got := fillOf(w, e); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected script to run on new triggers, got %v", got)
	}
}

func TestHoverScriptSystemErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		scripts map[string]string
	}{
		{"missing", "nope.tengo", map[string]string{}},
		{"empty_path", "", map[string]string{}},
		{"compile_error", "bad.tengo", map[string]string{"bad.tengo": "if {"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			s := NewHoverScriptSystem(scriptLoader(tc.scripts))
			e, c := spawnScripted(t, w, tc.path)
			s.Update(w)
			hs, _ := ecs.Get(w, e, component.HoverScriptComponent)
			if hs.Bound || c.Hovered.Len() != 0 {
				t.Fatalf("expected no binding")
			}
		})
	}
}

func TestHoverScriptSystemReset(t *testing.T) {
	w := ecs.NewWorld()
	s := NewHoverScriptSystem(scriptLoader(map[string]string{"rect.tengo": testRectScript}))
	e, c := spawnScripted(t, w, "rect.tengo")
	s.Update(w)

	s.Reset()
	if len(s.runtimes) != 0 {
		t.Fatalf("expected no runtimes after reset, got %d", len(s.runtimes))
	}
	c.Hovered.Fire(hover.NewHoveredEvent(hover.Point{}))
	if got := fillOf(w, e); got != (color.NRGBA{A: 0xff}) {
		t.Fatalf("expected unbound script to leave fill, got %v", got)
	}

	s.Update(w)
	c.Hovered.Fire(hover.NewHoveredEvent(hover.Point{}))
	if got := fillOf(w, e); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected script rebound after reset, got %v", got)
	}
}

package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
)

// ScriptLoader returns the source of a script by path.
type ScriptLoader func(path string) ([]byte, error)

// HoverScriptSystem runs a tengo script on each hover event of entities
// carrying a HoverScript. The script sees `event` and `self` maps and may
// assign self.fill and self.text, which are written back to the entity's
// FilledRect and Label.
type HoverScriptSystem struct {
	load     ScriptLoader
	runtimes map[ecs.Entity]*hoverScriptRuntime
}

type hoverScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	hovered  *hover.Trigger[hover.HoveredEvent]
	handles  []hover.Handle
}

func NewHoverScriptSystem(load ScriptLoader) *HoverScriptSystem {
	return &HoverScriptSystem{
		load:     load,
		runtimes: make(map[ecs.Entity]*hoverScriptRuntime),
	}
}

// Update binds scripts to entities whose triggers changed since the last
// tick and forgets entities that are gone.
func (s *HoverScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for e, rt := range s.runtimes {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.HoverScriptComponent) || !ecs.Has(w, e, component.HoverableComponent) {
			rt.unbind()
			delete(s.runtimes, e)
		}
	}

	ecs.ForEach2(w, component.HoverScriptComponent, component.HoverableComponent, func(e ecs.Entity, hs *component.HoverScript, c *component.Hoverable) {
		rt := s.runtimes[e]
		if rt != nil && rt.path == hs.Path && rt.hovered == c.Hovered {
			return
		}
		if rt != nil {
			rt.unbind()
			delete(s.runtimes, e)
		}
		hs.Bound = false
		if c.Hovered == nil || c.Hovering == nil || c.Unhovered == nil {
			return
		}

		rt, err := s.compile(hs.Path)
		if err != nil {
			log.Printf("hover script: entity=%d load %s: %v", e, hs.Path, err)
			return
		}
		rt.bind(w, e, c)
		s.runtimes[e] = rt
		hs.Bound = true
	})
}

// Reset unbinds every script. Call it before switching worlds.
func (s *HoverScriptSystem) Reset() {
	for e, rt := range s.runtimes {
		rt.unbind()
		delete(s.runtimes, e)
	}
}

func (s *HoverScriptSystem) compile(path string) (*hoverScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	if s.load == nil {
		return nil, fmt.Errorf("no script loader")
	}
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("event", map[string]any{})
	_ = script.Add("self", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &hoverScriptRuntime{path: path, compiled: compiled}, nil
}

func (rt *hoverScriptRuntime) bind(w *ecs.World, e ecs.Entity, c *component.Hoverable) {
	rt.hovered = c.Hovered
	rt.handles = append(rt.handles,
		c.Hovered.Add(func(ev hover.HoveredEvent) {
			rt.dispatch(w, e, ev, hover.Point{}, hover.Point{})
		}),
		c.Hovering.Add(func(ev hover.HoveringEvent) {
			rt.dispatch(w, e, ev, ev.StartDelta, ev.PrevDelta)
		}),
		c.Unhovered.Add(func(ev hover.UnhoveredEvent) {
			rt.dispatch(w, e, ev, ev.StartDelta, ev.PrevDelta)
		}),
	)
}

func (rt *hoverScriptRuntime) unbind() {
	for _, h := range rt.handles {
		h.Remove()
	}
	rt.handles = nil
	rt.hovered = nil
}

func (rt *hoverScriptRuntime) dispatch(w *ecs.World, e ecs.Entity, ev hover.Event, start, prev hover.Point) {
	var p hover.Point
	switch v := ev.(type) {
	case hover.HoveredEvent:
		p = v.Point
	case hover.HoveringEvent:
		p = v.Point
	case hover.UnhoveredEvent:
		p = v.Point
	}
	event := map[string]any{
		"type":     string(ev.Type()),
		"x":        p.X,
		"y":        p.Y,
		"start_dx": start.X,
		"start_dy": start.Y,
		"prev_dx":  prev.X,
		"prev_dy":  prev.Y,
	}
	if err := rt.run(w, e, event); err != nil {
		log.Printf("hover script: entity=%d %s: %v", e, ev.Type(), err)
	}
}

func (rt *hoverScriptRuntime) run(w *ecs.World, e ecs.Entity, event map[string]any) error {
	self := map[string]any{"text": "", "fill": ""}
	if name, ok := ecs.Get(w, e, component.NameComponent); ok {
		self["name"] = name.Value
	}
	if label, ok := ecs.Get(w, e, component.LabelComponent); ok {
		self["text"] = label.Text
	}
	if rect, ok := ecs.Get(w, e, component.FilledRectComponent); ok {
		self["fill"] = FormatColor(rect.Color)
	}

	if err := rt.compiled.Set("event", event); err != nil {
		return err
	}
	if err := rt.compiled.Set("self", self); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return err
	}

	out := rt.compiled.Get("self").Map()
	if fill, ok := out["fill"].(string); ok && fill != "" {
		if rect, ok := ecs.Get(w, e, component.FilledRectComponent); ok {
			clr, err := ParseColor(fill)
			if err != nil {
				return err
			}
			rect.Color = clr
		}
	}
	if txt, ok := out["text"].(string); ok {
		if label, ok := ecs.Get(w, e, component.LabelComponent); ok && label.Text != txt {
			label.Text = txt
			// Labels on a filled box keep the box size.
			if !ecs.Has(w, e, component.FilledRectComponent) {
				FitLabel(w, e)
			}
		}
	}
	return nil
}

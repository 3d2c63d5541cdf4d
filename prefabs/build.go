package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/ecs/system"
	"github.com/milk9111/hover/hover"
)

// Deps carries what BuildScene cannot read from the spec.
type Deps struct {
	Width  float64
	Height float64
	// Frames feeds the row sprites; nil frames leave the sprites blank.
	Frames []*ebiten.Image
}

// Built lists what BuildScene spawned.
type Built struct {
	Camera  ecs.Entity
	Pan     bool
	Sprites []ecs.Entity
	Rects   []ecs.Entity
	Labels  []ecs.Entity
	Named   map[string]ecs.Entity
}

// BuildScene spawns spec into w. Every hoverable entity also mirrors its
// hover events into the world event queue.
func BuildScene(w *ecs.World, spec SceneSpec, deps Deps) (*Built, error) {
	if w == nil {
		return nil, fmt.Errorf("prefabs: build scene: nil world")
	}
	if spec.Rows.Count < 0 {
		return nil, fmt.Errorf("prefabs: build scene: negative row count %d", spec.Rows.Count)
	}

	b := &Built{Named: make(map[string]ecs.Entity)}
	b.Camera = buildCamera(w, spec.Camera, deps)
	b.Pan = spec.Camera.Pan
	b.Named["camera"] = b.Camera

	for i := 0; i < spec.Rows.Count; i++ {
		dy := float64(i) * spec.Rows.Spacing
		n := strconv.Itoa(i + 1)

		sprite, err := buildRowSprite(w, spec.Rows.Sprite, deps, dy, n)
		if err != nil {
			return nil, err
		}
		b.Sprites = append(b.Sprites, sprite)
		b.Named["aco"+n] = sprite

		rect, err := buildRowRect(w, spec.Rows.Rect, dy, n)
		if err != nil {
			return nil, err
		}
		b.Rects = append(b.Rects, rect)
		b.Named["rect"+n] = rect

		label, err := buildRowLabel(w, spec.Rows.Label, dy, n)
		if err != nil {
			return nil, err
		}
		b.Labels = append(b.Labels, label)
		b.Named["label"+n] = label
	}

	for _, es := range spec.Entities {
		e, err := buildEntity(w, es, b.Named)
		if err != nil {
			return nil, err
		}
		if es.Name != "" {
			b.Named[es.Name] = e
		}
	}
	return b, nil
}

func buildCamera(w *ecs.World, cs CameraSpec, deps Deps) ecs.Entity {
	e := w.CreateEntity()
	width, height := cs.Width, cs.Height
	if width == 0 {
		width = deps.Width
	}
	if height == 0 {
		height = deps.Height
	}
	_ = ecs.Add(w, e, component.NameComponent, &component.Name{Value: "camera"})
	_ = ecs.Add(w, e, component.TransformComponent, transformFromSpec(cs.Transform))
	_ = ecs.Add(w, e, component.CameraComponent, &component.Camera{
		Width:   width,
		Height:  height,
		ScaleX:  cs.ScaleX,
		ScaleY:  cs.ScaleY,
		AnchorX: cs.AnchorX,
		AnchorY: cs.AnchorY,
	})
	return e
}

func buildRowSprite(w *ecs.World, ss SpriteRowSpec, deps Deps, dy float64, n string) (ecs.Entity, error) {
	e, err := spawn(w, "aco"+n, ss.Transform, dy, &ss.Size)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.FrameSpriteComponent, &component.FrameSprite{
		Frames:   deps.Frames,
		Sequence: append([]int(nil), ss.Frames...),
		Interval: ss.Interval,
	}); err != nil {
		return 0, fmt.Errorf("prefabs: add sprite aco%s: %w", n, err)
	}

	c := grant(w, e, ss.Hover, n)
	c.Hovered.Add(func(hover.HoveredEvent) {
		if sprite, ok := ecs.Get(w, e, component.FrameSpriteComponent); ok {
			sprite.Playing = true
		}
	})
	c.Unhovered.Add(func(hover.UnhoveredEvent) {
		if sprite, ok := ecs.Get(w, e, component.FrameSpriteComponent); ok {
			sprite.Playing = false
		}
	})
	return e, nil
}

func buildRowRect(w *ecs.World, rs RectRowSpec, dy float64, n string) (ecs.Entity, error) {
	e, err := spawn(w, "rect"+n, rs.Transform, dy, &rs.Size)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.FilledRectComponent, &component.FilledRect{Color: rs.Color.ColorOr(color.Black)}); err != nil {
		return 0, fmt.Errorf("prefabs: add rect rect%s: %w", n, err)
	}
	grant(w, e, rs.Hover, n)
	if rs.Script != "" {
		_ = ecs.Add(w, e, component.HoverScriptComponent, &component.HoverScript{Path: rs.Script})
	}
	return e, nil
}

func buildRowLabel(w *ecs.World, ls LabelRowSpec, dy float64, n string) (ecs.Entity, error) {
	e, err := spawn(w, "label"+n, ls.Transform, dy, nil)
	if err != nil {
		return 0, err
	}
	baseText := expand(ls.Text, n)
	baseColor := ls.Color.ColorOr(color.Black)
	hoverText := expand(ls.HoverText, n)
	if hoverText == "" {
		hoverText = baseText
	}
	hoverColor := ls.HoverColor.ColorOr(baseColor)

	if err := ecs.Add(w, e, component.LabelComponent, &component.Label{Text: baseText, Color: baseColor, FontSize: ls.FontSize}); err != nil {
		return 0, fmt.Errorf("prefabs: add label label%s: %w", n, err)
	}
	system.FitLabel(w, e)

	setLabel := func(text string, clr color.Color) {
		label, ok := ecs.Get(w, e, component.LabelComponent)
		if !ok {
			return
		}
		label.Text = text
		label.Color = clr
		system.FitLabel(w, e)
	}

	c := grant(w, e, ls.Hover, n)
	c.Hovered.Add(func(hover.HoveredEvent) {
		setLabel(hoverText, hoverColor)
	})
	// The label backs away from the pointer.
	c.Hovering.Add(func(ev hover.HoveringEvent) {
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.X -= ev.PrevDelta.X
			t.Y -= ev.PrevDelta.Y
		}
	})
	c.Unhovered.Add(func(hover.UnhoveredEvent) {
		setLabel(baseText, baseColor)
	})
	return e, nil
}

func buildEntity(w *ecs.World, es EntitySpec, named map[string]ecs.Entity) (ecs.Entity, error) {
	e, err := spawn(w, es.Name, es.Transform, 0, es.Size)
	if err != nil {
		return 0, err
	}
	if es.Parent != "" {
		parent, ok := named[es.Parent]
		if !ok {
			return 0, fmt.Errorf("prefabs: entity %q: unknown parent %q", es.Name, es.Parent)
		}
		_ = ecs.Add(w, e, component.ParentComponent, &component.Parent{Entity: uint64(parent)})
	}
	if es.RenderLayer != nil {
		_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: es.RenderLayer.Index})
	}
	if es.Fill != nil {
		_ = ecs.Add(w, e, component.FilledRectComponent, &component.FilledRect{Color: es.Fill.ColorOr(color.Black)})
	}
	if es.Label != nil {
		_ = ecs.Add(w, e, component.LabelComponent, &component.Label{
			Text:     es.Label.Text,
			FontSize: es.Label.FontSize,
			Color:    es.Label.Color.ColorOr(color.Black),
		})
		if es.Size == nil {
			system.FitLabel(w, e)
		}
	}
	if es.Touchable {
		system.NewNode(w, e).SetTouchable(true)
	}
	if es.Hidden {
		_ = ecs.Add(w, e, component.HiddenComponent, &component.Hidden{})
	}
	if es.Hover != nil {
		grant(w, e, *es.Hover, "")
	}
	if es.Script != "" {
		_ = ecs.Add(w, e, component.HoverScriptComponent, &component.HoverScript{Path: es.Script})
	}
	return e, nil
}

func spawn(w *ecs.World, name string, ts TransformSpec, dy float64, size *SizeSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	t := transformFromSpec(ts)
	t.Y += dy
	if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
		return 0, fmt.Errorf("prefabs: add transform %s: %w", name, err)
	}
	if name != "" {
		_ = ecs.Add(w, e, component.NameComponent, &component.Name{Value: name})
	}
	if size != nil {
		_ = ecs.Add(w, e, component.SizeComponent, &component.Size{W: size.W, H: size.H})
	}
	return e, nil
}

func grant(w *ecs.World, e ecs.Entity, hs HoverSpec, n string) *hover.Capability {
	node := hover.Grant(system.NewNode(w, e),
		hover.WithCursor(hs.Cursor),
		hover.WithTitle(expand(hs.Title, n)),
	)
	system.RecordHoverEvents(w, e)
	return node.HoverCapability()
}

func transformFromSpec(ts TransformSpec) *component.Transform {
	return &component.Transform{
		X:        ts.X,
		Y:        ts.Y,
		ScaleX:   ts.ScaleX,
		ScaleY:   ts.ScaleY,
		Rotation: ts.Rotation,
		AnchorX:  ts.AnchorX,
		AnchorY:  ts.AnchorY,
	}
}

func expand(s, n string) string {
	if n == "" {
		return s
	}
	return strings.ReplaceAll(s, "{n}", n)
}

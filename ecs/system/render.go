package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
	"github.com/milk9111/hover/hover"
	"golang.org/x/image/font/basicfont"
)

// baseFontSize is the pixel height of the built-in face.
const baseFontSize = 13

var (
	labelFace  text.Face = text.NewGoXFace(basicfont.Face7x13)
	whitePixel *ebiten.Image
)

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

type RenderSystem struct {
	camEntity ecs.Entity
	// Debug outlines the world bounds of touchable entities.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// ViewGeoM maps scene space into window space for the world's camera.
func (r *RenderSystem) ViewGeoM(w *ecs.World) ebiten.GeoM {
	var g ebiten.GeoM
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := cameraOf(w, r.camEntity)
	if !ok {
		return g
	}
	origin := cam.Origin()
	g.Translate(-origin.X, -origin.Y)
	// Window size of one scene unit.
	unit := cam.SceneToWindow(origin.Add(hover.Point{X: 1, Y: 1}))
	g.Scale(unit.X, unit.Y)
	return g
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	view := r.ViewGeoM(w)

	entities := w.Query(component.TransformComponent.Kind())
	SortDrawOrder(w, entities)

	for _, e := range entities {
		if e == r.camEntity || ecs.Has(w, e, component.HiddenComponent) {
			continue
		}
		g := WorldGeoM(w, e)
		g.Concat(view)

		if rect, ok := ecs.Get(w, e, component.FilledRectComponent); ok {
			if size, ok := ecs.Get(w, e, component.SizeComponent); ok && rect.Color != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(size.W, size.H)
				op.GeoM.Concat(g)
				op.ColorScale.ScaleWithColor(rect.Color)
				screen.DrawImage(pixel(), op)
			}
		}

		if sprite, ok := ecs.Get(w, e, component.FrameSpriteComponent); ok {
			if img := sprite.Current(); img != nil {
				op := &ebiten.DrawImageOptions{}
				if size, ok := ecs.Get(w, e, component.SizeComponent); ok {
					b := img.Bounds()
					if b.Dx() > 0 && b.Dy() > 0 {
						op.GeoM.Scale(size.W/float64(b.Dx()), size.H/float64(b.Dy()))
					}
				}
				op.GeoM.Concat(g)
				screen.DrawImage(img, op)
			}
		}

		if label, ok := ecs.Get(w, e, component.LabelComponent); ok && label.Text != "" {
			op := &text.DrawOptions{}
			k := labelScale(label)
			op.GeoM.Scale(k, k)
			op.GeoM.Concat(g)
			clr := label.Color
			if clr == nil {
				clr = color.Black
			}
			op.ColorScale.ScaleWithColor(clr)
			text.Draw(screen, label.Text, labelFace, op)
		}
	}

	if r.Debug {
		r.drawBounds(w, screen, view)
	}
}

func (r *RenderSystem) drawBounds(w *ecs.World, screen *ebiten.Image, view ebiten.GeoM) {
	for _, e := range w.Query(component.SizeComponent.Kind(), component.TouchableComponent.Kind()) {
		if !hitTestable(w, e) {
			continue
		}
		bb, ok := WorldBounds(w, e)
		if !ok {
			continue
		}
		x0, y0 := view.Apply(bb.L, bb.B)
		x1, y1 := view.Apply(bb.R, bb.T)
		clr := color.RGBA{R: 0, G: 160, B: 255, A: 200}
		if c, ok := ecs.Get(w, e, component.HoverableComponent); ok && c.Enabled {
			clr = color.RGBA{R: 255, G: 0, B: 0, A: 200}
		}
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1.0, clr, false)
	}
}

func labelScale(label *component.Label) float64 {
	if label == nil || label.FontSize <= 0 {
		return 1
	}
	return label.FontSize / baseFontSize
}

// MeasureLabel returns the drawn size of label in local units.
func MeasureLabel(label *component.Label) (float64, float64) {
	if label == nil {
		return 0, 0
	}
	w, h := text.Measure(label.Text, labelFace, baseFontSize)
	k := labelScale(label)
	return w * k, h * k
}

// FitLabel resizes e's Size to its label text.
func FitLabel(w *ecs.World, e ecs.Entity) {
	label, ok := ecs.Get(w, e, component.LabelComponent)
	if !ok {
		return
	}
	width, height := MeasureLabel(label)
	if size, ok := ecs.Get(w, e, component.SizeComponent); ok {
		size.W, size.H = width, height
		return
	}
	_ = ecs.Add(w, e, component.SizeComponent, &component.Size{W: width, H: height})
}

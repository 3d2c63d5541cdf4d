package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tooltipOffsetX = 12
	tooltipOffsetY = 16
	tooltipPadding = 4
)

// TooltipRenderer draws the view's tooltip next to the cursor.
type TooltipRenderer struct {
	view *EbitenView
}

func NewTooltipRenderer(view *EbitenView) *TooltipRenderer {
	return &TooltipRenderer{view: view}
}

// Rect returns the tooltip box for a screen of the given size, clamped
// inside it. ok is false when there is nothing to draw.
func (t *TooltipRenderer) Rect(screenW, screenH float64) (x, y, w, h float64, ok bool) {
	if t == nil || t.view == nil || t.view.Tooltip() == "" {
		return 0, 0, 0, 0, false
	}
	tw, th := text.Measure(t.view.Tooltip(), labelFace, baseFontSize)
	w = tw + tooltipPadding*2
	h = th + tooltipPadding*2
	cx, cy := t.view.CursorPosition()
	x = float64(cx) + tooltipOffsetX
	y = float64(cy) + tooltipOffsetY
	if x+w > screenW {
		x = screenW - w
	}
	if y+h > screenH {
		y = float64(cy) - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h, true
}

func (t *TooltipRenderer) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	b := screen.Bounds()
	x, y, w, h, ok := t.Rect(float64(b.Dx()), float64(b.Dy()))
	if !ok {
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 255, G: 255, B: 225, A: 240}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.0, color.RGBA{A: 200}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+tooltipPadding, y+tooltipPadding)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, t.view.Tooltip(), labelFace, op)
}

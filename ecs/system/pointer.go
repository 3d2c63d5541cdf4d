package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hover/hover"
)

// EbitenView is the game window as seen by the hover tracker. Ebitengine
// has no pointer callbacks, so Poll turns cursor positions into move and
// leave events once per tick.
type EbitenView struct {
	width  int
	height int
	scale  hover.Point

	cursorPos func() (int, int)
	setShape  func(ebiten.CursorShape)

	pointer *hover.Trigger[hover.PointerEvent]

	inside  bool
	lastX   int
	lastY   int
	tooltip string
	cursor  string
	shape   ebiten.CursorShape
	applied bool
}

// NewEbitenView creates a view over a width x height layout.
func NewEbitenView(width, height int) *EbitenView {
	return &EbitenView{
		width:     width,
		height:    height,
		scale:     hover.Point{X: 1, Y: 1},
		cursorPos: ebiten.CursorPosition,
		setShape:  ebiten.SetCursorShape,
		pointer:   hover.NewTrigger[hover.PointerEvent](),
		cursor:    hover.CursorAuto,
	}
}

// SetBounds updates the layout size used for leave detection.
func (v *EbitenView) SetBounds(width, height int) {
	v.width = width
	v.height = height
}

// SetScale reports the window-to-layout pixel ratio. Zero components are ignored.
func (v *EbitenView) SetScale(sx, sy float64) {
	if sx != 0 {
		v.scale.X = sx
	}
	if sy != 0 {
		v.scale.Y = sy
	}
}

func (v *EbitenView) Scale() hover.Point {
	return v.scale
}

// Origin is always the window's top-left corner.
func (v *EbitenView) Origin() hover.Point {
	return hover.Point{}
}

func (v *EbitenView) SetCursor(cursor string) {
	v.cursor = cursor
}

// Cursor returns the last cursor name set by the tracker.
func (v *EbitenView) Cursor() string {
	return v.cursor
}

func (v *EbitenView) SetTooltip(title string) {
	v.tooltip = title
}

// Tooltip returns the title to draw, or "".
func (v *EbitenView) Tooltip() string {
	return v.tooltip
}

// CursorPosition returns the last polled cursor position.
func (v *EbitenView) CursorPosition() (int, int) {
	return v.lastX, v.lastY
}

func (v *EbitenView) ListenPointer(fn func(hover.PointerEvent)) (cancel func()) {
	h := v.pointer.Add(fn)
	return func() { h.Remove() }
}

// Poll reads the cursor, publishes pointer events and applies the cursor shape.
func (v *EbitenView) Poll() {
	x, y := v.cursorPos()
	in := x >= 0 && y >= 0 && x < v.width && y < v.height
	switch {
	case in && (!v.inside || x != v.lastX || y != v.lastY):
		v.inside = true
		v.lastX, v.lastY = x, y
		v.pointer.Fire(hover.PointerEvent{
			Kind:  hover.PointerMove,
			PageX: float64(x) * v.scale.X,
			PageY: float64(y) * v.scale.Y,
		})
	case !in && v.inside:
		v.inside = false
		v.lastX, v.lastY = x, y
		v.pointer.Fire(hover.PointerEvent{
			Kind:  hover.PointerLeave,
			PageX: float64(x) * v.scale.X,
			PageY: float64(y) * v.scale.Y,
		})
	}
	v.applyCursor()
}

func (v *EbitenView) applyCursor() {
	shape := CursorShape(v.cursor)
	if v.applied && shape == v.shape {
		return
	}
	v.shape = shape
	v.applied = true
	if v.setShape != nil {
		v.setShape(shape)
	}
}

// Close drops every pointer listener.
func (v *EbitenView) Close() {
	v.pointer.Destroy()
}

// CursorShape maps a CSS cursor name to the closest Ebitengine shape.
func CursorShape(name string) ebiten.CursorShape {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pointer":
		return ebiten.CursorShapePointer
	case "text":
		return ebiten.CursorShapeText
	case "crosshair":
		return ebiten.CursorShapeCrosshair
	case "move", "all-scroll", "grab", "grabbing":
		return ebiten.CursorShapeMove
	case "not-allowed", "no-drop":
		return ebiten.CursorShapeNotAllowed
	case "ew-resize", "col-resize", "e-resize", "w-resize":
		return ebiten.CursorShapeEWResize
	case "ns-resize", "row-resize", "n-resize", "s-resize":
		return ebiten.CursorShapeNSResize
	case "nesw-resize", "ne-resize", "sw-resize":
		return ebiten.CursorShapeNESWResize
	case "nwse-resize", "nw-resize", "se-resize":
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}

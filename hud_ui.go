package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hover/common"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/hover"
	"golang.org/x/image/font/basicfont"
)

const hudLines = 6

// eventLog keeps the last few enter/leave lines and the latest move.
type eventLog struct {
	max    int
	lines  []string
	moving string
}

func newEventLog(max int) *eventLog {
	return &eventLog{max: max}
}

// Push records ev for the entity named name. Hovering events replace the
// move line instead of scrolling the log.
func (l *eventLog) Push(name string, ev ecs.Event) {
	e, ok := ev.Data.(hover.Event)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s: %s", name, e)
	switch e.Type() {
	case hover.EventHovering:
		l.moving = line
		return
	case hover.EventUnhovered:
		l.moving = ""
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

func (l *eventLog) Lines() []string {
	return l.lines
}

func (l *eventLog) Moving() string {
	return l.moving
}

// HUD is a small ebitenui panel in the top right corner listing recent hover
// events.
type HUD struct {
	ui     *ebitenui.UI
	log    *eventLog
	lines  []*widget.Text
	moving *widget.Text
	status *widget.Text
}

func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}

	newLine := func(clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}

	h := &HUD{log: newEventLog(hudLines)}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("hover events", &face, white),
	))
	for i := 0; i < hudLines; i++ {
		line := newLine(white)
		h.lines = append(h.lines, line)
		panel.AddChild(line)
	}
	h.moving = newLine(dim)
	panel.AddChild(h.moving)
	h.status = newLine(dim)
	panel.AddChild(h.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 4, Right: 4}))),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Push adds a world event to the log.
func (h *HUD) Push(name string, ev ecs.Event) {
	h.log.Push(name, ev)
	for i, line := range h.lines {
		line.Label = ""
		if i < len(h.log.Lines()) {
			line.Label = h.log.Lines()[i]
		}
	}
	h.moving.Label = h.log.Moving()
}

func (h *HUD) SetStatus(status string) {
	h.status.Label = status
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

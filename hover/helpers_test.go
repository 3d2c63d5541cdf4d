package hover

import "fmt"

type box struct {
	Capability
	name      string
	x, y      float64
	w, h      float64
	scale     float64
	touchable bool
	dead      bool
}

func newBox(name string, x, y, w, h float64) *box {
	return &box{name: name, x: x, y: y, w: w, h: h}
}

func (b *box) GlobalToLocal(p Point) Point {
	s := b.scale
	if s == 0 {
		s = 1
	}
	return Point{X: (p.X - b.x) / s, Y: (p.Y - b.y) / s}
}

func (b *box) contains(p Point) bool {
	l := b.GlobalToLocal(p)
	return l.X >= 0 && l.X <= b.w && l.Y >= 0 && l.Y <= b.h
}

func (b *box) SetTouchable(v bool) { b.touchable = v }
func (b *box) Alive() bool         { return !b.dead }
func (b *box) String() string      { return b.name }

type fakeScene struct {
	boxes  []*box
	camera *Camera
}

func (s *fakeScene) FindPointSource(p Point) Target {
	for i := len(s.boxes) - 1; i >= 0; i-- {
		b := s.boxes[i]
		if b.touchable && !b.dead && b.contains(p) {
			return b
		}
	}
	return nil
}

func (s *fakeScene) Camera() (Camera, bool) {
	if s.camera == nil {
		return Camera{}, false
	}
	return *s.camera, true
}

type plainView struct {
	origin  Point
	scale   Point
	cursor  string
	tooltip string
}

func (v *plainView) Origin() Point           { return v.origin }
func (v *plainView) SetCursor(cursor string) { v.cursor = cursor }
func (v *plainView) SetTooltip(title string) { v.tooltip = title }
func (v *plainView) Scale() Point            { return v.scale }

type listenView struct {
	plainView
	pointer Trigger[PointerEvent]
}

func (v *listenView) ListenPointer(fn func(PointerEvent)) func() {
	h := v.pointer.Add(fn)
	return func() { h.Remove() }
}

type recorder struct {
	log       []string
	hovered   []HoveredEvent
	hovering  []HoveringEvent
	unhovered []UnhoveredEvent
}

func (r *recorder) watch(b *box) {
	b.Hovered.Add(func(e HoveredEvent) {
		r.log = append(r.log, b.name+":"+string(e.Type()))
		r.hovered = append(r.hovered, e)
	})
	b.Hovering.Add(func(e HoveringEvent) {
		r.log = append(r.log, b.name+":"+string(e.Type()))
		r.hovering = append(r.hovering, e)
	})
	b.Unhovered.Add(func(e UnhoveredEvent) {
		r.log = append(r.log, b.name+":"+string(e.Type()))
		r.unhovered = append(r.unhovered, e)
	})
}

func move(t *Tracker, x, y float64) {
	t.HandlePointer(PointerEvent{Kind: PointerMove, PageX: x, PageY: y})
}

func leave(t *Tracker) {
	t.HandlePointer(PointerEvent{Kind: PointerLeave})
}

func newTestTracker(scene Scene, view View, cfg Config) *Tracker {
	return NewTracker(func() Scene { return scene }, view, cfg)
}

func approx(a, b Point) bool {
	const eps = 1e-9
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx < eps && dx > -eps && dy < eps && dy > -eps
}

func pt(x, y float64) Point { return Point{X: x, Y: y} }

func describe(v any) string { return fmt.Sprintf("%+v", v) }

package hover

import "log"

// Target is an entity returned by a scene point query.
// Targets are compared with ==, so implementations must be comparable.
type Target interface {
	GlobalToLocal(p Point) Point
}

// Scene is the scene-graph collaborator the tracker queries.
type Scene interface {
	// FindPointSource returns the topmost touchable entity containing p, or nil.
	FindPointSource(p Point) Target
	// Camera returns the active camera, if any.
	Camera() (Camera, bool)
}

// SceneFunc returns the active scene, or nil when there is none.
type SceneFunc func() Scene

// State is the tracker's focus state.
type State int

const (
	StateIdle State = iota
	StateFocused
)

func (s State) String() string {
	if s == StateFocused {
		return "focused"
	}
	return "idle"
}

// snapshot is either absent or complete.
type snapshot struct {
	start       Point
	startWindow Point
	prevWindow  Point
	// hovered is the trigger that received Hovered. A different trigger
	// means the capability was revoked and granted again since.
	hovered *Trigger[HoveredEvent]
}

// Tracker turns raw pointer events into hover events for a single pointer.
type Tracker struct {
	scenes SceneFunc
	view   View
	cfg    Config
	logger *log.Logger

	focused Target
	snap    *snapshot

	cancel      func()
	dispatching bool
}

func NewTracker(scenes SceneFunc, view View, cfg Config) *Tracker {
	if cfg.Cursor == "" {
		cfg.Cursor = DefaultCursor
	}
	return &Tracker{
		scenes: scenes,
		view:   view,
		cfg:    cfg,
	}
}

func (t *Tracker) Config() Config {
	return t.cfg
}

// SetLogger sets the logger used for focus transitions when Config.Debug is on.
func (t *Tracker) SetLogger(l *log.Logger) {
	t.logger = l
}

// Start subscribes to the view's pointer events. It returns false when the
// view cannot deliver them.
func (t *Tracker) Start() bool {
	if t.cancel != nil {
		return true
	}
	src, ok := t.view.(PointerSource)
	if !ok {
		return false
	}
	cancel := src.ListenPointer(t.HandlePointer)
	if cancel == nil {
		cancel = func() {}
	}
	t.cancel = cancel
	return true
}

// Stop unsubscribes from the view. Focus is kept; no events are emitted.
func (t *Tracker) Stop() {
	if t.cancel == nil {
		return
	}
	cancel := t.cancel
	t.cancel = nil
	cancel()
}

func (t *Tracker) Started() bool {
	return t.cancel != nil
}

// Focused returns the focused target.
func (t *Tracker) Focused() (Target, bool) {
	return t.focused, t.focused != nil
}

func (t *Tracker) State() State {
	if t.focused != nil {
		return StateFocused
	}
	return StateIdle
}

// Reset drops focus without emitting events, e.g. before the scene is rebuilt.
func (t *Tracker) Reset() {
	if t.focused == nil {
		return
	}
	t.release()
}

// HandlePointer processes one raw pointer event. Events arriving while the
// tracker is still emitting for a previous event are dropped.
func (t *Tracker) HandlePointer(ev PointerEvent) {
	if t == nil {
		return
	}
	if t.dispatching {
		t.debugf("hover: dropped re-entrant %s event", ev.Kind)
		return
	}
	t.dispatching = true
	defer func() { t.dispatching = false }()

	switch ev.Kind {
	case PointerMove:
		t.move(t.windowPoint(ev))
	case PointerLeave:
		t.leave()
	}
}

func (t *Tracker) windowPoint(ev PointerEvent) Point {
	p := Point{X: ev.PageX, Y: ev.PageY}
	if t.view != nil {
		p = p.Sub(t.view.Origin())
	}
	if s, ok := t.view.(Scaler); ok {
		scale := s.Scale()
		if scale.X != 0 {
			p.X /= scale.X
		}
		if scale.Y != 0 {
			p.Y /= scale.Y
		}
	}
	return p
}

func (t *Tracker) move(wp Point) {
	var scene Scene
	if t.scenes != nil {
		scene = t.scenes()
	}
	if scene == nil {
		return
	}

	t.dropStale()

	sp := wp
	if cam, ok := scene.Camera(); ok {
		sp = cam.WindowToScene(wp)
	}

	hit := scene.FindPointSource(sp)
	if hit != nil && capabilityOf(hit) == nil {
		hit = nil
	}

	switch {
	case hit != nil && (t.focused == nil || hit != t.focused):
		t.transfer(hit, wp, sp)
	case hit != nil:
		t.hovering(wp)
	case t.focused != nil:
		t.unhover(wp)
	}
}

func (t *Tracker) leave() {
	t.dropStale()
	if t.focused == nil || t.snap == nil {
		return
	}
	t.unhover(t.snap.prevWindow)
}

// transfer moves focus to hit. State is written only after every emission
// for this step has completed.
func (t *Tracker) transfer(hit Target, wp, sp Point) {
	if old := t.focused; old != nil {
		t.emitUnhovered(old, t.snap, wp)
		t.resetView()
		t.debugf("hover: unhovered %v", old)
	}

	// Unhovered handlers may have revoked or destroyed the new target.
	c := capabilityOf(hit)
	if c == nil || !alive(hit) {
		t.focused, t.snap = nil, nil
		return
	}

	local := hit.GlobalToLocal(sp)
	t.showView(c)
	hovered := c.Hovered
	if hovered != nil {
		hovered.Fire(NewHoveredEvent(local))
	}

	t.focused = hit
	t.snap = &snapshot{start: local, startWindow: wp, prevWindow: wp, hovered: hovered}
	t.debugf("hover: hovered %v at %s", hit, local)
}

func (t *Tracker) hovering(wp Point) {
	snap := t.snap
	if snap == nil {
		return
	}
	if c := capabilityOf(t.focused); c != nil && c.Hovering != nil {
		c.Hovering.Fire(NewHoveringEvent(snap.start, wp.Sub(snap.startWindow), wp.Sub(snap.prevWindow)))
	}
	snap.prevWindow = wp
}

func (t *Tracker) unhover(wp Point) {
	old := t.focused
	t.emitUnhovered(old, t.snap, wp)
	t.release()
	t.debugf("hover: unhovered %v", old)
}

func (t *Tracker) emitUnhovered(target Target, snap *snapshot, wp Point) {
	if snap == nil {
		return
	}
	c := capabilityOf(target)
	if c == nil || c.Unhovered == nil {
		return
	}
	c.Unhovered.Fire(NewUnhoveredEvent(snap.start, wp.Sub(snap.startWindow), wp.Sub(snap.prevWindow)))
}

// dropStale forgets a focused target that was destroyed or lost its capability,
// including one granted again since it gained focus. Its current triggers
// never saw Hovered, so the next move starts over with a fresh transfer.
func (t *Tracker) dropStale() {
	if t.focused == nil {
		return
	}
	if c := capabilityOf(t.focused); c != nil && alive(t.focused) && t.snap != nil && c.Hovered == t.snap.hovered {
		return
	}
	t.debugf("hover: dropped stale focus %v", t.focused)
	t.release()
}

func (t *Tracker) release() {
	t.resetView()
	t.focused = nil
	t.snap = nil
}

func (t *Tracker) showView(c *Capability) {
	if t.view == nil {
		return
	}
	cursor := c.Cursor
	if cursor == "" {
		cursor = t.cfg.Cursor
	}
	t.view.SetCursor(cursor)
	if t.cfg.ShowTooltip && c.Title != "" {
		t.view.SetTooltip(c.Title)
	}
}

func (t *Tracker) resetView() {
	if t.view == nil {
		return
	}
	t.view.SetCursor(CursorAuto)
	if t.cfg.ShowTooltip {
		t.view.SetTooltip("")
	}
}

func (t *Tracker) debugf(format string, args ...any) {
	if !t.cfg.Debug || t.logger == nil {
		return
	}
	t.logger.Printf(format, args...)
}

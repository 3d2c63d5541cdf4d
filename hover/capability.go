package hover

// Capability is the hover state carried by an entity.
//
// Embedding Capability in a struct makes a pointer to that struct Hoverable.
// Empty Cursor and Title mean "not set".
type Capability struct {
	// Enabled is the master switch; the tracker ignores entities where it is false.
	Enabled bool

	Hovered   *Trigger[HoveredEvent]
	Hovering  *Trigger[HoveringEvent]
	Unhovered *Trigger[UnhoveredEvent]

	// Cursor overrides the tracker's default cursor while the entity is focused.
	Cursor string
	// Title is shown as a tooltip while focused when tooltips are enabled.
	Title string
}

// HoverCapability lets *Capability (and anything embedding it) satisfy Hoverable.
func (c *Capability) HoverCapability() *Capability {
	return c
}

// Release disables c and destroys its triggers, dropping their subscribers.
func (c *Capability) Release() {
	if c == nil {
		return
	}
	c.Enabled = false
	if c.Hovered != nil {
		c.Hovered.Destroy()
		c.Hovered = nil
	}
	if c.Hovering != nil {
		c.Hovering.Destroy()
		c.Hovering = nil
	}
	if c.Unhovered != nil {
		c.Unhovered.Destroy()
		c.Unhovered = nil
	}
}

// Hoverable is implemented by anything that can carry hover state.
// HoverCapability returns nil when no capability is attached.
type Hoverable interface {
	HoverCapability() *Capability
}

// Attacher is implemented by entities whose capability record is created on demand.
type Attacher interface {
	Hoverable
	AttachHoverCapability() *Capability
}

// Detacher is implemented by entities that can drop their capability record.
type Detacher interface {
	DetachHoverCapability()
}

// Touchable is implemented by entities that can opt in to hit-testing.
type Touchable interface {
	SetTouchable(touchable bool)
}

// Liveness is implemented by targets whose lifetime the tracker does not own.
type Liveness interface {
	Alive() bool
}

// capabilityOf returns the enabled capability of v, or nil.
func capabilityOf(v any) *Capability {
	h, ok := v.(Hoverable)
	if !ok || h == nil {
		return nil
	}
	c := h.HoverCapability()
	if c == nil || !c.Enabled {
		return nil
	}
	return c
}

func alive(v any) bool {
	if l, ok := v.(Liveness); ok {
		return l.Alive()
	}
	return true
}

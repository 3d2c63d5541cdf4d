package hover

// Option customizes a capability on Grant.
type Option func(*Capability)

// WithCursor sets the cursor shown while the entity is focused.
// An empty cursor is ignored.
func WithCursor(cursor string) Option {
	return func(c *Capability) {
		if cursor != "" {
			c.Cursor = cursor
		}
	}
}

// WithTitle sets the tooltip title.
func WithTitle(title string) Option {
	return func(c *Capability) {
		if title != "" {
			c.Title = title
		}
	}
}

// Grant makes target hoverable and touchable and returns it.
// Triggers that already exist are kept, so repeated grants preserve subscribers.
func Grant[T Hoverable](target T, opts ...Option) T {
	c := target.HoverCapability()
	if c == nil {
		if a, ok := any(target).(Attacher); ok {
			c = a.AttachHoverCapability()
		}
	}
	if c == nil {
		return target
	}

	c.Enabled = true
	if t, ok := any(target).(Touchable); ok {
		t.SetTouchable(true)
	}
	if c.Hovered == nil {
		c.Hovered = NewTrigger[HoveredEvent]()
	}
	if c.Hovering == nil {
		c.Hovering = NewTrigger[HoveringEvent]()
	}
	if c.Unhovered == nil {
		c.Unhovered = NewTrigger[UnhoveredEvent]()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return target
}

// Revoke clears the hoverable flag and destroys the triggers, releasing their
// subscribers. Touchability is left alone. Revoking a target that was never
// granted is a no-op.
func Revoke[T Hoverable](target T) T {
	c := target.HoverCapability()
	if c == nil {
		return target
	}

	c.Release()
	if d, ok := any(target).(Detacher); ok {
		d.DetachHoverCapability()
	}
	return target
}

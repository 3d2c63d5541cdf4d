package hover

type triggerHandler[T any] struct {
	id   uint32
	fn   func(T)
	once bool
}

// Trigger is a synchronous multi-subscriber broadcast channel.
// The zero value is ready to use.
type Trigger[T any] struct {
	handlers  []triggerHandler[T]
	nextID    uint32
	destroyed bool
}

// Handle identifies one subscription on a Trigger.
type Handle struct {
	id     uint32
	remove func(id uint32) bool
}

// Remove unregisters the subscription. Calling it again is a no-op.
func (h Handle) Remove() bool {
	if h.remove == nil {
		return false
	}
	return h.remove(h.id)
}

// Valid reports whether the handle refers to a subscription that was accepted.
func (h Handle) Valid() bool {
	return h.remove != nil
}

func NewTrigger[T any]() *Trigger[T] {
	return &Trigger[T]{}
}

// Add subscribes fn. Destroyed triggers accept nothing.
func (t *Trigger[T]) Add(fn func(T)) Handle {
	return t.add(fn, false)
}

// AddOnce subscribes fn for a single Fire.
func (t *Trigger[T]) AddOnce(fn func(T)) Handle {
	return t.add(fn, true)
}

func (t *Trigger[T]) add(fn func(T), once bool) Handle {
	if t == nil || t.destroyed || fn == nil {
		return Handle{}
	}
	t.nextID++
	t.handlers = append(t.handlers, triggerHandler[T]{id: t.nextID, fn: fn, once: once})
	return Handle{id: t.nextID, remove: t.remove}
}

// Remove unregisters the subscription behind h.
func (t *Trigger[T]) Remove(h Handle) bool {
	if t == nil || h.remove == nil {
		return false
	}
	return t.remove(h.id)
}

func (t *Trigger[T]) remove(id uint32) bool {
	for i := range t.handlers {
		if t.handlers[i].id == id {
			copy(t.handlers[i:], t.handlers[i+1:])
			t.handlers[len(t.handlers)-1] = triggerHandler[T]{}
			t.handlers = t.handlers[:len(t.handlers)-1]
			return true
		}
	}
	return false
}

// Fire delivers ev to every current subscriber in subscription order.
// The handler list is copied first: subscriptions changed by a handler
// take effect on the next Fire.
func (t *Trigger[T]) Fire(ev T) {
	if t == nil || t.destroyed || len(t.handlers) == 0 {
		return
	}
	snapshot := make([]triggerHandler[T], len(t.handlers))
	copy(snapshot, t.handlers)
	for _, h := range snapshot {
		if h.once {
			t.remove(h.id)
		}
		h.fn(ev)
	}
}

// Len returns the number of live subscriptions.
func (t *Trigger[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.handlers)
}

// Destroy releases all subscribers. The trigger stays unusable afterwards.
func (t *Trigger[T]) Destroy() {
	if t == nil {
		return
	}
	clear(t.handlers)
	t.handlers = nil
	t.destroyed = true
}

func (t *Trigger[T]) Destroyed() bool {
	return t == nil || t.destroyed
}

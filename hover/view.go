package hover

// PointerEventKind identifies raw pointer events delivered by a view.
type PointerEventKind int

const (
	PointerMove PointerEventKind = iota
	PointerLeave
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a raw pointer event in page coordinates.
type PointerEvent struct {
	Kind  PointerEventKind
	PageX float64
	PageY float64
}

// View is the host surface the tracker reads pointer positions from and
// writes cursor and tooltip state to.
type View interface {
	// Origin returns the view's top-left corner in page coordinates
	// (bounding rect plus page scroll offset).
	Origin() Point
	SetCursor(cursor string)
	// SetTooltip shows title as a tooltip; an empty title clears it.
	SetTooltip(title string)
}

// PointerSource is implemented by views that deliver pointer events.
type PointerSource interface {
	ListenPointer(fn func(PointerEvent)) (cancel func())
}

// Scaler is implemented by views whose pixels are scaled relative to the scene.
type Scaler interface {
	Scale() Point
}

// IsSupported reports whether v can deliver the pointer events the tracker needs.
func IsSupported(v View) bool {
	if v == nil {
		return false
	}
	_, ok := v.(PointerSource)
	return ok
}

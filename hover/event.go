package hover

import "fmt"

// EventType identifies hover event kinds.
type EventType string

const (
	EventHovered   EventType = "hovered"
	EventHovering  EventType = "hovering"
	EventUnhovered EventType = "unhovered"
)

// Event is implemented by the three hover event values.
type Event interface {
	Type() EventType
	String() string
}

// HoveredEvent is fired once when an entity acquires hover focus.
// Point is entity-local.
type HoveredEvent struct {
	Point Point
}

// HoveringEvent is fired on each pointer move while an entity keeps focus.
// Point is the entity-local point at focus start; StartDelta is the window
// displacement since focus start and PrevDelta since the previous tick.
type HoveringEvent struct {
	Point      Point
	StartDelta Point
	PrevDelta  Point
}

// UnhoveredEvent is fired once when an entity loses hover focus.
type UnhoveredEvent struct {
	Point      Point
	StartDelta Point
	PrevDelta  Point
}

func NewHoveredEvent(point Point) HoveredEvent {
	return HoveredEvent{Point: Point{X: point.X, Y: point.Y}}
}

func NewHoveringEvent(point, startDelta, prevDelta Point) HoveringEvent {
	return HoveringEvent{
		Point:      Point{X: point.X, Y: point.Y},
		StartDelta: Point{X: startDelta.X, Y: startDelta.Y},
		PrevDelta:  Point{X: prevDelta.X, Y: prevDelta.Y},
	}
}

func NewUnhoveredEvent(point, startDelta, prevDelta Point) UnhoveredEvent {
	return UnhoveredEvent{
		Point:      Point{X: point.X, Y: point.Y},
		StartDelta: Point{X: startDelta.X, Y: startDelta.Y},
		PrevDelta:  Point{X: prevDelta.X, Y: prevDelta.Y},
	}
}

func (HoveredEvent) Type() EventType   { return EventHovered }
func (HoveringEvent) Type() EventType  { return EventHovering }
func (UnhoveredEvent) Type() EventType { return EventUnhovered }

func (e HoveredEvent) String() string {
	return fmt.Sprintf("hovered point=%s", e.Point)
}

func (e HoveringEvent) String() string {
	return fmt.Sprintf("hovering point=%s start=%s prev=%s", e.Point, e.StartDelta, e.PrevDelta)
}

func (e UnhoveredEvent) String() string {
	return fmt.Sprintf("unhovered point=%s start=%s prev=%s", e.Point, e.StartDelta, e.PrevDelta)
}

package component

import "github.com/milk9111/hover/hover"

// Hoverable is the hover capability record of an entity.
type Hoverable = hover.Capability

var HoverableComponent = NewComponent[Hoverable]()

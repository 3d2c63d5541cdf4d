package component

import "image/color"

// FilledRect draws the entity's Size as a solid rectangle.
type FilledRect struct {
	Color color.Color
}

var FilledRectComponent = NewComponent[FilledRect]()

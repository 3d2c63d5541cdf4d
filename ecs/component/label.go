package component

import "image/color"

type Label struct {
	Text     string
	Color    color.Color
	FontSize float64
}

var LabelComponent = NewComponent[Label]()

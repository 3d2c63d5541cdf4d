package component

// Size is the local hit and draw rectangle [0,W]x[0,H].
type Size struct {
	W float64
	H float64
}

var SizeComponent = NewComponent[Size]()

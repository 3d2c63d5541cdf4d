package common

// Base layout size. The camera and HUD are laid out against it.
const (
	BaseWidth  = 640
	BaseHeight = 360
)

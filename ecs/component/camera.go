package component

// Camera describes the viewport of the entity's Transform position.
type Camera struct {
	Width   float64
	Height  float64
	ScaleX  float64
	ScaleY  float64
	AnchorX float64
	AnchorY float64
}

var CameraComponent = NewComponent[Camera]()

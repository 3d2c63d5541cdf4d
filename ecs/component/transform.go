package component

// Transform is an entity's placement relative to its parent (or the scene).
// AnchorX/AnchorY pick the point of the entity's Size that sits at (X, Y):
// 0,0 is the top-left corner and 0.5,0.5 the center. Zero scale means 1.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	AnchorX  float64
	AnchorY  float64
}

var TransformComponent = NewComponent[Transform]()

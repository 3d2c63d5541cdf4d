package hover

// Camera maps window-relative points into scene space.
// Position is the camera's anchor point in the scene; Width and Height are the
// viewport size. A zero scale is treated as 1.
type Camera struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	ScaleX  float64
	ScaleY  float64
	AnchorX float64
	AnchorY float64
}

func (c Camera) scale() Point {
	sx := c.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := c.ScaleY
	if sy == 0 {
		sy = 1
	}
	return Point{X: sx, Y: sy}
}

// Origin returns the scene point that sits at the window's top-left corner.
func (c Camera) Origin() Point {
	s := c.scale()
	return Point{
		X: c.X - c.Width*s.X*c.AnchorX,
		Y: c.Y - c.Height*s.Y*c.AnchorY,
	}
}

// WindowToScene converts a window-relative point into scene coordinates.
func (c Camera) WindowToScene(p Point) Point {
	return c.Origin().Add(p.Scale(c.scale()))
}

// SceneToWindow is the inverse of WindowToScene.
func (c Camera) SceneToWindow(p Point) Point {
	s := c.scale()
	d := p.Sub(c.Origin())
	return Point{X: d.X / s.X, Y: d.Y / s.Y}
}

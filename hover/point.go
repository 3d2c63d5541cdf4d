package hover

import "strconv"

// Point is a 2D offset in window, scene or entity-local space.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies each axis independently.
func (p Point) Scale(s Point) Point {
	return Point{X: p.X * s.X, Y: p.Y * s.Y}
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

package cubegl

// Point3 is a 3D point in scaled model space (coordinates carry the Scale
// factor). Values are immutable; Rotate returns new points.
type Point3 struct {
	X, Y, Z int
}

// Point2 is an integer screen coordinate in matrix pixel space.
type Point2 struct {
	X, Y int
}

// Rotate applies three axis rotations to p, about X, then Y, then Z. The
// order is fixed; reordering produces a visibly different rotation.
//
// Each step is a 2D rotation on the relevant coordinate pair:
//
//	newA = (a*cos - b*sin) / Scale
//	newB = (a*sin + b*cos) / Scale
//
// Division truncates toward zero (Go semantics), so results can differ by a
// unit from a floor-dividing implementation.
func Rotate(p Point3, ax, ay, az int, t *TrigTable) Point3 {
	x, y, z := p.X, p.Y, p.Z

	sin, cos := t.Sin(ax), t.Cos(ax)
	y, z = (y*cos-z*sin)/Scale, (y*sin+z*cos)/Scale

	sin, cos = t.Sin(ay), t.Cos(ay)
	x, z = (x*cos-z*sin)/Scale, (x*sin+z*cos)/Scale

	sin, cos = t.Sin(az), t.Cos(az)
	x, y = (x*cos-y*sin)/Scale, (x*sin+y*cos)/Scale

	return Point3{X: x, Y: y, Z: z}
}

// Viewport maps rotated model-space points onto matrix pixels by
// orthographic projection. Construct it with NewViewport.
type Viewport struct {
	Width  int
	Height int

	scale   int
	centerX int
	centerY int
}

// NewViewport derives the projection constants for a width x height matrix.
func NewViewport(width, height int) Viewport {
	side := width
	if height < side {
		side = height
	}
	return Viewport{
		Width:   width,
		Height:  height,
		scale:   side * 300, // 0.3 * Scale
		centerX: width * Scale / 2,
		centerY: height * Scale / 2,
	}
}

// Project maps p to a screen coordinate. The Z component is dropped
// (orthographic). The result may lie outside the matrix; out-of-bounds
// pixels are rejected later, at the write boundary.
func (v Viewport) Project(p Point3) Point2 {
	return Point2{
		X: (p.X*v.scale/Scale + v.centerX) / Scale,
		Y: (p.Y*v.scale/Scale + v.centerY) / Scale,
	}
}

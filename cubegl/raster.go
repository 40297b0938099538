package cubegl

// PixelSet records the unique pixels touched while rasterizing one frame.
// A fresh set belongs to exactly one frame; after the differential update
// it becomes the "previous frame" state for the next cycle.
type PixelSet map[Point2]struct{}

// NewPixelSet returns an empty set.
func NewPixelSet() PixelSet { return make(PixelSet) }

func (s PixelSet) Add(p Point2) { s[p] = struct{}{} }

func (s PixelSet) Contains(p Point2) bool {
	_, ok := s[p]
	return ok
}

func (s PixelSet) Len() int { return len(s) }

// DrawLine draws a straight line from p1 to p2 with Bresenham's algorithm
// (8-connected). Every in-bounds pixel is written to the target and
// recorded in set; out-of-bounds steps are skipped but stepping continues,
// so a line with both endpoints off the matrix still terminates after
// touching nothing. Degenerate lines (single point, horizontal, vertical)
// fall out of the general loop.
func DrawLine(t Target, p1, p2 Point2, c ColorIndex, set PixelSet) {
	w, h := t.Size()

	dx := absInt(p2.X - p1.X)
	dy := absInt(p2.Y - p1.Y)

	sx := -1
	if p1.X < p2.X {
		sx = 1
	}
	sy := -1
	if p1.Y < p2.Y {
		sy = 1
	}

	err := dx - dy
	x, y := p1.X, p1.Y

	for {
		if x >= 0 && x < w && y >= 0 && y < h {
			t.SetPixel(x, y, c)
			set.Add(Point2{X: x, Y: y})
		}

		if x == p2.X && y == p2.Y {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package cubegl

import "testing"

// recordTarget keeps the write order so tests can check contiguity.
type recordTarget struct {
	w, h int
	ops  []Point2
}

func (t *recordTarget) Size() (w, h int) { return t.w, t.h }

func (t *recordTarget) SetPixel(x, y int, c ColorIndex) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.ops = append(t.ops, Point2{X: x, Y: y})
}

func (t *recordTarget) ClearPixel(x, y int) { t.SetPixel(x, y, ColorBackground) }

func (t *recordTarget) Clear() { t.ops = nil }

func drawOnRecorder(t *testing.T, p1, p2 Point2) (*recordTarget, PixelSet) {
	t.Helper()
	rt := &recordTarget{w: 64, h: 64}
	set := NewPixelSet()
	DrawLine(rt, p1, p2, ColorRed, set)
	return rt, set
}

func TestDrawLineSinglePoint(t *testing.T) {
	rt, set := drawOnRecorder(t, Point2{X: 10, Y: 10}, Point2{X: 10, Y: 10})
	if len(rt.ops) != 1 || set.Len() != 1 {
		t.Fatalf("wrote %d pixels, set %d, want 1 and 1", len(rt.ops), set.Len())
	}
	if !set.Contains(Point2{X: 10, Y: 10}) {
		t.Fatal("endpoint missing from set")
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	rt, set := drawOnRecorder(t, Point2{X: 3, Y: 7}, Point2{X: 20, Y: 7})
	if want := 18; len(rt.ops) != want || set.Len() != want {
		t.Fatalf("horizontal: wrote %d, set %d, want %d", len(rt.ops), set.Len(), want)
	}

	rt, set = drawOnRecorder(t, Point2{X: 5, Y: 30}, Point2{X: 5, Y: 12})
	if want := 19; len(rt.ops) != want || set.Len() != want {
		t.Fatalf("vertical: wrote %d, set %d, want %d", len(rt.ops), set.Len(), want)
	}
}

func TestDrawLinePixelCountBounds(t *testing.T) {
	cases := []struct{ p1, p2 Point2 }{
		{Point2{X: 0, Y: 0}, Point2{X: 63, Y: 63}},
		{Point2{X: 0, Y: 0}, Point2{X: 63, Y: 20}},
		{Point2{X: 50, Y: 3}, Point2{X: 2, Y: 40}},
		{Point2{X: 1, Y: 60}, Point2{X: 60, Y: 59}},
	}
	for _, c := range cases {
		_, set := drawOnRecorder(t, c.p1, c.p2)
		dx := absInt(c.p2.X - c.p1.X)
		dy := absInt(c.p2.Y - c.p1.Y)
		lo := dx
		if dy > lo {
			lo = dy
		}
		lo++
		hi := dx + dy + 1
		if n := set.Len(); n < lo || n > hi {
			t.Fatalf("%+v -> %+v: %d pixels, want in [%d,%d]", c.p1, c.p2, n, lo, hi)
		}
	}
}

func TestDrawLineContiguousAndNoRepeats(t *testing.T) {
	rt, set := drawOnRecorder(t, Point2{X: 2, Y: 5}, Point2{X: 40, Y: 33})

	if len(rt.ops) != set.Len() {
		t.Fatalf("%d writes but %d unique pixels: a pixel was touched twice", len(rt.ops), set.Len())
	}
	if rt.ops[0] != (Point2{X: 2, Y: 5}) {
		t.Fatalf("line does not start at p1: %+v", rt.ops[0])
	}
	if rt.ops[len(rt.ops)-1] != (Point2{X: 40, Y: 33}) {
		t.Fatalf("line does not end at p2: %+v", rt.ops[len(rt.ops)-1])
	}
	for i := 1; i < len(rt.ops); i++ {
		dx := absInt(rt.ops[i].X - rt.ops[i-1].X)
		dy := absInt(rt.ops[i].Y - rt.ops[i-1].Y)
		if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d not 8-connected: %+v -> %+v", i, rt.ops[i-1], rt.ops[i])
		}
	}
}

func TestDrawLineFullyOutOfBounds(t *testing.T) {
	rt, set := drawOnRecorder(t, Point2{X: -30, Y: -5}, Point2{X: -2, Y: -40})
	if len(rt.ops) != 0 || set.Len() != 0 {
		t.Fatalf("out-of-bounds line wrote %d pixels, set %d", len(rt.ops), set.Len())
	}
}

func TestDrawLinePartiallyOutOfBounds(t *testing.T) {
	rt, set := drawOnRecorder(t, Point2{X: -10, Y: 5}, Point2{X: 10, Y: 5})
	if want := 11; len(rt.ops) != want || set.Len() != want {
		t.Fatalf("clipped line wrote %d pixels, set %d, want %d", len(rt.ops), set.Len(), want)
	}
	for p := range set {
		if p.X < 0 {
			t.Fatalf("out-of-bounds pixel recorded: %+v", p)
		}
	}
}

func TestDrawLineWritesColor(t *testing.T) {
	tgt := &Indexed8Target{Buf: make([]byte, 64*64), Stride: 64, W: 64, H: 64}
	set := NewPixelSet()
	DrawLine(tgt, Point2{X: 0, Y: 0}, Point2{X: 10, Y: 10}, ColorBlue, set)
	for p := range set {
		if got := tgt.Buf[p.Y*64+p.X]; got != byte(ColorBlue) {
			t.Fatalf("pixel %+v = %d, want %d", p, got, ColorBlue)
		}
	}
}

package hud

import (
	"image/color"
	"testing"

	"ledcube/cubegl"
	"ledcube/hal"
)

func newBandTarget() *cubegl.Indexed8Target {
	return &cubegl.Indexed8Target{Buf: make([]byte, 64*64), Stride: 64, W: 64, H: 64}
}

func TestDrawWritesIntoBand(t *testing.T) {
	tgt := newBandTarget()
	h := New(tgt, hal.DefaultPalette())

	h.Draw(cubegl.FrameInfo{Frame: 1, FPS: 60})

	lit := 0
	for y := 0; y < band; y++ {
		for x := 0; x < 64; x++ {
			if tgt.Buf[y*64+x] != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("overlay drew no pixels")
	}
	for y := band; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if tgt.Buf[y*64+x] != 0 {
				t.Fatalf("overlay leaked outside its band at (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawRepaintsBand(t *testing.T) {
	tgt := newBandTarget()
	h := New(tgt, hal.DefaultPalette())

	// Dirty the band as a previous frame would.
	tgt.SetPixel(40, 2, cubegl.ColorMagenta)
	h.Draw(cubegl.FrameInfo{Frame: 2, FPS: 7})

	if tgt.Buf[2*64+40] == byte(cubegl.ColorMagenta) {
		t.Fatal("stale band pixel survived a redraw")
	}
}

func TestIndexForMapsPaletteColors(t *testing.T) {
	d := &targetDisplayer{tgt: newBandTarget(), pal: hal.DefaultPalette()}

	if got := d.indexFor(color.RGBA{R: 0xFF, A: 0xFF}); got != cubegl.ColorRed {
		t.Fatalf("red mapped to %d", got)
	}
	if got := d.indexFor(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}); got != cubegl.ColorWhite {
		t.Fatalf("white mapped to %d", got)
	}
	if got := d.indexFor(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}); got != cubegl.ColorWhite {
		t.Fatalf("unknown color should fall back to white, got %d", got)
	}
}

// Package hud draws a small status overlay on top of the cube animation.
//
// The overlay lives outside the differential-update bookkeeping: it claims
// a fixed band of the matrix, clears it itself each frame, and redraws its
// text with tinyfont. Cube pixels under the band are simply occluded; the
// rasterizer repaints them the next frame anyway.
package hud

import (
	"image/color"
	"strconv"

	"ledcube/cubegl"
	"ledcube/hal"

	"tinygo.org/x/tinyfont"
)

// band is the overlay region height in pixels, sized for the TomThumb face.
const band = 7

// HUD renders an FPS readout in the top-left corner of a render target.
type HUD struct {
	tgt  cubegl.Target
	disp *targetDisplayer
}

// New creates an overlay for tgt. pal maps the text color onto a palette
// index; pass the same palette the display presents with.
func New(tgt cubegl.Target, pal hal.Palette) *HUD {
	return &HUD{
		tgt:  tgt,
		disp: &targetDisplayer{tgt: tgt, pal: pal},
	}
}

// Draw is an Animator overlay hook. It repaints the band every frame so
// stale digits never linger.
func (h *HUD) Draw(info cubegl.FrameInfo) {
	w, _ := h.tgt.Size()
	for y := 0; y < band; y++ {
		for x := 0; x < w; x++ {
			h.tgt.ClearPixel(x, y)
		}
	}

	fps := int(info.FPS + 0.5)
	tinyfont.WriteLine(h.disp, &tinyfont.TomThumb, 1, 6,
		strconv.Itoa(fps)+" FPS", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
}

// targetDisplayer adapts a cubegl.Target to the drivers.Displayer interface
// tinyfont draws through. Colors are mapped to the nearest palette entry by
// exact match, falling back to white.
type targetDisplayer struct {
	tgt cubegl.Target
	pal hal.Palette
}

func (d *targetDisplayer) Size() (x, y int16) {
	w, h := d.tgt.Size()
	return int16(w), int16(h)
}

func (d *targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.tgt.SetPixel(int(x), int(y), d.indexFor(c))
}

func (d *targetDisplayer) Display() error { return nil }

func (d *targetDisplayer) indexFor(c color.RGBA) cubegl.ColorIndex {
	for i, e := range d.pal {
		if e.R == c.R && e.G == c.G && e.B == c.B {
			return cubegl.ColorIndex(i)
		}
	}
	return cubegl.ColorWhite
}

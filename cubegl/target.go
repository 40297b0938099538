package cubegl

// ColorIndex selects a palette entry in the framebuffer. Index 0 is the
// background.
type ColorIndex uint8

const (
	ColorBackground ColorIndex = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Target is a minimal bounded pixel surface for the cube renderer.
//
// Implementations must treat out-of-bounds coordinates as no-ops; the
// renderer relies on that instead of clipping lines up front.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c ColorIndex)
	ClearPixel(x, y int)
	Clear()
}

// Indexed8Target renders into an 8bpp palette-indexed framebuffer buffer.
//
// The type is intentionally simple and needs no HAL services; callers
// provide the backing buffer and layout (stride). It suits both the host
// and device framebuffers.
type Indexed8Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *Indexed8Target) Size() (w, h int) { return t.W, t.H }

func (t *Indexed8Target) SetPixel(x, y int, c ColorIndex) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x
	if off < 0 || off >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(c)
}

// ClearPixel resets a single pixel to the background color.
func (t *Indexed8Target) ClearPixel(x, y int) {
	t.SetPixel(x, y, ColorBackground)
}

// Clear resets the whole surface to the background color.
func (t *Indexed8Target) Clear() {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x
			if off < 0 || off >= len(t.Buf) {
				continue
			}
			t.Buf[off] = byte(ColorBackground)
		}
	}
}

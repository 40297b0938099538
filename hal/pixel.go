package hal

// RGB is an 8-bit-per-channel palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette maps framebuffer color indices to display colors.
type Palette []RGB

// DefaultPalette returns the 8-entry cube palette. Index 0 is the
// background (black); 1-3 are the wireframe edge colors.
func DefaultPalette() Palette {
	return Palette{
		{0x00, 0x00, 0x00}, // black
		{0xFF, 0x00, 0x00}, // red
		{0x00, 0xFF, 0x00}, // green
		{0x00, 0x00, 0xFF}, // blue
		{0xFF, 0xFF, 0x00}, // yellow
		{0xFF, 0x00, 0xFF}, // magenta
		{0x00, 0xFF, 0xFF}, // cyan
		{0xFF, 0xFF, 0xFF}, // white
	}
}

// At returns the entry for idx, or black when idx is out of range.
func (p Palette) At(idx uint8) RGB {
	if int(idx) >= len(p) {
		return RGB{}
	}
	return p[idx]
}

// Dimmed returns a copy of the palette with every channel scaled by
// brightness, clamped to [0, 1]. LED matrices at full drive are harsh to
// look at; the default host brightness is well below 1.
func (p Palette) Dimmed(brightness float64) Palette {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	out := make(Palette, len(p))
	for i, c := range p {
		out[i] = RGB{
			R: uint8(float64(c.R) * brightness),
			G: uint8(float64(c.G) * brightness),
			B: uint8(float64(c.B) * brightness),
		}
	}
	return out
}

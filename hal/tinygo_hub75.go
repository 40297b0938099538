//go:build tinygo

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/hub75"
)

// hub75Framebuffer keeps an indexed shadow buffer and pushes it to the
// panel on Present. The HUB75 driver wants RGBA per pixel; the palette
// conversion happens once per present, not per write.
type hub75Framebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
	pal    Palette
	dev    hub75.Device
}

func newHUB75Framebuffer(width, height int, pal Palette) *hub75Framebuffer {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 16_000_000,
		SCK:       machine.GP2,
		SDO:       machine.GP3,
	})

	dev := hub75.New(machine.SPI0, machine.GP4, machine.GP5, machine.GP6, machine.GP7, machine.GP8, machine.GP9)
	dev.Configure(hub75.Config{
		Width:      int16(width),
		Height:     int16(height),
		RowPattern: int16(height / 2),
		ColorDepth: 4,
		FastUpdate: true,
		Brightness: 96,
	})

	return &hub75Framebuffer{
		width:  width,
		height: height,
		stride: width,
		buf:    make([]byte, width*height),
		pal:    pal,
		dev:    dev,
	}
}

func (f *hub75Framebuffer) Width() int          { return f.width }
func (f *hub75Framebuffer) Height() int         { return f.height }
func (f *hub75Framebuffer) Format() PixelFormat { return PixelFormatIndexed8 }
func (f *hub75Framebuffer) StrideBytes() int    { return f.stride }
func (f *hub75Framebuffer) Buffer() []byte      { return f.buf }

func (f *hub75Framebuffer) ClearIndex(idx uint8) {
	for i := range f.buf {
		f.buf[i] = idx
	}
}

func (f *hub75Framebuffer) Present() error {
	for y := 0; y < f.height; y++ {
		row := y * f.stride
		for x := 0; x < f.width; x++ {
			c := f.pal.At(f.buf[row+x])
			f.dev.SetPixel(int16(x), int16(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return f.dev.Display()
}

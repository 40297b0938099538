//go:build !tinygo

package hal

import (
	"fmt"
	"image"

	"ledcube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the matrix framebuffer,
// colorized through pal. The renderer runs in its own goroutine; the window
// closes when it returns. Blocks until the window closes.
func RunWindow(width, height int, pal Palette, run func(HAL) error) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid matrix size: %dx%d", width, height)
	}
	h := New(width, height).(*hostHAL)

	done := make(chan error, 1)
	go func() { done <- run(h) }()

	zoom := 512 / width
	if zoom < 1 {
		zoom = 1
	}

	g := &hostGame{h: h, pal: pal, done: done}
	ebiten.SetWindowTitle("ledcube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width*zoom, height*zoom)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return g.runErr
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	pal     Palette
	done    <-chan error
	runErr  error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.runErr = err
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotIndexed(g.scratch)

	dst := g.img.Pix
	for i, idx := range g.scratch {
		c := g.pal.At(idx)
		j := i * 4
		if j+3 >= len(dst) {
			break
		}
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}

//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ledcube/cubegl"
	"ledcube/hal"
	"ledcube/hud"
)

func main() {
	var (
		width       = flag.Int("width", 64, "Matrix width in pixels.")
		height      = flag.Int("height", 64, "Matrix height in pixels.")
		speed       = flag.Int("speed", 3, "Rotation speed in degrees per frame.")
		frameMillis = flag.Int("frame-millis", 16, "Per-frame time budget in milliseconds.")
		duration    = flag.Duration("duration", 0, "Stop after this long (0 = run until interrupted).")
		brightness  = flag.Float64("brightness", 0.3, "Display brightness, 0.0-1.0.")
		showHUD     = flag.Bool("hud", false, "Draw an FPS readout on the matrix.")
		headless    = flag.Bool("headless", false, "Run without a window.")
	)
	flag.Parse()

	cfg := cubegl.Config{
		RotationSpeed:   *speed,
		TargetFrameTime: time.Duration(*frameMillis) * time.Millisecond,
		MaxDuration:     *duration,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func(h hal.HAL) error {
		fb := h.Display().Framebuffer()
		tgt := &cubegl.Indexed8Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		}

		anim := cubegl.NewAnimator(tgt, h.Logger(), cfg)
		anim.SetPresent(fb.Present)
		if *showHUD {
			anim.SetOverlay(hud.New(tgt, hal.DefaultPalette()).Draw)
		}

		if err := anim.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	}

	pal := hal.DefaultPalette().Dimmed(*brightness)

	var err error
	if *headless {
		err = hal.RunHeadless(*width, *height, run)
	} else {
		err = hal.RunWindow(*width, *height, pal, run)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

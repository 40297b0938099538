//go:build tinygo

package main

import (
	"context"
	"time"

	"ledcube/cubegl"
	"ledcube/hal"
)

func main() {
	h := hal.New(64, 64)
	fb := h.Display().Framebuffer()

	tgt := &cubegl.Indexed8Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}

	anim := cubegl.NewAnimator(tgt, h.Logger(), cubegl.Config{
		RotationSpeed:   3,
		TargetFrameTime: 16 * time.Millisecond,
	})
	anim.SetPresent(fb.Present)

	_ = anim.Run(context.Background())
}

package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatIndexed8 is 8bpp: one palette index per pixel.
	PixelFormatIndexed8 PixelFormat = iota + 1
)

// Framebuffer is a palette-indexed pixel buffer plus a "present" hook.
//
// Writers address pixels through Buffer and StrideBytes and must
// bounds-check coordinates themselves. The buffer belongs to a single
// writer and carries no internal locking; Present is the only handoff to
// whatever displays the pixels, so a frame is not visible until the writer
// presents it.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearIndex(idx uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL provides the only contact point between the renderer and the outside
// world.
type HAL interface {
	Logger() Logger
	Display() Display
}

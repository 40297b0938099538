//go:build !tinygo

package hal

import "sync"

// hostFramebuffer separates the render buffer from the presented one: buf
// belongs to the single render goroutine, shown is the sync point. Present
// publishes buf into shown under the mutex, and the window only ever reads
// shown, so pixel writes need no locking of their own.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	shown  []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: width,
		buf:    make([]byte, width*height),
		shown:  make([]byte, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatIndexed8 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.shown, f.buf)
	return nil
}

func (f *hostFramebuffer) ClearIndex(idx uint8) {
	for i := range f.buf {
		f.buf[i] = idx
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.shown, f.buf)
}

func (f *hostFramebuffer) snapshotIndexed(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.shown)
}

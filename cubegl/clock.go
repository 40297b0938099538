package cubegl

import "time"

// Clock supplies the animator's time source and frame-pacing sleep. It is
// the only suspension point in a render cycle.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the process monotonic clock.
func SystemClock() Clock { return systemClock{} }

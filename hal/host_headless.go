//go:build !tinygo

package hal

import "fmt"

// RunHeadless runs the renderer without opening a window. The renderer
// paces itself; this just supplies a HAL and blocks until run returns.
func RunHeadless(width, height int, run func(HAL) error) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid matrix size: %dx%d", width, height)
	}
	return run(New(width, height))
}

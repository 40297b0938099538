package cubegl

import "math"

// Scale is the fixed-point factor carried by model-space coordinates and by
// the trig table entries.
const Scale = 1000

// TrigTable holds sine and cosine values for every whole-degree angle,
// scaled by Scale and truncated to integers.
//
// The table is immutable after construction. Build it once and share it;
// lookups are plain array reads.
type TrigTable struct {
	sin [360]int
	cos [360]int
}

// NewTrigTable computes the lookup table. This is the only place the
// renderer touches floating point, and it runs once at startup.
func NewTrigTable() *TrigTable {
	t := &TrigTable{}
	for i := 0; i < 360; i++ {
		rad := float64(i) * math.Pi / 180
		t.sin[i] = int(math.Sin(rad) * Scale)
		t.cos[i] = int(math.Cos(rad) * Scale)
	}
	return t
}

// Sin returns sin(deg degrees) scaled by Scale. Any angle is accepted;
// the lookup wraps modulo 360.
func (t *TrigTable) Sin(deg int) int { return t.sin[wrapDeg(deg)] }

// Cos returns cos(deg degrees) scaled by Scale. Any angle is accepted;
// the lookup wraps modulo 360.
func (t *TrigTable) Cos(deg int) int { return t.cos[wrapDeg(deg)] }

// defaultTrig is built once at process start and shared by every Animator
// that does not supply its own table.
var defaultTrig = NewTrigTable()

func wrapDeg(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

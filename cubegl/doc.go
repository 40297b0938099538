// Package cubegl renders a rotating wireframe cube onto a small
// palette-indexed pixel matrix.
//
// The pipeline is fixed and integer-only:
//
//	Rotation (table-driven) → Orthographic projection → Line rasterization →
//	Differential frame update.
//
// All model-space arithmetic uses scaled integers (a fixed factor of 1000
// stands in for fractional precision), so the hot path needs no floating
// point and no allocations beyond the per-frame pixel set. The renderer
// draws into a caller-provided Target and owns no display hardware.
//
// Per frame, only the pixels that actually changed are written: the
// rasterizer records every touched pixel, and the differ erases the pixels
// of the previous frame that the current frame no longer covers. Total
// writes per frame are proportional to the wireframe's edge length, not to
// the matrix area.
package cubegl

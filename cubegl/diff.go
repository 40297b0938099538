package cubegl

// Reconcile erases the pixels drawn last frame that the current frame no
// longer covers: the set difference prev - curr is cleared to the
// background color. Pixels present in curr are never touched, even when
// they were also part of prev; clearing and redrawing them would flicker.
func Reconcile(t Target, prev, curr PixelSet) {
	for p := range prev {
		if curr.Contains(p) {
			continue
		}
		t.ClearPixel(p.X, p.Y)
	}
}

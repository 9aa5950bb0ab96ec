package gamemath

import "math"

// SnapEpsilon is the distance under which an actor snaps onto its target.
const SnapEpsilon = 0.1

// Approach moves (x, y) toward (tx, ty) by step. It snaps exactly onto the
// target when the remaining distance is under SnapEpsilon or step covers it,
// so the result never passes the target.
func Approach(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist < SnapEpsilon || step >= dist {
		return tx, ty, true
	}
	if step <= 0 {
		return x, y, false
	}
	return x + dx/dist*step, y + dy/dist*step, false
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ShakeOffset returns the horizontal wobble of a shaking rock at time t.
func ShakeOffset(t, speed, amplitude float64) float64 {
	return math.Sin(t*speed) * amplitude
}

package gamemath

// HarpoonTip returns the tip of a harpoon fired from (cx, cy) along the unit
// axis (dirX, dirY). reach is the distance from the center to the firing edge.
func HarpoonTip(cx, cy float64, dirX, dirY int, reach, length float64) (float64, float64) {
	d := reach + length
	return cx + float64(dirX)*d, cy + float64(dirY)*d
}

// HarpoonProbe returns the thin box swept by a harpoon from the firing edge to its tip.
func HarpoonProbe(cx, cy float64, dirX, dirY int, reach, length, thickness float64) Rect {
	half := thickness / 2
	switch {
	case dirX > 0:
		return Rect{X: cx + reach, Y: cy - half, W: length, H: thickness}
	case dirX < 0:
		return Rect{X: cx - reach - length, Y: cy - half, W: length, H: thickness}
	case dirY > 0:
		return Rect{X: cx - half, Y: cy + reach, W: thickness, H: length}
	default:
		return Rect{X: cx - half, Y: cy - reach - length, W: thickness, H: length}
	}
}

// LeadingPoint returns a point just behind the tip, inside the last cell the
// harpoon has entered.
func LeadingPoint(tipX, tipY float64, dirX, dirY int) (float64, float64) {
	const inset = 0.01
	return tipX - float64(dirX)*inset, tipY - float64(dirY)*inset
}

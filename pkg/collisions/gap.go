package collisions

// OutsideGap reports whether the point (x, y) lies strictly between left and
// right while being above top or below bottom, i.e. inside one of the two
// pipe halves that frame a gap.
func OutsideGap(x, y, left, right, top, bottom float64) bool {
	if !(left < x && x < right) {
		return false
	}
	return y < top || y > bottom
}

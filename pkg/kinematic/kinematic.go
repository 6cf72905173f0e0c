package kinematic

// This package integrates constant acceleration in whole ticks, the way the
// game loop advances physics once per frame.

// Vector is a position or velocity in screen space.
type Vector struct {
	X float64
	Y float64
}

// Step returns the velocity after one tick of constant acceleration.
func Step(velocity float64, acceleration float64) float64 {
	return velocity + acceleration
}

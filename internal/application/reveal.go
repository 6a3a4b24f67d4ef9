package application

import "time"

// StaggerStep is the delay between a revealed block and each successive
// child, and between siblings.
const StaggerStep = 200 * time.Millisecond

// Cascade returns the start delay for n children of a block that starts at
// parentDelay. Child i starts at parentDelay + (i+1)*StaggerStep.
func Cascade(parentDelay time.Duration, n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = parentDelay + time.Duration(i+1)*StaggerStep
	}
	return delays
}

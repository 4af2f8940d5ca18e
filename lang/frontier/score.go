package frontier

import "math"

// Score computes the node priority: correct output bytes so far, penalized
// by program size and by execution cost. beta and gamma are the driver
// configuration's weights for those two penalties; both must be strictly
// positive for the search to make progress towards concrete programs.
func Score(correct, minLen int, steps uint64, beta, gamma float64) float64 {
	return float64(correct) - beta*float64(minLen) - gamma*math.Log2(float64(steps)+1)
}

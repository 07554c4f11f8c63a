package vdot

// dotScalar is the portable compensated fallback. It is the reference
// all vector kernels are tested against.
func dotScalar(a, b []float32) float32 {
	n := min(len(a), len(b))
	return kahanFold(0, 0, a, b, 0, n)
}

// kahanFold folds a[i]*b[i] for i in [start, n) into the running
// sum/compensation pair and returns the final sum. Vector kernels call
// it for their tail elements, continuing from the horizontally reduced
// pair so the error bound survives the lane-reduction boundary.
func kahanFold(sum, c float32, a, b []float32, start, n int) float32 {
	for i := start; i < n; i++ {
		y := a[i]*b[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

package vdot

// neonLanes is the float32 lane count of a 128-bit NEON register.
const neonLanes = 4

// dotNEON runs the Kahan recurrence across four lanes per iteration.
// The fixed-size lane arrays keep the accumulators in registers and give
// the compiler a straight-line body it can lower to NEON vector ops.
func dotNEON(a, b []float32) float32 {
	n := min(len(a), len(b))

	var sum, comp [neonLanes]float32
	i := 0
	for ; i+neonLanes <= n; i += neonLanes {
		for l := 0; l < neonLanes; l++ {
			y := a[i+l]*b[i+l] - comp[l]
			t := sum[l] + y
			comp[l] = (t - sum[l]) - y
			sum[l] = t
		}
	}

	x := sum[0] + sum[1] + sum[2] + sum[3]
	c := comp[0] + comp[1] + comp[2] + comp[3]
	return kahanFold(x, c, a, b, i, n)
}

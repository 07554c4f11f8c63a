package vdot

// maxSVELanes is the float32 lane count of the widest architecturally
// permitted SVE register (2048 bits).
const maxSVELanes = 64

// sveLanes is the working vector length in float32 lanes. Real SVE
// hardware reports its width at runtime (svcntw); the predicate loop
// below is width-agnostic, so the value only changes summation order.
// Tests vary it to prove width independence.
var sveLanes = 16

// dotSVE runs the Kahan recurrence under a whilelt-style predicate: each
// iteration activates exactly the lanes still covered by the input, so
// boundary truncation is handled by the predicate and there is no
// separate tail loop.
func dotSVE(a, b []float32) float32 {
	n := min(len(a), len(b))
	w := sveLanes
	if w < 1 || w > maxSVELanes {
		w = maxSVELanes
	}

	var sum, comp [maxSVELanes]float32
	for i := 0; i < n; i += w {
		active := n - i
		if active > w {
			active = w
		}
		for l := 0; l < active; l++ {
			y := a[i+l]*b[i+l] - comp[l]
			t := sum[l] + y
			comp[l] = (t - sum[l]) - y
			sum[l] = t
		}
	}

	var x float32
	for l := 0; l < w; l++ {
		x += sum[l]
	}
	return x
}

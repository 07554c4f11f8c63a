//go:build !amd64 || !goexperiment.simd

package vdot

// avx2Lanes is the float32 lane count of a 256-bit AVX register.
const avx2Lanes = 8

// dotAVX2 runs the Kahan recurrence across eight lanes per iteration.
// This is the portable body; under GOEXPERIMENT=simd on amd64 it is
// replaced by the archsimd intrinsics in kernel_avx2_simd.go.
func dotAVX2(a, b []float32) float32 {
	n := min(len(a), len(b))

	var sum, comp [avx2Lanes]float32
	i := 0
	for ; i+avx2Lanes <= n; i += avx2Lanes {
		for l := 0; l < avx2Lanes; l++ {
			y := a[i+l]*b[i+l] - comp[l]
			t := sum[l] + y
			comp[l] = (t - sum[l]) - y
			sum[l] = t
		}
	}

	var x, c float32
	for l := 0; l < avx2Lanes; l++ {
		x += sum[l]
		c += comp[l]
	}
	return kahanFold(x, c, a, b, i, n)
}

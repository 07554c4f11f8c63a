//go:build !amd64 || !goexperiment.simd

package vdot

// avx512Lanes is the float32 lane count of a 512-bit ZMM register.
const avx512Lanes = 16

// dotAVX512 is the widest, least-compensated path: it accumulates
// products straight into the lane sums with no compensation term. The
// narrower kernels keep the Kahan bound; this one trades it for raw
// multiply-accumulate throughput at 16 lanes. Callers who need the
// tighter bound should dispatch to a narrower kernel.
//
// Portable body; replaced by archsimd FMA intrinsics under
// GOEXPERIMENT=simd on amd64 (kernel_avx512_simd.go).
func dotAVX512(a, b []float32) float32 {
	n := min(len(a), len(b))

	var sum [avx512Lanes]float32
	i := 0
	for ; i+avx512Lanes <= n; i += avx512Lanes {
		for l := 0; l < avx512Lanes; l++ {
			sum[l] += a[i+l] * b[i+l]
		}
	}

	var x float32
	for l := 0; l < avx512Lanes; l++ {
		x += sum[l]
	}
	for ; i < n; i++ {
		x += a[i] * b[i]
	}
	return x
}

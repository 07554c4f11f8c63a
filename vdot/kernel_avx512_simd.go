//go:build amd64 && goexperiment.simd

package vdot

import "simd/archsimd"

const avx512Lanes = 16

// dotAVX512 accumulates with a single fused multiply-add per 16-lane
// step and no compensation term. See kernel_avx512.go for the accuracy
// trade this path makes.
func dotAVX512(a, b []float32) float32 {
	n := min(len(a), len(b))

	sum := archsimd.BroadcastFloat32x16(0.0)

	i := 0
	for ; i+avx512Lanes <= n; i += avx512Lanes {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		sum = va.MulAdd(vb, sum)
	}

	var s [avx512Lanes]float32
	sum.StoreSlice(s[:])
	x := s[0] + s[1] + s[2] + s[3] + s[4] + s[5] + s[6] + s[7] +
		s[8] + s[9] + s[10] + s[11] + s[12] + s[13] + s[14] + s[15]

	for ; i < n; i++ {
		x += a[i] * b[i]
	}
	return x
}

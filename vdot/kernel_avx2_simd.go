//go:build amd64 && goexperiment.simd

package vdot

import "simd/archsimd"

const avx2Lanes = 8

// dotAVX2 computes the compensated dot product with AVX2 intrinsics,
// eight float32 lanes at a time. The Kahan recurrence runs lane-wise;
// the per-lane sums and compensations are reduced horizontally and the
// tail continues from the reduced pair with the scalar recurrence.
func dotAVX2(a, b []float32) float32 {
	n := min(len(a), len(b))

	sum := archsimd.BroadcastFloat32x8(0.0)
	comp := archsimd.BroadcastFloat32x8(0.0)

	i := 0
	for ; i+avx2Lanes <= n; i += avx2Lanes {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		y := va.Mul(vb).Sub(comp)
		t := sum.Add(y)
		comp = t.Sub(sum).Sub(y)
		sum = t
	}

	var s, c [avx2Lanes]float32
	sum.StoreSlice(s[:])
	comp.StoreSlice(c[:])
	x := s[0] + s[1] + s[2] + s[3] + s[4] + s[5] + s[6] + s[7]
	cc := c[0] + c[1] + c[2] + c[3] + c[4] + c[5] + c[6] + c[7]

	return kahanFold(x, cc, a, b, i, n)
}

//go:build amd64.v4 && !goexperiment.simd

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// GOAMD64=v4 guarantees the AVX-512 F/DQ group, so the fused 16-lane
// kernel leads the priority list.
var candidates = []candidate{
	{
		kernel:    KernelAVX512,
		available: func(info simdinfo.Info) bool { return info.HasAVX512F },
		impl:      dotAVX512,
	},
	{
		kernel:    KernelAVX2,
		available: func(info simdinfo.Info) bool { return info.HasAVX || info.HasAVX2 },
		impl:      dotAVX2,
	},
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

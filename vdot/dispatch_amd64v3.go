//go:build amd64.v3 && !amd64.v4 && !goexperiment.simd

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// GOAMD64=v3 guarantees AVX2+FMA, so the 8-lane kernel is compiled in
// and trusted under static dispatch.
var candidates = []candidate{
	{
		kernel:    KernelAVX2,
		available: func(info simdinfo.Info) bool { return info.HasAVX || info.HasAVX2 },
		impl:      dotAVX2,
	},
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

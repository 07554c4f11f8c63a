//go:build amd64 && goexperiment.simd

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// Under GOEXPERIMENT=simd the archsimd kernels are compiled in whatever
// the GOAMD64 level, so the build alone cannot vouch for them; verify
// forces the capability check even under static dispatch before an
// AVX-512 or AVX2 instruction is executed.
var candidates = []candidate{
	{
		kernel:    KernelAVX512,
		available: func(info simdinfo.Info) bool { return info.HasAVX512F },
		verify:    true,
		impl:      dotAVX512,
	},
	{
		kernel:    KernelAVX2,
		available: func(info simdinfo.Info) bool { return info.HasAVX || info.HasAVX2 },
		verify:    true,
		impl:      dotAVX2,
	},
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

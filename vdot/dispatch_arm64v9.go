//go:build arm64.v9.0

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// Armv9.0 requires SVE2, so the scalable kernel is compiled in and
// leads the priority list.
var candidates = []candidate{
	{
		kernel:    KernelSVE,
		available: func(info simdinfo.Info) bool { return info.HasSVE || info.HasSVE2 },
		impl:      dotSVE,
	},
	{
		kernel:    KernelNEON,
		available: func(info simdinfo.Info) bool { return info.HasNEON },
		impl:      dotNEON,
	},
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

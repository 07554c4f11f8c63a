//go:build arm64 && !arm64.v9.0

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// NEON is the arm64 baseline; SVE enters the list only for GOARM64=v9.0
// and later, where the architecture requires it.
var candidates = []candidate{
	{
		kernel:    KernelNEON,
		available: func(info simdinfo.Info) bool { return info.HasNEON },
		impl:      dotNEON,
	},
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

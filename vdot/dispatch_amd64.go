//go:build amd64 && !amd64.v3 && !goexperiment.simd

package vdot

// GOAMD64=v1/v2 guarantees no 256-bit float path, so only the scalar
// kernel is compiled in. Build with GOAMD64=v3/v4 or GOEXPERIMENT=simd
// for the vector kernels.
var candidates = []candidate{
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

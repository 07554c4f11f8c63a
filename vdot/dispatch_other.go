//go:build !amd64 && !arm64

package vdot

// No vector extension is guaranteed outside amd64 and arm64; the scalar
// compensated kernel is the only candidate.
var candidates = []candidate{
	{kernel: KernelScalar, available: alwaysAvailable, impl: dotScalar},
}

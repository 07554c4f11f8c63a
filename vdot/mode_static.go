//go:build !vdot_dynamic

package vdot

// Static dispatch: trust the build target unconditionally. This mirrors
// the default of building a C translation unit with -mavx2 and calling
// the AVX2 path without a CPUID check.
const (
	dynamicDispatch = false
	dispatchMode    = "static"
)

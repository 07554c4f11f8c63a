//go:build vdot_dynamic

package vdot

// Dynamic dispatch: every kernel additionally requires its capability
// flag in the cached runtime record before it may run.
const (
	dynamicDispatch = true
	dispatchMode    = "dynamic"
)

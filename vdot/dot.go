// Copyright 2025 simdinfo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vdot

import "github.com/abetlen/simdinfo/simdinfo"

// Kernel identifies one dot-product implementation.
type Kernel uint8

const (
	KernelScalar Kernel = iota
	KernelNEON
	KernelSVE
	KernelAVX2
	KernelAVX512
)

// String returns the kernel's conventional lower-case name.
func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelNEON:
		return "neon"
	case KernelSVE:
		return "sve"
	case KernelAVX2:
		return "avx2"
	case KernelAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// candidate is one compiled-in kernel in the dispatch priority list.
type candidate struct {
	kernel Kernel

	// available reports whether a runtime-probed record confirms the
	// kernel's instruction set.
	available func(simdinfo.Info) bool

	// verify forces the availability check even under static dispatch.
	// Set for kernels compiled in beyond the build target's baseline,
	// which the build alone cannot vouch for.
	verify bool

	impl func(a, b []float32) float32
}

// alwaysAvailable is the capability decision of the scalar kernel.
func alwaysAvailable(simdinfo.Info) bool { return true }

// selectCandidate scans the priority-ordered candidate list and returns
// the first entry whose capability decision holds. The list always ends
// with the scalar kernel, whose decision is unconditionally true.
func selectCandidate(dynamic bool) *candidate {
	var info simdinfo.Info
	probed := false
	for i := range candidates {
		c := &candidates[i]
		if dynamic || c.verify {
			if !probed {
				info = simdinfo.Runtime()
				probed = true
			}
			if !c.available(info) {
				continue
			}
		}
		return c
	}
	return &candidates[len(candidates)-1]
}

// DotF32 computes the dot product Σ a[i]*b[i] of two float32 vectors.
// If the slices have different lengths, the shorter length is used.
//
// The call is single-threaded, never allocates, and never mutates or
// retains its inputs. Under dynamic dispatch the first call in a process
// triggers the capability probe; otherwise the call is side-effect-free.
func DotF32(a, b []float32) float32 {
	return selectCandidate(dynamicDispatch).impl(a, b)
}

// Dot is an alias for DotF32.
func Dot(a, b []float32) float32 {
	return DotF32(a, b)
}

// SelectedKernel reports the kernel DotF32 will execute for the current
// build, dispatch mode, and processor.
func SelectedKernel() Kernel {
	return selectCandidate(dynamicDispatch).kernel
}

// DispatchMode reports "static" or "dynamic".
func DispatchMode() string {
	return dispatchMode
}

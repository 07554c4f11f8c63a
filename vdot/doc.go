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

// Package vdot computes the dot product of two float32 vectors with
// compensated summation, dispatching to the widest vector kernel the
// build target and (optionally) the running processor support.
//
// # Kernels
//
// Kernels are tried widest first: AVX-512 (16 lanes), AVX2 (8 lanes),
// SVE (scalable width, predicated), NEON (4 lanes), then a scalar
// fallback. Every kernel except AVX-512 runs the Kahan recurrence
//
//	y = a[i]*b[i] - c
//	t = sum + y
//	c = (t - sum) - y
//	sum = t
//
// lane-wise, reduces the per-lane sums and compensations horizontally,
// and folds tail elements with the scalar recurrence continuing from the
// reduced pair, keeping the rounding error O(1) in the vector length.
// The AVX-512 kernel instead accumulates with fused multiply-add and no
// compensation term, trading a little accuracy for throughput on the
// widest path; callers who need the tighter bound at 512-bit widths can
// force a narrower kernel with dynamic dispatch.
//
// # Dispatch
//
// By default selection is static: the priority list contains only kernels
// the build target guarantees (GOAMD64/GOARM64 level), and the first entry
// wins without probing. Building with the vdot_dynamic tag additionally
// requires each kernel's capability flag in the cached simdinfo.Runtime
// record, degrading silently to the next kernel when a flag is absent.
// Kernels compiled in beyond the build baseline (the GOEXPERIMENT=simd
// intrinsics) always verify against the runtime record before running.
//
// DotF32 never allocates and never mutates its inputs.
package vdot

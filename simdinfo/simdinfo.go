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

// Package simdinfo detects SIMD instruction-set support at build time and
// at runtime.
//
// The package exposes a flat record of capability flags, Info, and two
// probes:
//
//   - Static returns the capabilities the build target guarantees
//     (GOAMD64 microarchitecture level on x86-64, the NEON baseline on
//     arm64). It involves no runtime cost.
//   - Runtime returns the capabilities of the executing processor. The
//     probe runs at most once per process and is cached; hardware
//     capabilities cannot change while the process runs.
//
// Probing never fails. A feature that cannot be confirmed is reported as
// absent.
package simdinfo

import "strings"

// Info is a record of SIMD capability flags. Each flag is an independent
// boolean; no priority is encoded here. Info is a pure value type and is
// safe to copy.
type Info struct {
	// x86-64 extensions (CPUID leaf 1 and leaf 7, sub-leaf 0).
	HasAVX        bool // 256-bit vectors
	HasAVX2       bool // 256-bit integer/FP extensions
	HasAVXVNNI    bool // vector neural network instructions (256-bit)
	HasF16C       bool // half-precision convert
	HasFMA        bool // fused multiply-add
	HasAVX512F    bool // AVX-512 foundation (512-bit vectors)
	HasAVX512FP16 bool // AVX-512 half-precision arithmetic
	HasAVX512BF16 bool // AVX-512 bfloat16
	HasAVX512VNNI bool // AVX-512 vector neural network instructions
	HasAVX512VBMI bool // AVX-512 vector byte manipulation
	HasAVX512DQ   bool // AVX-512 doubleword/quadword

	// ARM extensions.
	HasNEON    bool // Advanced SIMD baseline
	HasNEONFMA bool // NEON fused multiply-add
	HasSVE     bool // Scalable Vector Extension
	HasSVE2    bool // SVE2
	HasI8MM    bool // int8 matrix multiply
	HasFP16    bool // half-precision NEON arithmetic
}

// String lists the set flags in a compact "avx2+fma" form, or "none".
func (i Info) String() string {
	var names []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{i.HasAVX, "avx"},
		{i.HasAVX2, "avx2"},
		{i.HasAVXVNNI, "avxvnni"},
		{i.HasF16C, "f16c"},
		{i.HasFMA, "fma"},
		{i.HasAVX512F, "avx512f"},
		{i.HasAVX512FP16, "avx512fp16"},
		{i.HasAVX512BF16, "avx512bf16"},
		{i.HasAVX512VNNI, "avx512vnni"},
		{i.HasAVX512VBMI, "avx512vbmi"},
		{i.HasAVX512DQ, "avx512dq"},
		{i.HasNEON, "neon"},
		{i.HasNEONFMA, "neonfma"},
		{i.HasSVE, "sve"},
		{i.HasSVE2, "sve2"},
		{i.HasI8MM, "i8mm"},
		{i.HasFP16, "fp16"},
	} {
		if f.set {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

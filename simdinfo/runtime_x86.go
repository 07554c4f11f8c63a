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

//go:build amd64 || 386

package simdinfo

import "github.com/klauspost/cpuid/v2"

// x86Features maps each record flag to the CPUID feature bit backing it.
// The bits live in CPUID leaf 1 (F16C, FMA) and leaf 7 sub-leaf 0 (the
// AVX family); cpuid decodes the raw registers. This table is the
// contract with the ISA and must not be reordered against the record.
var x86Features = []struct {
	id   cpuid.FeatureID
	flag func(*Info) *bool
}{
	{cpuid.AVX, func(i *Info) *bool { return &i.HasAVX }},
	{cpuid.AVX2, func(i *Info) *bool { return &i.HasAVX2 }},
	{cpuid.AVXVNNI, func(i *Info) *bool { return &i.HasAVXVNNI }},
	{cpuid.F16C, func(i *Info) *bool { return &i.HasF16C }},
	{cpuid.FMA3, func(i *Info) *bool { return &i.HasFMA }},
	{cpuid.AVX512F, func(i *Info) *bool { return &i.HasAVX512F }},
	{cpuid.AVX512FP16, func(i *Info) *bool { return &i.HasAVX512FP16 }},
	{cpuid.AVX512BF16, func(i *Info) *bool { return &i.HasAVX512BF16 }},
	{cpuid.AVX512VNNI, func(i *Info) *bool { return &i.HasAVX512VNNI }},
	{cpuid.AVX512VBMI, func(i *Info) *bool { return &i.HasAVX512VBMI }},
	{cpuid.AVX512DQ, func(i *Info) *bool { return &i.HasAVX512DQ }},
}

func probeRuntime() Info {
	var info Info
	for _, f := range x86Features {
		if cpuid.CPU.Supports(f.id) {
			*f.flag(&info) = true
		}
	}
	return info
}

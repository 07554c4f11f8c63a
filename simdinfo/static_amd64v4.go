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

//go:build amd64.v4

package simdinfo

// Static returns the capabilities guaranteed by the build target.
//
// GOAMD64=v4 extends the v3 baseline with the AVX-512 F/BW/CD/DQ/VL group.
// The record tracks F and DQ from that group; the optional AVX-512
// sub-extensions (FP16, BF16, VNNI, VBMI) are not part of any GOAMD64
// level and stay false here.
func Static() Info {
	return Info{
		HasAVX:      true,
		HasAVX2:     true,
		HasFMA:      true,
		HasF16C:     true,
		HasAVX512F:  true,
		HasAVX512DQ: true,
	}
}

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

//go:build amd64.v3 && !amd64.v4

package simdinfo

// Static returns the capabilities guaranteed by the build target.
//
// GOAMD64=v3 requires AVX, AVX2, FMA and F16C from the processor, so a v3
// binary may assume them unconditionally.
func Static() Info {
	return Info{
		HasAVX:  true,
		HasAVX2: true,
		HasFMA:  true,
		HasF16C: true,
	}
}

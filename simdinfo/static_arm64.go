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

//go:build arm64

package simdinfo

// Static returns the capabilities guaranteed by the build target.
//
// Every 64-bit ARM processor implements NEON with fused multiply-add.
// SVE and the v8.2+ extensions are optional and require a runtime probe.
func Static() Info {
	return Info{
		HasNEON:    true,
		HasNEONFMA: true,
	}
}

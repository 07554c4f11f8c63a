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

//go:build arm

package simdinfo

import "golang.org/x/sys/cpu"

// probeRuntime reads 32-bit ARM features from the Linux hwcap vector.
// NEON is optional on 32-bit ARM, and x/sys/cpu leaves every flag false
// on operating systems without a hwcap source.
func probeRuntime() Info {
	return Info{
		HasNEON:    cpu.ARM.HasNEON,
		HasNEONFMA: cpu.ARM.HasVFPv4,
	}
}

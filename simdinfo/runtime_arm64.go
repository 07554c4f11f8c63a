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

//go:build arm64 && !darwin

package simdinfo

import "golang.org/x/sys/cpu"

// probeRuntime reads the optional arm64 extensions from the kernel's
// hardware-capability vector (AT_HWCAP/AT_HWCAP2 on Linux). NEON and its
// fused multiply-add are the architecture baseline and need no probe.
// On operating systems where x/sys/cpu has no hwcap source the optional
// flags stay false.
func probeRuntime() Info {
	return Info{
		HasNEON:    true,
		HasNEONFMA: true,
		HasSVE:     cpu.ARM64.HasSVE,
		HasSVE2:    cpu.ARM64.HasSVE2,
		HasI8MM:    cpu.ARM64.HasI8MM,
		HasFP16:    cpu.ARM64.HasASIMDHP,
	}
}

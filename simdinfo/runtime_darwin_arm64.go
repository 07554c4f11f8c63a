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

//go:build darwin && arm64

package simdinfo

import "golang.org/x/sys/unix"

// probeRuntime queries the hw.optional.arm.FEAT_* sysctl namespace, one
// key per feature. A key that is absent (older macOS, or a feature Apple
// silicon does not implement, such as SVE) reads as unsupported.
func probeRuntime() Info {
	return Info{
		HasNEON:    true,
		HasNEONFMA: true,
		HasSVE:     sysctlFeature("hw.optional.arm.FEAT_SVE"),
		HasSVE2:    sysctlFeature("hw.optional.arm.FEAT_SVE2"),
		HasI8MM:    sysctlFeature("hw.optional.arm.FEAT_I8MM"),
		HasFP16:    sysctlFeature("hw.optional.arm.FEAT_FP16"),
	}
}

func sysctlFeature(name string) bool {
	v, err := unix.SysctlUint32(name)
	return err == nil && v == 1
}

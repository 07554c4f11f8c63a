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

package simdinfo

import "sync"

var (
	runtimeOnce   sync.Once
	runtimeCached Info

	overrideMu sync.RWMutex
	override   *Info
)

// Runtime returns the capabilities of the executing processor.
//
// The probe (CPUID queries on x86, hwcap/sysctl reads on ARM) runs at
// most once per process; every subsequent call returns the cached record.
// Hardware capabilities cannot change at runtime, so the cache is never
// invalidated. Safe for concurrent use.
func Runtime() Info {
	overrideMu.RLock()
	forced := override
	overrideMu.RUnlock()
	if forced != nil {
		return *forced
	}

	runtimeOnce.Do(func() {
		runtimeCached = probeRuntime()
	})
	return runtimeCached
}

// SetOverride forces Runtime to return the given record until
// ClearOverride is called. It exists so tests can exercise dispatch
// decisions for hardware the test machine does not have; production code
// should never call it.
func SetOverride(info Info) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	forced := info
	override = &forced
}

// ClearOverride removes a record installed by SetOverride.
func ClearOverride() {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	override = nil
}

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

// Package main provides a diagnostic tool to print detected SIMD
// capabilities and the dot-product kernel they select.
package main

import (
	"fmt"
	"runtime"

	"github.com/abetlen/simdinfo/simdinfo"
	"github.com/abetlen/simdinfo/vdot"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Static capabilities:  %s\n", simdinfo.Static())
	fmt.Printf("Runtime capabilities: %s\n", simdinfo.Runtime())
	fmt.Println()

	fmt.Printf("Dispatch mode:   %s\n", vdot.DispatchMode())
	fmt.Printf("Selected kernel: %s\n", vdot.SelectedKernel())
}

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

// Package main demonstrates the vdot dispatcher: it fills two buffers
// with a[i] = b[i] = i and prints their dot product, whose exact value
// is n(n-1)(2n-1)/6.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abetlen/simdinfo/simdinfo"
	"github.com/abetlen/simdinfo/vdot"
)

func main() {
	var showKernel bool

	rootCmd := &cobra.Command{
		Use:          "vdot <size>",
		Short:        "Compute a demonstration dot product of the given size",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil || size <= 0 {
				return fmt.Errorf("invalid size %q", args[0])
			}

			a := make([]float32, size)
			b := make([]float32, size)
			for i := range a {
				a[i] = float32(i)
				b[i] = float32(i)
			}

			if showKernel {
				fmt.Printf("Runtime capabilities: %s\n", simdinfo.Runtime())
				fmt.Printf("Dispatch mode: %s\n", vdot.DispatchMode())
				fmt.Printf("Kernel: %s\n", vdot.SelectedKernel())
			}

			fmt.Printf("Result: %.2f\n", vdot.DotF32(a, b))
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&showKernel, "kernel-info", false,
		"print the detected capabilities and selected kernel")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Qirlab Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/qirlab/go-qir/pkg/devices"
	"github.com/qirlab/go-qir/pkg/ir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd checks a program file against the current core and,
// optionally, against a device gate set.
var validateCmd = &cobra.Command{
	Use:   "validate [flags] input_file",
	Short: "Validate a program file against the current core and an optional device.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		qubits, err := cmd.Flags().GetUint64("qubits")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		program := readProgramFile(args[0])
		//
		min := program.MinimumSupportedVersion()
		if !ir.CurrentVersion.AtLeast(min) {
			fmt.Printf("program requires core v%s, this core is v%s\n", min, ir.CurrentVersion)
			os.Exit(1)
		}
		//
		log.Debugf("program requires core v%s", min)
		//
		if qubits > 0 {
			device := devices.NewAllToAllDevice(qubits, ir.AvailableGates(), ir.AvailableGates(), 1.0)
			//
			for i, c := range program.Measurement.MeasurementCircuits() {
				if at, ok := devices.SupportsCircuit(device, c); !ok {
					fmt.Printf("circuit %d: operation %d not executable on %d qubit(s)\n", i, at, qubits)
					os.Exit(1)
				}
			}
		}
		//
		fmt.Println("ok")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Uint64("qubits", 0, "check gates fit a device with this many qubits")
}

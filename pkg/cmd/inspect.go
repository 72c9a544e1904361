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
	"strings"

	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// inspectCmd prints a human-readable summary of a program file.
var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] input_file",
	Short: "Print the contents of a program file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		program := readProgramFile(args[0])
		m := program.Measurement
		//
		fmt.Printf("measurement: %s\n", m.Name())
		fmt.Printf("parameters:  [%s]\n", strings.Join(program.InputParameterNames, ", "))
		fmt.Printf("requires:    core v%s\n", program.MinimumSupportedVersion())
		//
		if constant := m.Constant(); constant != nil {
			fmt.Println("constant circuit:")
			printCircuit(*constant)
		}
		//
		for i, c := range m.MeasurementCircuits() {
			fmt.Printf("circuit %d (qubits %s):\n", i, c.InvolvedQubits())
			printCircuit(c)
		}
	},
}

// printCircuit writes one operation per line, truncated to the terminal
// width when attached to one.
func printCircuit(circuit ir.Circuit) {
	width := 80
	//
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 8 {
		width = w
	}
	//
	for _, line := range strings.Split(strings.TrimRight(circuit.String(), "\n"), "\n") {
		if len(line) > width-2 {
			line = line[:width-5] + "..."
		}
		//
		fmt.Printf("  %s\n", line)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

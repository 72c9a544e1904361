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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// convertCmd rewrites a program file between the binary and JSON containers.
var convertCmd = &cobra.Command{
	Use:   "convert [flags] input_file",
	Short: "Convert a program file between binary and JSON formats.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output := getString(cmd, "output")
		//
		program := readProgramFile(args[0])
		//
		log.Debugf("read program with %d measurement circuit(s) from %s",
			len(program.Measurement.MeasurementCircuits()), args[0])
		//
		writeProgramFile(output, program)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "out.json", "output file (extension selects format)")
}

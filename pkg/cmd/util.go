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
	"path"

	"github.com/qirlab/go-qir/pkg/binfile"
	"github.com/qirlab/go-qir/pkg/jsonfile"
	"github.com/qirlab/go-qir/pkg/measurement"
)

// Parse a program file using a decoder based on the extension of the
// filename.
func readProgramFile(filename string) measurement.QuantumProgram {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		ext := path.Ext(filename)
		//
		switch ext {
		case ".json":
			var file jsonfile.JsonFile
			//
			if err = file.Unmarshal(bytes); err == nil {
				return file.Program
			}
		case ".bin":
			var file binfile.BinaryFile
			//
			if err = file.UnmarshalBinary(bytes); err == nil {
				return file.Program
			}
		default:
			err = fmt.Errorf("unknown program file format: %s", ext)
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return measurement.QuantumProgram{}
}

// Write a program file using an encoder based on the extension of the
// filename.
func writeProgramFile(filename string, program measurement.QuantumProgram) {
	var (
		data []byte
		err  error
	)
	//
	switch ext := path.Ext(filename); ext {
	case ".json":
		data, err = jsonfile.NewJsonFile(nil, program).Marshal()
	case ".bin":
		data, err = binfile.NewBinaryFile(nil, nil, program).MarshalBinary()
	default:
		err = fmt.Errorf("unknown program file format: %s", ext)
	}
	//
	if err == nil {
		err = os.WriteFile(filename, data, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

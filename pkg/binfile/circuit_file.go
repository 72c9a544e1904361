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
package binfile

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/qirlab/go-qir/pkg/ir"
)

// CircuitFile stores a single circuit outside the program envelope, for
// example as a compilation intermediate.
type CircuitFile struct {
	Header  Header
	Circuit ir.Circuit
}

// QIRCIRCUIT is the file identifier for standalone circuit files.
var QIRCIRCUIT [8]byte = [8]byte{'q', 'i', 'r', 'c', 'i', 'r', 'c', 't'}

// NewCircuitFile constructs a circuit file around the given circuit, tagging
// the header with the oldest core able to read it.
func NewCircuitFile(metadata []byte, circuit ir.Circuit) *CircuitFile {
	minor := uint16(circuit.MinimumSupportedVersion().Minor)
	//
	return &CircuitFile{
		Header{QIRCIRCUIT, FORMAT_MAJOR_VERSION, minor, metadata},
		circuit,
	}
}

// IsCircuitFile checks whether the given data begins with the circuit file
// identifier.
func IsCircuitFile(data []byte) bool {
	var (
		identifier [8]byte
		buffer     *bytes.Buffer = bytes.NewBuffer(data)
	)
	//
	if _, err := buffer.Read(identifier[:]); err != nil {
		return false
	}
	//
	return identifier == QIRCIRCUIT
}

// MarshalBinary converts the circuit file into a sequence of bytes.
func (p *CircuitFile) MarshalBinary() ([]byte, error) {
	var buffer bytes.Buffer
	//
	headerBytes, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	//
	buffer.Write(headerBytes)
	//
	if err := gob.NewEncoder(&buffer).Encode(&p.Circuit); err != nil {
		return nil, &ir.SerializationError{Reason: "encoding circuit", Cause: err}
	}
	//
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this circuit file from a given set of data
// bytes.  This matches exactly the encoding above.
func (p *CircuitFile) UnmarshalBinary(data []byte) error {
	buffer := bytes.NewBuffer(data)
	//
	if err := p.Header.UnmarshalBinary(buffer); err != nil {
		return err
	}
	//
	if p.Header.Identifier != QIRCIRCUIT || p.Header.MajorVersion != FORMAT_MAJOR_VERSION ||
		uint32(p.Header.MinorVersion) > ir.CurrentVersion.Minor {
		return fmt.Errorf("incompatible circuit file (was v%d.%d, but expected v%d.%d or older)",
			p.Header.MajorVersion, p.Header.MinorVersion, FORMAT_MAJOR_VERSION, ir.CurrentVersion.Minor)
	}
	//
	if err := gob.NewDecoder(buffer).Decode(&p.Circuit); err != nil {
		return &ir.SerializationError{Reason: "decoding circuit", Cause: err}
	}
	//
	return nil
}

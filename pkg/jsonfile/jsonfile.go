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

// Package jsonfile defines the JSON container mirroring the binary file
// format: the same identifier and version discipline, with a human-readable
// payload.  It also exposes per-variant schema documents for external
// validation tooling.
package jsonfile

import (
	"fmt"

	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/measurement"
	"github.com/segmentio/encoding/json"
)

// Identifier marks JSON program files.
const Identifier = "qirjson"

// JsonFile is the JSON counterpart of binfile.BinaryFile.
type JsonFile struct {
	Identifier   string                     `json:"identifier"`
	MajorVersion uint16                     `json:"major_version"`
	MinorVersion uint16                     `json:"minor_version"`
	Metadata     map[string]string          `json:"metadata,omitempty"`
	Program      measurement.QuantumProgram `json:"program"`
}

// NewJsonFile constructs a JSON file around the given program, tagging it
// with the oldest core able to read the payload.
func NewJsonFile(metadata map[string]string, program measurement.QuantumProgram) *JsonFile {
	return &JsonFile{
		Identifier:   Identifier,
		MajorVersion: 1,
		MinorVersion: uint16(program.MinimumSupportedVersion().Minor),
		Metadata:     metadata,
		Program:      program,
	}
}

// Marshal encodes the file as JSON.
func (p *JsonFile) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a JSON program file, rejecting files written by newer
// cores up front.
func (p *JsonFile) Unmarshal(data []byte) error {
	// Probe the envelope before touching the payload, so version mismatch
	// beats any unknown-variant error inside the program.
	var envelope struct {
		Identifier   string `json:"identifier"`
		MajorVersion uint16 `json:"major_version"`
		MinorVersion uint16 `json:"minor_version"`
	}
	//
	if err := json.Unmarshal(data, &envelope); err != nil {
		return &ir.SerializationError{Reason: "decoding file envelope", Cause: err}
	}
	//
	if envelope.Identifier != Identifier {
		return fmt.Errorf("not a %s file (identifier %q)", Identifier, envelope.Identifier)
	}
	//
	if envelope.MajorVersion != 1 || uint32(envelope.MinorVersion) > ir.CurrentVersion.Minor {
		return fmt.Errorf("incompatible json file (was v%d.%d, but expected v1.%d or older)",
			envelope.MajorVersion, envelope.MinorVersion, ir.CurrentVersion.Minor)
	}
	//
	type alias JsonFile
	//
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &ir.SerializationError{Reason: "decoding json file", Cause: err}
	}
	//
	return nil
}

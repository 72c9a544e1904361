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
package measurement

import (
	"bytes"
	"fmt"

	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/segmentio/encoding/json"
)

// Measurements cross the JSON boundary externally tagged by their name, the
// same scheme operations use.

var measurementFactories = map[string]func([]byte) (Measurement, error){
	"ClassicalRegister": decodeMeasurement[ClassicalRegister],
	"PauliZProduct":     decodeMeasurement[PauliZProduct],
}

func decodeMeasurement[T Measurement](data []byte) (Measurement, error) {
	var m T
	//
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ir.SerializationError{Reason: "decoding measurement body", Cause: err}
	}
	//
	return m, nil
}

// MarshalJSON encodes the program with its measurement externally tagged,
// e.g. {"measurement":{"PauliZProduct":{...}},"input_parameter_names":[...]}.
func (p QuantumProgram) MarshalJSON() ([]byte, error) {
	if p.Measurement == nil {
		return nil, &ir.SerializationError{Reason: "program has no measurement"}
	}
	//
	body, err := json.Marshal(p.Measurement)
	if err != nil {
		return nil, &ir.SerializationError{Reason: "encoding measurement", Cause: err}
	}
	//
	names, err := json.Marshal(p.InputParameterNames)
	if err != nil {
		return nil, &ir.SerializationError{Reason: "encoding parameter names", Cause: err}
	}
	//
	var buffer bytes.Buffer
	//
	fmt.Fprintf(&buffer, `{"measurement":{%q:`, p.Measurement.Name())
	buffer.Write(body)
	buffer.WriteString(`},"input_parameter_names":`)
	buffer.Write(names)
	buffer.WriteByte('}')
	//
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes the body written by MarshalJSON.
func (p *QuantumProgram) UnmarshalJSON(data []byte) error {
	var body struct {
		Measurement         map[string]json.RawMessage `json:"measurement"`
		InputParameterNames []string                   `json:"input_parameter_names"`
	}
	//
	if err := json.Unmarshal(data, &body); err != nil {
		return &ir.SerializationError{Reason: "decoding program", Cause: err}
	} else if len(body.Measurement) != 1 {
		return &ir.SerializationError{
			Reason: fmt.Sprintf("measurement object must have exactly one key, found %d", len(body.Measurement)),
		}
	}
	//
	for name, raw := range body.Measurement {
		factory, ok := measurementFactories[name]
		//
		if !ok {
			return &ir.SerializationError{Reason: fmt.Sprintf("unknown measurement kind %q", name)}
		}
		//
		m, err := factory(raw)
		if err != nil {
			return err
		}
		//
		p.Measurement = m
	}
	//
	p.InputParameterNames = body.InputParameterNames
	//
	return nil
}

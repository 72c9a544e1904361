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

// Package measurement bundles circuits into executable measurement
// specifications: a grouping strategy (e.g. Pauli-product decomposition),
// the circuits realising it, and the free parameters a caller must bind
// before execution.
package measurement

import (
	"encoding/gob"
	"fmt"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/ir"
)

// Measurement is a named specification of how measurement circuits are
// grouped and postprocessed.  Implementations are value types, mirroring the
// operation algebra.
type Measurement interface {
	// Name returns the stable identifier of the measurement kind.
	Name() string

	// Constant returns the shared prologue circuit, or nil if none.
	Constant() *ir.Circuit

	// MeasurementCircuits returns the per-basis measurement circuits.
	MeasurementCircuits() []ir.Circuit

	// SubstituteParameters resolves all symbolic parameters in the
	// contained circuits against the given bindings.
	SubstituteParameters(bindings calculator.Bindings) (Measurement, error)
}

// substituteCircuits applies parameter substitution to an optional prologue
// and a circuit list.
func substituteCircuits(
	bindings calculator.Bindings, constant *ir.Circuit, circuits []ir.Circuit,
) (*ir.Circuit, []ir.Circuit, error) {
	var err error
	//
	if constant != nil {
		substituted, err := constant.SubstituteParameters(bindings)
		if err != nil {
			return nil, nil, err
		}
		//
		constant = &substituted
	}
	//
	resolved := make([]ir.Circuit, len(circuits))
	//
	for i, c := range circuits {
		if resolved[i], err = c.SubstituteParameters(bindings); err != nil {
			return nil, nil, err
		}
	}
	//
	return constant, resolved, nil
}

// ClassicalRegister is the simplest measurement: run the circuits and hand
// the raw classical register contents back to the caller.
type ClassicalRegister struct {
	ConstantCircuit *ir.Circuit  `json:"constant_circuit"`
	Circuits        []ir.Circuit `json:"circuits"`
}

// Name returns "ClassicalRegister".
func (p ClassicalRegister) Name() string { return "ClassicalRegister" }

// Constant returns the shared prologue circuit, or nil if none.
func (p ClassicalRegister) Constant() *ir.Circuit { return p.ConstantCircuit }

// MeasurementCircuits returns the per-basis measurement circuits.
func (p ClassicalRegister) MeasurementCircuits() []ir.Circuit { return p.Circuits }

// SubstituteParameters resolves all symbolic parameters in the contained
// circuits against the given bindings.
func (p ClassicalRegister) SubstituteParameters(bindings calculator.Bindings) (Measurement, error) {
	constant, circuits, err := substituteCircuits(bindings, p.ConstantCircuit, p.Circuits)
	if err != nil {
		return nil, err
	}
	//
	return ClassicalRegister{ConstantCircuit: constant, Circuits: circuits}, nil
}

// QuantumProgram pairs a measurement with the ordered list of free parameter
// names a caller must bind before execution.  It is the unit of storage and
// transmission.
type QuantumProgram struct {
	Measurement         Measurement `json:"measurement"`
	InputParameterNames []string    `json:"input_parameter_names"`
}

// NewQuantumProgram constructs a program over the given measurement and
// parameter names.
func NewQuantumProgram(measurement Measurement, inputParameterNames []string) QuantumProgram {
	return QuantumProgram{Measurement: measurement, InputParameterNames: inputParameterNames}
}

// Bind resolves the program's free parameters positionally against the given
// values, returning the fully-substituted measurement.  The number of values
// must match the number of declared parameter names.
func (p QuantumProgram) Bind(values []float64) (Measurement, error) {
	if len(values) != len(p.InputParameterNames) {
		return nil, fmt.Errorf("program expects %d parameter values, got %d",
			len(p.InputParameterNames), len(values))
	}
	//
	bindings := make(calculator.Bindings, len(values))
	//
	for i, name := range p.InputParameterNames {
		bindings[name] = values[i]
	}
	//
	return p.Measurement.SubstituteParameters(bindings)
}

// MinimumSupportedVersion returns the oldest core version able to
// deserialize every circuit in this program.
func (p QuantumProgram) MinimumSupportedVersion() ir.Version {
	min := ir.Version{Major: 1, Minor: 0, Patch: 0}
	//
	if p.Measurement == nil {
		return min
	}
	//
	if constant := p.Measurement.Constant(); constant != nil {
		min = min.Max(constant.MinimumSupportedVersion())
	}
	//
	for _, c := range p.Measurement.MeasurementCircuits() {
		min = min.Max(c.MinimumSupportedVersion())
	}
	//
	return min
}

// Measurement implementations serialize as gob interface values inside
// QuantumProgram.
func init() {
	gob.Register(ClassicalRegister{})
	gob.Register(PauliZProduct{})
}

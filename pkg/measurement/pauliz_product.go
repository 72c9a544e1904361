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
	"fmt"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/ir"
)

// ExpVal describes how one named expectation value is assembled from
// measured Pauli products: either a linear combination with fixed
// coefficients, or a symbolic expression over products identified as
// "pauli_product_<i>".
type ExpVal struct {
	Symbolic     bool               `json:"symbolic"`
	Coefficients map[uint64]float64 `json:"coefficients"`
	Expression   calculator.Value   `json:"expression"`
}

// PauliZProductInput configures the postprocessing of a Pauli-product
// measurement: which qubit masks form each product per readout register, and
// how products combine into named expectation values.
type PauliZProductInput struct {
	// Masks maps readout register -> pauli product index -> qubits whose
	// measured bits are multiplied into the product.
	Masks               map[string]map[uint64][]uint64 `json:"pauli_product_qubit_masks"`
	NumberQubits        uint64                         `json:"number_qubits"`
	NumberPauliProducts uint64                         `json:"number_pauli_products"`
	ExpVals             map[string]ExpVal              `json:"measured_exp_vals"`
	// UseFlippedMeasurement additionally measures every product with
	// flipped readout to cancel readout bias.
	UseFlippedMeasurement bool `json:"use_flipped_measurement"`
}

// NewPauliZProductInput constructs an empty input over the given number of
// qubits.
func NewPauliZProductInput(numberQubits uint64, useFlippedMeasurement bool) PauliZProductInput {
	return PauliZProductInput{
		Masks:                 make(map[string]map[uint64][]uint64),
		NumberQubits:          numberQubits,
		ExpVals:               make(map[string]ExpVal),
		UseFlippedMeasurement: useFlippedMeasurement,
	}
}

// AddPauliProduct registers the product of Z operators over the given qubits,
// measured from the given readout register, returning the product's index.
func (p *PauliZProductInput) AddPauliProduct(readout string, qubits []uint64) (uint64, error) {
	for _, q := range qubits {
		if q >= p.NumberQubits {
			return 0, fmt.Errorf("qubit %d outside input range of %d qubits", q, p.NumberQubits)
		}
	}
	//
	index := p.NumberPauliProducts
	//
	if p.Masks[readout] == nil {
		p.Masks[readout] = make(map[uint64][]uint64)
	}
	//
	p.Masks[readout][index] = qubits
	p.NumberPauliProducts++
	//
	return index, nil
}

// AddLinearExpVal registers a named expectation value as a linear
// combination of measured products, keyed by product index.
func (p *PauliZProductInput) AddLinearExpVal(name string, coefficients map[uint64]float64) error {
	if _, ok := p.ExpVals[name]; ok {
		return fmt.Errorf("expectation value %q already registered", name)
	}
	//
	p.ExpVals[name] = ExpVal{Coefficients: coefficients}
	//
	return nil
}

// AddSymbolicExpVal registers a named expectation value as a symbolic
// expression over measured products, referenced as "pauli_product_<i>".
func (p *PauliZProductInput) AddSymbolicExpVal(name string, expression calculator.Value) error {
	if _, ok := p.ExpVals[name]; ok {
		return fmt.Errorf("expectation value %q already registered", name)
	}
	//
	p.ExpVals[name] = ExpVal{Symbolic: true, Expression: expression}
	//
	return nil
}

// PauliZProduct measures expectation values by decomposing observables into
// products of Pauli-Z operators, one basis-rotation circuit per measured
// basis.
type PauliZProduct struct {
	ConstantCircuit *ir.Circuit        `json:"constant_circuit"`
	Circuits        []ir.Circuit       `json:"circuits"`
	Input           PauliZProductInput `json:"input"`
}

// Name returns "PauliZProduct".
func (p PauliZProduct) Name() string { return "PauliZProduct" }

// Constant returns the shared prologue circuit, or nil if none.
func (p PauliZProduct) Constant() *ir.Circuit { return p.ConstantCircuit }

// MeasurementCircuits returns the per-basis measurement circuits.
func (p PauliZProduct) MeasurementCircuits() []ir.Circuit { return p.Circuits }

// SubstituteParameters resolves all symbolic parameters in the contained
// circuits against the given bindings.  The input specification carries no
// circuit parameters and is returned unchanged.
func (p PauliZProduct) SubstituteParameters(bindings calculator.Bindings) (Measurement, error) {
	constant, circuits, err := substituteCircuits(bindings, p.ConstantCircuit, p.Circuits)
	if err != nil {
		return nil, err
	}
	//
	return PauliZProduct{ConstantCircuit: constant, Circuits: circuits, Input: p.Input}, nil
}

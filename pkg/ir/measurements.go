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
package ir

import (
	"github.com/qirlab/go-qir/pkg/calculator"
)

// MeasureQubit measures a single qubit into a slot of a classical bit
// register.
type MeasureQubit struct {
	Qubit        uint64 `json:"qubit"`
	Readout      string `json:"readout"`
	ReadoutIndex uint64 `json:"readout_index"`
}

func (p MeasureQubit) Tags() []string           { return tagsMeasurement("MeasureQubit") }
func (p MeasureQubit) HqslangName() string      { return "MeasureQubit" }
func (p MeasureQubit) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p MeasureQubit) IsParametrized() bool     { return false }

func (p MeasureQubit) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p MeasureQubit) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p MeasureQubit) MinimumSupportedVersion() Version { return introducedVersion("MeasureQubit") }

// PragmaRepeatedMeasurement measures all qubits a fixed number of times into
// a bit register, optionally rerouting qubit indices to register slots.
type PragmaRepeatedMeasurement struct {
	Readout            string            `json:"readout"`
	NumberMeasurements uint64            `json:"number_measurements"`
	QubitMapping       map[uint64]uint64 `json:"qubit_mapping"`
}

func (p PragmaRepeatedMeasurement) Tags() []string {
	return tagsMeasurement("PragmaRepeatedMeasurement")
}
func (p PragmaRepeatedMeasurement) HqslangName() string      { return "PragmaRepeatedMeasurement" }
func (p PragmaRepeatedMeasurement) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaRepeatedMeasurement) IsParametrized() bool     { return false }

func (p PragmaRepeatedMeasurement) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

// RemapQubits rewrites the keys of the stored qubit-to-slot mapping.  Since
// this operation involves all qubits, indices absent from the mapping are
// left unchanged rather than failing.
func (p PragmaRepeatedMeasurement) RemapQubits(m QubitMapping) (Operation, error) {
	if p.QubitMapping != nil {
		remapped := make(map[uint64]uint64, len(p.QubitMapping))
		//
		for q, slot := range p.QubitMapping {
			if to, ok := m[q]; ok {
				remapped[to] = slot
			} else {
				remapped[q] = slot
			}
		}
		//
		p.QubitMapping = remapped
	}
	//
	return p, nil
}

func (p PragmaRepeatedMeasurement) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaRepeatedMeasurement")
}

// PragmaSetNumberOfMeasurements annotates a readout register with the number
// of measurement repetitions a backend should run.
type PragmaSetNumberOfMeasurements struct {
	NumberMeasurements uint64 `json:"number_measurements"`
	Readout            string `json:"readout"`
}

func (p PragmaSetNumberOfMeasurements) Tags() []string {
	return tagsMeasurement("PragmaSetNumberOfMeasurements")
}
func (p PragmaSetNumberOfMeasurements) HqslangName() string {
	return "PragmaSetNumberOfMeasurements"
}
func (p PragmaSetNumberOfMeasurements) InvolvedQubits() QubitSet { return NoQubits() }
func (p PragmaSetNumberOfMeasurements) IsParametrized() bool     { return false }

func (p PragmaSetNumberOfMeasurements) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaSetNumberOfMeasurements) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaSetNumberOfMeasurements) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaSetNumberOfMeasurements")
}

// PragmaGetStateVector instructs a simulator backend to write the full state
// vector into a complex register, optionally after an extra measurement
// circuit.
type PragmaGetStateVector struct {
	Readout string   `json:"readout"`
	Circuit *Circuit `json:"circuit"`
}

func (p PragmaGetStateVector) Tags() []string           { return tagsMeasurement("PragmaGetStateVector") }
func (p PragmaGetStateVector) HqslangName() string      { return "PragmaGetStateVector" }
func (p PragmaGetStateVector) InvolvedQubits() QubitSet { return AllQubits() }

func (p PragmaGetStateVector) IsParametrized() bool {
	return p.Circuit != nil && p.Circuit.IsParametrized()
}

func (p PragmaGetStateVector) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.SubstituteParameters(b)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetStateVector) RemapQubits(m QubitMapping) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.RemapQubits(m)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetStateVector) MinimumSupportedVersion() Version {
	min := introducedVersion("PragmaGetStateVector")
	//
	if p.Circuit != nil {
		min = min.Max(p.Circuit.MinimumSupportedVersion())
	}
	//
	return min
}

// PragmaGetDensityMatrix instructs a simulator backend to write the density
// matrix into a complex register, optionally after an extra measurement
// circuit.
type PragmaGetDensityMatrix struct {
	Readout string   `json:"readout"`
	Circuit *Circuit `json:"circuit"`
}

func (p PragmaGetDensityMatrix) Tags() []string {
	return tagsMeasurement("PragmaGetDensityMatrix")
}
func (p PragmaGetDensityMatrix) HqslangName() string      { return "PragmaGetDensityMatrix" }
func (p PragmaGetDensityMatrix) InvolvedQubits() QubitSet { return AllQubits() }

func (p PragmaGetDensityMatrix) IsParametrized() bool {
	return p.Circuit != nil && p.Circuit.IsParametrized()
}

func (p PragmaGetDensityMatrix) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.SubstituteParameters(b)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetDensityMatrix) RemapQubits(m QubitMapping) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.RemapQubits(m)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetDensityMatrix) MinimumSupportedVersion() Version {
	min := introducedVersion("PragmaGetDensityMatrix")
	//
	if p.Circuit != nil {
		min = min.Max(p.Circuit.MinimumSupportedVersion())
	}
	//
	return min
}

// PragmaGetOccupationProbability instructs a simulator backend to write
// occupation probabilities into a float register, optionally after an extra
// measurement circuit.
type PragmaGetOccupationProbability struct {
	Readout string   `json:"readout"`
	Circuit *Circuit `json:"circuit"`
}

func (p PragmaGetOccupationProbability) Tags() []string {
	return tagsMeasurement("PragmaGetOccupationProbability")
}
func (p PragmaGetOccupationProbability) HqslangName() string {
	return "PragmaGetOccupationProbability"
}
func (p PragmaGetOccupationProbability) InvolvedQubits() QubitSet { return AllQubits() }

func (p PragmaGetOccupationProbability) IsParametrized() bool {
	return p.Circuit != nil && p.Circuit.IsParametrized()
}

func (p PragmaGetOccupationProbability) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.SubstituteParameters(b)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetOccupationProbability) RemapQubits(m QubitMapping) (Operation, error) {
	if p.Circuit != nil {
		circuit, err := p.Circuit.RemapQubits(m)
		if err != nil {
			return nil, err
		}
		//
		p.Circuit = &circuit
	}
	//
	return p, nil
}

func (p PragmaGetOccupationProbability) MinimumSupportedVersion() Version {
	min := introducedVersion("PragmaGetOccupationProbability")
	//
	if p.Circuit != nil {
		min = min.Max(p.Circuit.MinimumSupportedVersion())
	}
	//
	return min
}

// PragmaGetPauliProduct instructs a simulator backend to compute the
// expectation value of a product of Pauli operators, given as a map from
// qubit index to Pauli kind (0=I, 1=X, 2=Y, 3=Z), after running a basis
// rotation circuit.
type PragmaGetPauliProduct struct {
	QubitPaulis map[uint64]uint64 `json:"qubit_paulis"`
	Readout     string            `json:"readout"`
	Circuit     Circuit           `json:"circuit"`
}

func (p PragmaGetPauliProduct) Tags() []string {
	return tagsMeasurement("PragmaGetPauliProduct")
}
func (p PragmaGetPauliProduct) HqslangName() string      { return "PragmaGetPauliProduct" }
func (p PragmaGetPauliProduct) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaGetPauliProduct) IsParametrized() bool     { return p.Circuit.IsParametrized() }

func (p PragmaGetPauliProduct) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	circuit, err := p.Circuit.SubstituteParameters(b)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

// RemapQubits rewrites the keys of the Pauli-product map and recurses into
// the basis rotation circuit.  Indices absent from the mapping are left
// unchanged, as this operation involves all qubits.
func (p PragmaGetPauliProduct) RemapQubits(m QubitMapping) (Operation, error) {
	circuit, err := p.Circuit.RemapQubits(m)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	if p.QubitPaulis != nil {
		remapped := make(map[uint64]uint64, len(p.QubitPaulis))
		//
		for q, pauli := range p.QubitPaulis {
			if to, ok := m[q]; ok {
				remapped[to] = pauli
			} else {
				remapped[q] = pauli
			}
		}
		//
		p.QubitPaulis = remapped
	}
	//
	return p, nil
}

func (p PragmaGetPauliProduct) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaGetPauliProduct").Max(p.Circuit.MinimumSupportedVersion())
}

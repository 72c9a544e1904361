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

// GateDefinition defines a named composite gate as a circuit over formal
// qubit placeholders and formal free parameters.  The definition itself acts
// on no qubits; CallDefinedGate instantiates it.
type GateDefinition struct {
	Circuit        Circuit  `json:"circuit"`
	Name           string   `json:"name"`
	Qubits         []uint64 `json:"qubits"`
	FreeParameters []string `json:"free_parameters"`
}

func (p GateDefinition) Tags() []string           { return tagsDefinition("GateDefinition") }
func (p GateDefinition) HqslangName() string      { return "GateDefinition" }
func (p GateDefinition) InvolvedQubits() QubitSet { return NoQubits() }
func (p GateDefinition) IsParametrized() bool     { return false }

// SubstituteParameters leaves the definition untouched: its circuit is
// expressed over formal parameters which are bound at call sites, not here.
func (p GateDefinition) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

// RemapQubits leaves the definition untouched: its qubit indices are formal
// placeholders, not physical qubits.
func (p GateDefinition) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p GateDefinition) MinimumSupportedVersion() Version {
	return introducedVersion("GateDefinition")
}

// CallDefinedGate instantiates a gate introduced by GateDefinition on
// concrete qubits with concrete (or symbolic) parameter values.
type CallDefinedGate struct {
	GateName       string             `json:"gate_name"`
	Qubits         []uint64           `json:"qubits"`
	FreeParameters []calculator.Value `json:"free_parameters"`
}

func (p CallDefinedGate) Tags() []string {
	return []string{"Operation", "CallDefinedGate"}
}

func (p CallDefinedGate) HqslangName() string      { return "CallDefinedGate" }
func (p CallDefinedGate) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }

func (p CallDefinedGate) IsParametrized() bool {
	return anySymbolic(p.FreeParameters...)
}

func (p CallDefinedGate) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	parameters := make([]calculator.Value, len(p.FreeParameters))
	copy(parameters, p.FreeParameters)
	//
	pointers := make([]*calculator.Value, len(parameters))
	for i := range parameters {
		pointers[i] = &parameters[i]
	}
	//
	if err := substituteAll(b, pointers...); err != nil {
		return nil, err
	}
	//
	p.FreeParameters = parameters
	//
	return p, nil
}

func (p CallDefinedGate) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	return p, nil
}

func (p CallDefinedGate) MinimumSupportedVersion() Version {
	return introducedVersion("CallDefinedGate")
}

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

// PragmaLoop repeats an inner circuit a number of times.  The repetition
// count may be symbolic, in which case it has to be bound before execution.
type PragmaLoop struct {
	Repetitions calculator.Value `json:"repetitions"`
	Circuit     Circuit          `json:"circuit"`
}

func (p PragmaLoop) Tags() []string           { return tagsPragma("PragmaLoop") }
func (p PragmaLoop) HqslangName() string      { return "PragmaLoop" }
func (p PragmaLoop) InvolvedQubits() QubitSet { return p.Circuit.InvolvedQubits() }

func (p PragmaLoop) IsParametrized() bool {
	return anySymbolic(p.Repetitions) || p.Circuit.IsParametrized()
}

func (p PragmaLoop) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Repetitions); err != nil {
		return nil, err
	}
	//
	circuit, err := p.Circuit.SubstituteParameters(b)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaLoop) RemapQubits(m QubitMapping) (Operation, error) {
	circuit, err := p.Circuit.RemapQubits(m)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaLoop) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaLoop").Max(p.Circuit.MinimumSupportedVersion())
}

// PragmaConditional executes an inner circuit only when a given slot of a
// classical bit register is set.
type PragmaConditional struct {
	ConditionRegister string  `json:"condition_register"`
	ConditionIndex    uint64  `json:"condition_index"`
	Circuit           Circuit `json:"circuit"`
}

func (p PragmaConditional) Tags() []string           { return tagsPragma("PragmaConditional") }
func (p PragmaConditional) HqslangName() string      { return "PragmaConditional" }
func (p PragmaConditional) InvolvedQubits() QubitSet { return p.Circuit.InvolvedQubits() }
func (p PragmaConditional) IsParametrized() bool     { return p.Circuit.IsParametrized() }

func (p PragmaConditional) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	circuit, err := p.Circuit.SubstituteParameters(b)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaConditional) RemapQubits(m QubitMapping) (Operation, error) {
	circuit, err := p.Circuit.RemapQubits(m)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaConditional) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaConditional").Max(p.Circuit.MinimumSupportedVersion())
}

// PragmaControlledCircuit applies an inner circuit controlled on a single
// qubit: every unitary in the circuit acts only when the controlling qubit
// is in state one.
type PragmaControlledCircuit struct {
	ControllingQubit uint64  `json:"controlling_qubit"`
	Circuit          Circuit `json:"circuit"`
}

func (p PragmaControlledCircuit) Tags() []string      { return tagsPragma("PragmaControlledCircuit") }
func (p PragmaControlledCircuit) HqslangName() string { return "PragmaControlledCircuit" }

func (p PragmaControlledCircuit) InvolvedQubits() QubitSet {
	return p.Circuit.InvolvedQubits().Union(QubitsOf(p.ControllingQubit))
}

func (p PragmaControlledCircuit) IsParametrized() bool { return p.Circuit.IsParametrized() }

func (p PragmaControlledCircuit) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	circuit, err := p.Circuit.SubstituteParameters(b)
	if err != nil {
		return nil, err
	}
	//
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaControlledCircuit) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.ControllingQubit)
	if err != nil {
		return nil, err
	}
	//
	circuit, err := p.Circuit.RemapQubits(m)
	if err != nil {
		return nil, err
	}
	//
	p.ControllingQubit = q
	p.Circuit = circuit
	//
	return p, nil
}

func (p PragmaControlledCircuit) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaControlledCircuit").Max(p.Circuit.MinimumSupportedVersion())
}

// PragmaAnnotatedOp attaches a free-form annotation to a wrapped operation,
// for example to tag it for a compiler pass.  All capabilities delegate to
// the wrapped operation.
type PragmaAnnotatedOp struct {
	Operation  Operation `json:"operation"`
	Annotation string    `json:"annotation"`
}

func (p PragmaAnnotatedOp) Tags() []string           { return tagsPragma("PragmaAnnotatedOp") }
func (p PragmaAnnotatedOp) HqslangName() string      { return "PragmaAnnotatedOp" }
func (p PragmaAnnotatedOp) InvolvedQubits() QubitSet { return p.Operation.InvolvedQubits() }
func (p PragmaAnnotatedOp) IsParametrized() bool     { return p.Operation.IsParametrized() }

func (p PragmaAnnotatedOp) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	inner, err := p.Operation.SubstituteParameters(b)
	if err != nil {
		return nil, err
	}
	//
	p.Operation = inner
	//
	return p, nil
}

func (p PragmaAnnotatedOp) RemapQubits(m QubitMapping) (Operation, error) {
	inner, err := p.Operation.RemapQubits(m)
	if err != nil {
		return nil, err
	}
	//
	p.Operation = inner
	//
	return p, nil
}

func (p PragmaAnnotatedOp) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaAnnotatedOp").Max(p.Operation.MinimumSupportedVersion())
}

// PragmaChangeDevice instructs a backend to reconfigure the device mid
// circuit.  The wrapped device-specific operation is carried as an opaque
// payload; only its tags and name are inspected here.
type PragmaChangeDevice struct {
	WrappedTags      []string `json:"wrapped_tags"`
	WrappedHqslang   string   `json:"wrapped_hqslang"`
	WrappedOperation []byte   `json:"wrapped_operation"`
}

func (p PragmaChangeDevice) Tags() []string           { return tagsPragma("PragmaChangeDevice") }
func (p PragmaChangeDevice) HqslangName() string      { return "PragmaChangeDevice" }
func (p PragmaChangeDevice) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaChangeDevice) IsParametrized() bool     { return false }

func (p PragmaChangeDevice) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

// RemapQubits fails whenever the mapping is not the identity, since the
// opaque payload cannot be rewritten.
func (p PragmaChangeDevice) RemapQubits(m QubitMapping) (Operation, error) {
	for from, to := range m {
		if from != to {
			return nil, &RemapError{Qubit: from, Index: -1}
		}
	}
	//
	return p, nil
}

func (p PragmaChangeDevice) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaChangeDevice")
}

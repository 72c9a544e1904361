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

// TripleControlledPauliX is the triply-controlled not gate.
type TripleControlledPauliX struct {
	Control0 uint64 `json:"control_0"`
	Control1 uint64 `json:"control_1"`
	Control2 uint64 `json:"control_2"`
	Target   uint64 `json:"target"`
}

func (p TripleControlledPauliX) Tags() []string {
	return tagsFourQubitGate("TripleControlledPauliX")
}
func (p TripleControlledPauliX) HqslangName() string { return "TripleControlledPauliX" }
func (p TripleControlledPauliX) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Control2, p.Target)
}
func (p TripleControlledPauliX) IsParametrized() bool { return false }
func (p TripleControlledPauliX) Unitary()             {}

func (p TripleControlledPauliX) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p TripleControlledPauliX) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll([]uint64{p.Control0, p.Control1, p.Control2, p.Target})
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Control2, p.Target = qs[0], qs[1], qs[2], qs[3]
	//
	return p, nil
}

func (p TripleControlledPauliX) MinimumSupportedVersion() Version {
	return introducedVersion("TripleControlledPauliX")
}

// TripleControlledPauliZ is the triply-controlled Z gate.
type TripleControlledPauliZ struct {
	Control0 uint64 `json:"control_0"`
	Control1 uint64 `json:"control_1"`
	Control2 uint64 `json:"control_2"`
	Target   uint64 `json:"target"`
}

func (p TripleControlledPauliZ) Tags() []string {
	return tagsFourQubitGate("TripleControlledPauliZ")
}
func (p TripleControlledPauliZ) HqslangName() string { return "TripleControlledPauliZ" }
func (p TripleControlledPauliZ) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Control2, p.Target)
}
func (p TripleControlledPauliZ) IsParametrized() bool { return false }
func (p TripleControlledPauliZ) Unitary()             {}

func (p TripleControlledPauliZ) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p TripleControlledPauliZ) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll([]uint64{p.Control0, p.Control1, p.Control2, p.Target})
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Control2, p.Target = qs[0], qs[1], qs[2], qs[3]
	//
	return p, nil
}

func (p TripleControlledPauliZ) MinimumSupportedVersion() Version {
	return introducedVersion("TripleControlledPauliZ")
}

// TripleControlledPhaseShift is the triply-controlled phase-shift gate.
type TripleControlledPhaseShift struct {
	Control0 uint64           `json:"control_0"`
	Control1 uint64           `json:"control_1"`
	Control2 uint64           `json:"control_2"`
	Target   uint64           `json:"target"`
	Theta    calculator.Value `json:"theta"`
}

func (p TripleControlledPhaseShift) Tags() []string {
	return tagsFourQubitGate("TripleControlledPhaseShift")
}
func (p TripleControlledPhaseShift) HqslangName() string { return "TripleControlledPhaseShift" }
func (p TripleControlledPhaseShift) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Control2, p.Target)
}
func (p TripleControlledPhaseShift) IsParametrized() bool { return p.Theta.IsSymbolic() }
func (p TripleControlledPhaseShift) Unitary()             {}

func (p TripleControlledPhaseShift) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p TripleControlledPhaseShift) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll([]uint64{p.Control0, p.Control1, p.Control2, p.Target})
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Control2, p.Target = qs[0], qs[1], qs[2], qs[3]
	//
	return p, nil
}

func (p TripleControlledPhaseShift) MinimumSupportedVersion() Version {
	return introducedVersion("TripleControlledPhaseShift")
}

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

// Toffoli is the doubly-controlled not gate.
type Toffoli struct {
	Control0 uint64 `json:"control_0"`
	Control1 uint64 `json:"control_1"`
	Target   uint64 `json:"target"`
}

func (p Toffoli) Tags() []string           { return tagsThreeQubitGate("Toffoli") }
func (p Toffoli) HqslangName() string      { return "Toffoli" }
func (p Toffoli) InvolvedQubits() QubitSet { return QubitsOf(p.Control0, p.Control1, p.Target) }
func (p Toffoli) IsParametrized() bool     { return false }
func (p Toffoli) Unitary()                 {}

func (p Toffoli) SubstituteParameters(calculator.Bindings) (Operation, error) { return p, nil }

func (p Toffoli) RemapQubits(m QubitMapping) (Operation, error) {
	c0, c1, t, err := m.apply3(p.Control0, p.Control1, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Target = c0, c1, t
	//
	return p, nil
}

func (p Toffoli) MinimumSupportedVersion() Version { return introducedVersion("Toffoli") }

// ControlledControlledPauliZ is the doubly-controlled Z gate.
type ControlledControlledPauliZ struct {
	Control0 uint64 `json:"control_0"`
	Control1 uint64 `json:"control_1"`
	Target   uint64 `json:"target"`
}

func (p ControlledControlledPauliZ) Tags() []string {
	return tagsThreeQubitGate("ControlledControlledPauliZ")
}
func (p ControlledControlledPauliZ) HqslangName() string { return "ControlledControlledPauliZ" }
func (p ControlledControlledPauliZ) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Target)
}
func (p ControlledControlledPauliZ) IsParametrized() bool { return false }
func (p ControlledControlledPauliZ) Unitary()             {}

func (p ControlledControlledPauliZ) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p ControlledControlledPauliZ) RemapQubits(m QubitMapping) (Operation, error) {
	c0, c1, t, err := m.apply3(p.Control0, p.Control1, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Target = c0, c1, t
	//
	return p, nil
}

func (p ControlledControlledPauliZ) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledControlledPauliZ")
}

// ControlledControlledPhaseShift is the doubly-controlled phase-shift gate.
type ControlledControlledPhaseShift struct {
	Control0 uint64           `json:"control_0"`
	Control1 uint64           `json:"control_1"`
	Target   uint64           `json:"target"`
	Theta    calculator.Value `json:"theta"`
}

func (p ControlledControlledPhaseShift) Tags() []string {
	return tagsThreeQubitGate("ControlledControlledPhaseShift")
}
func (p ControlledControlledPhaseShift) HqslangName() string {
	return "ControlledControlledPhaseShift"
}
func (p ControlledControlledPhaseShift) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Target)
}
func (p ControlledControlledPhaseShift) IsParametrized() bool { return p.Theta.IsSymbolic() }
func (p ControlledControlledPhaseShift) Unitary()             {}

func (p ControlledControlledPhaseShift) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p ControlledControlledPhaseShift) RemapQubits(m QubitMapping) (Operation, error) {
	c0, c1, t, err := m.apply3(p.Control0, p.Control1, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Target = c0, c1, t
	//
	return p, nil
}

func (p ControlledControlledPhaseShift) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledControlledPhaseShift")
}

// ControlledSWAP swaps two target qubits conditional on a control qubit.
type ControlledSWAP struct {
	Control uint64 `json:"control"`
	Target0 uint64 `json:"target_0"`
	Target1 uint64 `json:"target_1"`
}

func (p ControlledSWAP) Tags() []string           { return tagsThreeQubitGate("ControlledSWAP") }
func (p ControlledSWAP) HqslangName() string      { return "ControlledSWAP" }
func (p ControlledSWAP) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target0, p.Target1) }
func (p ControlledSWAP) IsParametrized() bool     { return false }
func (p ControlledSWAP) Unitary()                 {}

func (p ControlledSWAP) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p ControlledSWAP) RemapQubits(m QubitMapping) (Operation, error) {
	c, t0, t1, err := m.apply3(p.Control, p.Target0, p.Target1)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target0, p.Target1 = c, t0, t1
	//
	return p, nil
}

func (p ControlledSWAP) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledSWAP")
}

// PhaseShiftedControlledControlledZ is a doubly-controlled Z gate described
// in a phased basis.
type PhaseShiftedControlledControlledZ struct {
	Control0 uint64           `json:"control_0"`
	Control1 uint64           `json:"control_1"`
	Target   uint64           `json:"target"`
	Phi      calculator.Value `json:"phi"`
}

func (p PhaseShiftedControlledControlledZ) Tags() []string {
	return tagsThreeQubitGate("PhaseShiftedControlledControlledZ")
}
func (p PhaseShiftedControlledControlledZ) HqslangName() string {
	return "PhaseShiftedControlledControlledZ"
}
func (p PhaseShiftedControlledControlledZ) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Target)
}
func (p PhaseShiftedControlledControlledZ) IsParametrized() bool { return p.Phi.IsSymbolic() }
func (p PhaseShiftedControlledControlledZ) Unitary()             {}

func (p PhaseShiftedControlledControlledZ) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftedControlledControlledZ) RemapQubits(m QubitMapping) (Operation, error) {
	c0, c1, t, err := m.apply3(p.Control0, p.Control1, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Target = c0, c1, t
	//
	return p, nil
}

func (p PhaseShiftedControlledControlledZ) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftedControlledControlledZ")
}

// PhaseShiftedControlledControlledPhase is a doubly-controlled phase-shift
// gate described in a phased basis.
type PhaseShiftedControlledControlledPhase struct {
	Control0 uint64           `json:"control_0"`
	Control1 uint64           `json:"control_1"`
	Target   uint64           `json:"target"`
	Theta    calculator.Value `json:"theta"`
	Phi      calculator.Value `json:"phi"`
}

func (p PhaseShiftedControlledControlledPhase) Tags() []string {
	return tagsThreeQubitGate("PhaseShiftedControlledControlledPhase")
}
func (p PhaseShiftedControlledControlledPhase) HqslangName() string {
	return "PhaseShiftedControlledControlledPhase"
}
func (p PhaseShiftedControlledControlledPhase) InvolvedQubits() QubitSet {
	return QubitsOf(p.Control0, p.Control1, p.Target)
}
func (p PhaseShiftedControlledControlledPhase) IsParametrized() bool {
	return anySymbolic(p.Theta, p.Phi)
}
func (p PhaseShiftedControlledControlledPhase) Unitary() {}

func (p PhaseShiftedControlledControlledPhase) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftedControlledControlledPhase) RemapQubits(m QubitMapping) (Operation, error) {
	c0, c1, t, err := m.apply3(p.Control0, p.Control1, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control0, p.Control1, p.Target = c0, c1, t
	//
	return p, nil
}

func (p PhaseShiftedControlledControlledPhase) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftedControlledControlledPhase")
}

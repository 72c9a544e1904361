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

// Multi-qubit gates carry a variable-length list of target qubits.  Within a
// single operation the indices must be distinct; this is the caller's
// responsibility and is not revalidated on every access.

// MultiQubitMS is the Molmer-Sorensen gate acting on several qubits at once.
type MultiQubitMS struct {
	Qubits []uint64         `json:"qubits"`
	Theta  calculator.Value `json:"theta"`
}

func (p MultiQubitMS) Tags() []string           { return tagsMultiQubitGate("MultiQubitMS") }
func (p MultiQubitMS) HqslangName() string      { return "MultiQubitMS" }
func (p MultiQubitMS) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p MultiQubitMS) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p MultiQubitMS) Unitary()                 {}

func (p MultiQubitMS) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p MultiQubitMS) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qs
	//
	return p, nil
}

func (p MultiQubitMS) MinimumSupportedVersion() Version { return introducedVersion("MultiQubitMS") }

// MultiQubitZZ is the multi-qubit ZZ interaction.
type MultiQubitZZ struct {
	Qubits []uint64         `json:"qubits"`
	Theta  calculator.Value `json:"theta"`
}

func (p MultiQubitZZ) Tags() []string           { return tagsMultiQubitGate("MultiQubitZZ") }
func (p MultiQubitZZ) HqslangName() string      { return "MultiQubitZZ" }
func (p MultiQubitZZ) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p MultiQubitZZ) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p MultiQubitZZ) Unitary()                 {}

func (p MultiQubitZZ) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p MultiQubitZZ) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qs
	//
	return p, nil
}

func (p MultiQubitZZ) MinimumSupportedVersion() Version { return introducedVersion("MultiQubitZZ") }

// MultiQubitCNOT applies a not gate to the last qubit controlled on all
// preceding qubits.
type MultiQubitCNOT struct {
	Qubits []uint64 `json:"qubits"`
}

func (p MultiQubitCNOT) Tags() []string           { return tagsMultiQubitGate("MultiQubitCNOT") }
func (p MultiQubitCNOT) HqslangName() string      { return "MultiQubitCNOT" }
func (p MultiQubitCNOT) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p MultiQubitCNOT) IsParametrized() bool     { return false }
func (p MultiQubitCNOT) Unitary()                 {}

func (p MultiQubitCNOT) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p MultiQubitCNOT) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qs
	//
	return p, nil
}

func (p MultiQubitCNOT) MinimumSupportedVersion() Version {
	return introducedVersion("MultiQubitCNOT")
}

// QFT applies the quantum Fourier transform to a register of qubits,
// optionally including the final swaps and optionally inverted.
type QFT struct {
	Qubits  []uint64 `json:"qubits"`
	Swaps   bool     `json:"swaps"`
	Inverse bool     `json:"inverse"`
}

func (p QFT) Tags() []string           { return tagsMultiQubitGate("QFT") }
func (p QFT) HqslangName() string      { return "QFT" }
func (p QFT) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p QFT) IsParametrized() bool     { return false }
func (p QFT) Unitary()                 {}

func (p QFT) SubstituteParameters(calculator.Bindings) (Operation, error) { return p, nil }

func (p QFT) RemapQubits(m QubitMapping) (Operation, error) {
	qs, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qs
	//
	return p, nil
}

func (p QFT) MinimumSupportedVersion() Version { return introducedVersion("QFT") }

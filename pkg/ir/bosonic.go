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

// Squeezing applies a squeezing transformation to a single bosonic mode.
type Squeezing struct {
	Mode      uint64           `json:"mode"`
	Squeezing calculator.Value `json:"squeezing"`
	Phase     calculator.Value `json:"phase"`
}

func (p Squeezing) Tags() []string           { return tagsSingleModeGate("Squeezing") }
func (p Squeezing) HqslangName() string      { return "Squeezing" }
func (p Squeezing) InvolvedQubits() QubitSet { return NoQubits() }
func (p Squeezing) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p Squeezing) IsParametrized() bool     { return anySymbolic(p.Squeezing, p.Phase) }

func (p Squeezing) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Squeezing, &p.Phase); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p Squeezing) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p Squeezing) MinimumSupportedVersion() Version { return introducedVersion("Squeezing") }

// PhaseShift rotates a single bosonic mode in phase space.
type PhaseShift struct {
	Mode  uint64           `json:"mode"`
	Phase calculator.Value `json:"phase"`
}

func (p PhaseShift) Tags() []string           { return tagsSingleModeGate("PhaseShift") }
func (p PhaseShift) HqslangName() string      { return "PhaseShift" }
func (p PhaseShift) InvolvedQubits() QubitSet { return NoQubits() }
func (p PhaseShift) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p PhaseShift) IsParametrized() bool     { return anySymbolic(p.Phase) }

func (p PhaseShift) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Phase); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShift) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PhaseShift) MinimumSupportedVersion() Version { return introducedVersion("PhaseShift") }

// PhaseDisplacement displaces a single bosonic mode by a given magnitude and
// phase.
type PhaseDisplacement struct {
	Mode         uint64           `json:"mode"`
	Displacement calculator.Value `json:"displacement"`
	Phase        calculator.Value `json:"phase"`
}

func (p PhaseDisplacement) Tags() []string           { return tagsSingleModeGate("PhaseDisplacement") }
func (p PhaseDisplacement) HqslangName() string      { return "PhaseDisplacement" }
func (p PhaseDisplacement) InvolvedQubits() QubitSet { return NoQubits() }
func (p PhaseDisplacement) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p PhaseDisplacement) IsParametrized() bool     { return anySymbolic(p.Displacement, p.Phase) }

func (p PhaseDisplacement) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Displacement, &p.Phase); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseDisplacement) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PhaseDisplacement) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseDisplacement")
}

// BeamSplitter mixes two bosonic modes with a given transmission angle and
// phase.
type BeamSplitter struct {
	Mode0 uint64           `json:"mode_0"`
	Mode1 uint64           `json:"mode_1"`
	Theta calculator.Value `json:"theta"`
	Phi   calculator.Value `json:"phi"`
}

func (p BeamSplitter) Tags() []string           { return tagsTwoModeGate("BeamSplitter") }
func (p BeamSplitter) HqslangName() string      { return "BeamSplitter" }
func (p BeamSplitter) InvolvedQubits() QubitSet { return NoQubits() }
func (p BeamSplitter) InvolvedModes() []uint64  { return []uint64{p.Mode0, p.Mode1} }
func (p BeamSplitter) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }

func (p BeamSplitter) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p BeamSplitter) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p BeamSplitter) MinimumSupportedVersion() Version { return introducedVersion("BeamSplitter") }

// PhotonDetection measures the photon number of a bosonic mode into a slot
// of a classical float register.
type PhotonDetection struct {
	Mode         uint64 `json:"mode"`
	Readout      string `json:"readout"`
	ReadoutIndex uint64 `json:"readout_index"`
}

func (p PhotonDetection) Tags() []string           { return tagsSingleModeGate("PhotonDetection") }
func (p PhotonDetection) HqslangName() string      { return "PhotonDetection" }
func (p PhotonDetection) InvolvedQubits() QubitSet { return NoQubits() }
func (p PhotonDetection) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p PhotonDetection) IsParametrized() bool     { return false }

func (p PhotonDetection) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PhotonDetection) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PhotonDetection) MinimumSupportedVersion() Version {
	return introducedVersion("PhotonDetection")
}

// QuantumRabi applies the quantum Rabi interaction between a qubit and a
// bosonic mode.
type QuantumRabi struct {
	Qubit uint64           `json:"qubit"`
	Mode  uint64           `json:"mode"`
	Theta calculator.Value `json:"theta"`
}

func (p QuantumRabi) Tags() []string           { return tagsSpinBosonGate("QuantumRabi") }
func (p QuantumRabi) HqslangName() string      { return "QuantumRabi" }
func (p QuantumRabi) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p QuantumRabi) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p QuantumRabi) IsParametrized() bool     { return anySymbolic(p.Theta) }

func (p QuantumRabi) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p QuantumRabi) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p QuantumRabi) MinimumSupportedVersion() Version { return introducedVersion("QuantumRabi") }

// LongitudinalCoupling applies the longitudinal qubit-mode coupling
// interaction.
type LongitudinalCoupling struct {
	Qubit uint64           `json:"qubit"`
	Mode  uint64           `json:"mode"`
	Theta calculator.Value `json:"theta"`
}

func (p LongitudinalCoupling) Tags() []string           { return tagsSpinBosonGate("LongitudinalCoupling") }
func (p LongitudinalCoupling) HqslangName() string      { return "LongitudinalCoupling" }
func (p LongitudinalCoupling) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p LongitudinalCoupling) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p LongitudinalCoupling) IsParametrized() bool     { return anySymbolic(p.Theta) }

func (p LongitudinalCoupling) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p LongitudinalCoupling) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p LongitudinalCoupling) MinimumSupportedVersion() Version {
	return introducedVersion("LongitudinalCoupling")
}

// JaynesCummings applies the Jaynes-Cummings interaction between a qubit and
// a bosonic mode.
type JaynesCummings struct {
	Qubit uint64           `json:"qubit"`
	Mode  uint64           `json:"mode"`
	Theta calculator.Value `json:"theta"`
}

func (p JaynesCummings) Tags() []string           { return tagsSpinBosonGate("JaynesCummings") }
func (p JaynesCummings) HqslangName() string      { return "JaynesCummings" }
func (p JaynesCummings) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p JaynesCummings) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p JaynesCummings) IsParametrized() bool     { return anySymbolic(p.Theta) }

func (p JaynesCummings) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p JaynesCummings) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p JaynesCummings) MinimumSupportedVersion() Version {
	return introducedVersion("JaynesCummings")
}

// SingleExcitationLoad transfers a single excitation from a bosonic mode
// onto a qubit.
type SingleExcitationLoad struct {
	Qubit uint64 `json:"qubit"`
	Mode  uint64 `json:"mode"`
}

func (p SingleExcitationLoad) Tags() []string           { return tagsSpinBosonGate("SingleExcitationLoad") }
func (p SingleExcitationLoad) HqslangName() string      { return "SingleExcitationLoad" }
func (p SingleExcitationLoad) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p SingleExcitationLoad) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p SingleExcitationLoad) IsParametrized() bool     { return false }

func (p SingleExcitationLoad) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p SingleExcitationLoad) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p SingleExcitationLoad) MinimumSupportedVersion() Version {
	return introducedVersion("SingleExcitationLoad")
}

// SingleExcitationStore transfers a single excitation from a qubit onto a
// bosonic mode.
type SingleExcitationStore struct {
	Qubit uint64 `json:"qubit"`
	Mode  uint64 `json:"mode"`
}

func (p SingleExcitationStore) Tags() []string           { return tagsSpinBosonGate("SingleExcitationStore") }
func (p SingleExcitationStore) HqslangName() string      { return "SingleExcitationStore" }
func (p SingleExcitationStore) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p SingleExcitationStore) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p SingleExcitationStore) IsParametrized() bool     { return false }

func (p SingleExcitationStore) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p SingleExcitationStore) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p SingleExcitationStore) MinimumSupportedVersion() Version {
	return introducedVersion("SingleExcitationStore")
}

// CZQubitResonator applies a controlled-Z interaction between a qubit and
// the lowest two levels of a bosonic mode.
type CZQubitResonator struct {
	Qubit uint64 `json:"qubit"`
	Mode  uint64 `json:"mode"`
}

func (p CZQubitResonator) Tags() []string           { return tagsSpinBosonGate("CZQubitResonator") }
func (p CZQubitResonator) HqslangName() string      { return "CZQubitResonator" }
func (p CZQubitResonator) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p CZQubitResonator) InvolvedModes() []uint64  { return []uint64{p.Mode} }
func (p CZQubitResonator) IsParametrized() bool     { return false }

func (p CZQubitResonator) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p CZQubitResonator) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p CZQubitResonator) MinimumSupportedVersion() Version {
	return introducedVersion("CZQubitResonator")
}

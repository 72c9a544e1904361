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

// ============================================================================
// SingleQubitGate
// ============================================================================

// SingleQubitGate is the most general single qubit unitary, parametrized by
// the real and imaginary parts of its two complex Bloch coefficients plus a
// global phase.
type SingleQubitGate struct {
	Qubit       uint64           `json:"qubit"`
	AlphaR      calculator.Value `json:"alpha_r"`
	AlphaI      calculator.Value `json:"alpha_i"`
	BetaR       calculator.Value `json:"beta_r"`
	BetaI       calculator.Value `json:"beta_i"`
	GlobalPhase calculator.Value `json:"global_phase"`
}

func (p SingleQubitGate) Tags() []string            { return tagsSingleQubitGate("SingleQubitGate") }
func (p SingleQubitGate) HqslangName() string       { return "SingleQubitGate" }
func (p SingleQubitGate) InvolvedQubits() QubitSet  { return QubitsOf(p.Qubit) }
func (p SingleQubitGate) Unitary()                  {}

func (p SingleQubitGate) IsParametrized() bool {
	return anySymbolic(p.AlphaR, p.AlphaI, p.BetaR, p.BetaI, p.GlobalPhase)
}

func (p SingleQubitGate) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.AlphaR, &p.AlphaI, &p.BetaR, &p.BetaI, &p.GlobalPhase); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p SingleQubitGate) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p SingleQubitGate) MinimumSupportedVersion() Version {
	return introducedVersion("SingleQubitGate")
}

// ============================================================================
// Rotations
// ============================================================================

// RotateX rotates a single qubit around the x-axis by a given angle.
type RotateX struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p RotateX) Tags() []string           { return tagsRotation("RotateX") }
func (p RotateX) HqslangName() string      { return "RotateX" }
func (p RotateX) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p RotateX) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p RotateX) Unitary()                 {}

func (p RotateX) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p RotateX) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p RotateX) MinimumSupportedVersion() Version { return introducedVersion("RotateX") }

// RotateY rotates a single qubit around the y-axis by a given angle.
type RotateY struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p RotateY) Tags() []string           { return tagsRotation("RotateY") }
func (p RotateY) HqslangName() string      { return "RotateY" }
func (p RotateY) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p RotateY) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p RotateY) Unitary()                 {}

func (p RotateY) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p RotateY) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p RotateY) MinimumSupportedVersion() Version { return introducedVersion("RotateY") }

// RotateZ rotates a single qubit around the z-axis by a given angle.
type RotateZ struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p RotateZ) Tags() []string           { return tagsRotation("RotateZ") }
func (p RotateZ) HqslangName() string      { return "RotateZ" }
func (p RotateZ) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p RotateZ) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p RotateZ) Unitary()                 {}

func (p RotateZ) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p RotateZ) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p RotateZ) MinimumSupportedVersion() Version { return introducedVersion("RotateZ") }

// RotateXY rotates a single qubit around an axis in the x-y plane.
type RotateXY struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
	Phi   calculator.Value `json:"phi"`
}

func (p RotateXY) Tags() []string           { return tagsRotation("RotateXY") }
func (p RotateXY) HqslangName() string      { return "RotateXY" }
func (p RotateXY) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p RotateXY) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }
func (p RotateXY) Unitary()                 {}

func (p RotateXY) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p RotateXY) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p RotateXY) MinimumSupportedVersion() Version { return introducedVersion("RotateXY") }

// RotateAroundSphericalAxis rotates a single qubit around an arbitrary axis
// given in spherical coordinates.
type RotateAroundSphericalAxis struct {
	Qubit          uint64           `json:"qubit"`
	Theta          calculator.Value `json:"theta"`
	SphericalTheta calculator.Value `json:"spherical_theta"`
	SphericalPhi   calculator.Value `json:"spherical_phi"`
}

func (p RotateAroundSphericalAxis) Tags() []string {
	return tagsRotation("RotateAroundSphericalAxis")
}
func (p RotateAroundSphericalAxis) HqslangName() string      { return "RotateAroundSphericalAxis" }
func (p RotateAroundSphericalAxis) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p RotateAroundSphericalAxis) Unitary()                 {}

func (p RotateAroundSphericalAxis) IsParametrized() bool {
	return anySymbolic(p.Theta, p.SphericalTheta, p.SphericalPhi)
}

func (p RotateAroundSphericalAxis) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.SphericalTheta, &p.SphericalPhi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p RotateAroundSphericalAxis) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p RotateAroundSphericalAxis) MinimumSupportedVersion() Version {
	return introducedVersion("RotateAroundSphericalAxis")
}

// GPi rotates a single qubit by pi around an axis in the equatorial plane.
type GPi struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p GPi) Tags() []string           { return tagsRotation("GPi") }
func (p GPi) HqslangName() string      { return "GPi" }
func (p GPi) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p GPi) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p GPi) Unitary()                 {}

func (p GPi) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p GPi) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p GPi) MinimumSupportedVersion() Version { return introducedVersion("GPi") }

// GPi2 rotates a single qubit by pi/2 around an axis in the equatorial plane.
type GPi2 struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p GPi2) Tags() []string           { return tagsRotation("GPi2") }
func (p GPi2) HqslangName() string      { return "GPi2" }
func (p GPi2) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p GPi2) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p GPi2) Unitary()                 {}

func (p GPi2) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p GPi2) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p GPi2) MinimumSupportedVersion() Version { return introducedVersion("GPi2") }

// PhaseShiftState0 applies a phase to the |0> component of a single qubit.
type PhaseShiftState0 struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p PhaseShiftState0) Tags() []string           { return tagsSingleQubitGate("PhaseShiftState0") }
func (p PhaseShiftState0) HqslangName() string      { return "PhaseShiftState0" }
func (p PhaseShiftState0) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PhaseShiftState0) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p PhaseShiftState0) Unitary()                 {}

func (p PhaseShiftState0) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftState0) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PhaseShiftState0) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftState0")
}

// PhaseShiftState1 applies a phase to the |1> component of a single qubit.
type PhaseShiftState1 struct {
	Qubit uint64           `json:"qubit"`
	Theta calculator.Value `json:"theta"`
}

func (p PhaseShiftState1) Tags() []string           { return tagsSingleQubitGate("PhaseShiftState1") }
func (p PhaseShiftState1) HqslangName() string      { return "PhaseShiftState1" }
func (p PhaseShiftState1) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PhaseShiftState1) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p PhaseShiftState1) Unitary()                 {}

func (p PhaseShiftState1) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftState1) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PhaseShiftState1) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftState1")
}

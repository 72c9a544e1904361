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

// XY implements the XX + YY interaction with a variable strength.
type XY struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
}

func (p XY) Tags() []string           { return tagsTwoQubitGate("XY") }
func (p XY) HqslangName() string      { return "XY" }
func (p XY) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p XY) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p XY) Unitary()                 {}

func (p XY) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p XY) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p XY) MinimumSupportedVersion() Version { return introducedVersion("XY") }

// ControlledPhaseShift applies a phase to the |11> component.
type ControlledPhaseShift struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
}

func (p ControlledPhaseShift) Tags() []string           { return tagsTwoQubitGate("ControlledPhaseShift") }
func (p ControlledPhaseShift) HqslangName() string      { return "ControlledPhaseShift" }
func (p ControlledPhaseShift) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p ControlledPhaseShift) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p ControlledPhaseShift) Unitary()                 {}

func (p ControlledPhaseShift) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p ControlledPhaseShift) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p ControlledPhaseShift) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledPhaseShift")
}

// VariableMSXX is the Molmer-Sorensen XX interaction with a variable angle.
type VariableMSXX struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
}

func (p VariableMSXX) Tags() []string           { return tagsTwoQubitGate("VariableMSXX") }
func (p VariableMSXX) HqslangName() string      { return "VariableMSXX" }
func (p VariableMSXX) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p VariableMSXX) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p VariableMSXX) Unitary()                 {}

func (p VariableMSXX) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p VariableMSXX) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p VariableMSXX) MinimumSupportedVersion() Version { return introducedVersion("VariableMSXX") }

// GivensRotation implements a Givens rotation with big-endian convention.
type GivensRotation struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
	Phi     calculator.Value `json:"phi"`
}

func (p GivensRotation) Tags() []string           { return tagsTwoQubitGate("GivensRotation") }
func (p GivensRotation) HqslangName() string      { return "GivensRotation" }
func (p GivensRotation) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p GivensRotation) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }
func (p GivensRotation) Unitary()                 {}

func (p GivensRotation) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p GivensRotation) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p GivensRotation) MinimumSupportedVersion() Version {
	return introducedVersion("GivensRotation")
}

// GivensRotationLittleEndian implements a Givens rotation with little-endian
// convention.
type GivensRotationLittleEndian struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
	Phi     calculator.Value `json:"phi"`
}

func (p GivensRotationLittleEndian) Tags() []string {
	return tagsTwoQubitGate("GivensRotationLittleEndian")
}
func (p GivensRotationLittleEndian) HqslangName() string      { return "GivensRotationLittleEndian" }
func (p GivensRotationLittleEndian) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p GivensRotationLittleEndian) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }
func (p GivensRotationLittleEndian) Unitary()                 {}

func (p GivensRotationLittleEndian) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p GivensRotationLittleEndian) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p GivensRotationLittleEndian) MinimumSupportedVersion() Version {
	return introducedVersion("GivensRotationLittleEndian")
}

// Qsim implements a spin swap simulation gate.
type Qsim struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	X       calculator.Value `json:"x"`
	Y       calculator.Value `json:"y"`
	Z       calculator.Value `json:"z"`
}

func (p Qsim) Tags() []string           { return tagsTwoQubitGate("Qsim") }
func (p Qsim) HqslangName() string      { return "Qsim" }
func (p Qsim) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p Qsim) IsParametrized() bool     { return anySymbolic(p.X, p.Y, p.Z) }
func (p Qsim) Unitary()                 {}

func (p Qsim) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.X, &p.Y, &p.Z); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p Qsim) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p Qsim) MinimumSupportedVersion() Version { return introducedVersion("Qsim") }

// Fsim implements a fermionic simulation gate.
type Fsim struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	T       calculator.Value `json:"t"`
	U       calculator.Value `json:"u"`
	Delta   calculator.Value `json:"delta"`
}

func (p Fsim) Tags() []string           { return tagsTwoQubitGate("Fsim") }
func (p Fsim) HqslangName() string      { return "Fsim" }
func (p Fsim) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p Fsim) IsParametrized() bool     { return anySymbolic(p.T, p.U, p.Delta) }
func (p Fsim) Unitary()                 {}

func (p Fsim) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.T, &p.U, &p.Delta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p Fsim) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p Fsim) MinimumSupportedVersion() Version { return introducedVersion("Fsim") }

// SpinInteraction implements a generalised XYZ spin interaction.
type SpinInteraction struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	X       calculator.Value `json:"x"`
	Y       calculator.Value `json:"y"`
	Z       calculator.Value `json:"z"`
}

func (p SpinInteraction) Tags() []string           { return tagsTwoQubitGate("SpinInteraction") }
func (p SpinInteraction) HqslangName() string      { return "SpinInteraction" }
func (p SpinInteraction) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p SpinInteraction) IsParametrized() bool     { return anySymbolic(p.X, p.Y, p.Z) }
func (p SpinInteraction) Unitary()                 {}

func (p SpinInteraction) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.X, &p.Y, &p.Z); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p SpinInteraction) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p SpinInteraction) MinimumSupportedVersion() Version {
	return introducedVersion("SpinInteraction")
}

// Bogoliubov implements the Bogoliubov-de Gennes interaction, parametrized by
// the real and imaginary parts of its complex amplitude.
type Bogoliubov struct {
	Control   uint64           `json:"control"`
	Target    uint64           `json:"target"`
	DeltaReal calculator.Value `json:"delta_real"`
	DeltaImag calculator.Value `json:"delta_imag"`
}

func (p Bogoliubov) Tags() []string           { return tagsTwoQubitGate("Bogoliubov") }
func (p Bogoliubov) HqslangName() string      { return "Bogoliubov" }
func (p Bogoliubov) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p Bogoliubov) IsParametrized() bool     { return anySymbolic(p.DeltaReal, p.DeltaImag) }
func (p Bogoliubov) Unitary()                 {}

func (p Bogoliubov) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.DeltaReal, &p.DeltaImag); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p Bogoliubov) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p Bogoliubov) MinimumSupportedVersion() Version { return introducedVersion("Bogoliubov") }

// PMInteraction implements the transversal + - interaction.
type PMInteraction struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	T       calculator.Value `json:"t"`
}

func (p PMInteraction) Tags() []string           { return tagsTwoQubitGate("PMInteraction") }
func (p PMInteraction) HqslangName() string      { return "PMInteraction" }
func (p PMInteraction) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p PMInteraction) IsParametrized() bool     { return p.T.IsSymbolic() }
func (p PMInteraction) Unitary()                 {}

func (p PMInteraction) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.T); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PMInteraction) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p PMInteraction) MinimumSupportedVersion() Version { return introducedVersion("PMInteraction") }

// ComplexPMInteraction implements the complex-valued + - interaction.
type ComplexPMInteraction struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	TReal   calculator.Value `json:"t_real"`
	TImag   calculator.Value `json:"t_imag"`
}

func (p ComplexPMInteraction) Tags() []string           { return tagsTwoQubitGate("ComplexPMInteraction") }
func (p ComplexPMInteraction) HqslangName() string      { return "ComplexPMInteraction" }
func (p ComplexPMInteraction) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p ComplexPMInteraction) IsParametrized() bool     { return anySymbolic(p.TReal, p.TImag) }
func (p ComplexPMInteraction) Unitary()                 {}

func (p ComplexPMInteraction) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.TReal, &p.TImag); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p ComplexPMInteraction) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p ComplexPMInteraction) MinimumSupportedVersion() Version {
	return introducedVersion("ComplexPMInteraction")
}

// PhaseShiftedControlledZ is a controlled-Z gate described in a phased basis.
type PhaseShiftedControlledZ struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Phi     calculator.Value `json:"phi"`
}

func (p PhaseShiftedControlledZ) Tags() []string {
	return tagsTwoQubitGate("PhaseShiftedControlledZ")
}
func (p PhaseShiftedControlledZ) HqslangName() string      { return "PhaseShiftedControlledZ" }
func (p PhaseShiftedControlledZ) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p PhaseShiftedControlledZ) IsParametrized() bool     { return p.Phi.IsSymbolic() }
func (p PhaseShiftedControlledZ) Unitary()                 {}

func (p PhaseShiftedControlledZ) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftedControlledZ) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p PhaseShiftedControlledZ) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftedControlledZ")
}

// PhaseShiftedControlledPhase is a controlled phase-shift gate described in a
// phased basis.
type PhaseShiftedControlledPhase struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
	Phi     calculator.Value `json:"phi"`
}

func (p PhaseShiftedControlledPhase) Tags() []string {
	return tagsTwoQubitGate("PhaseShiftedControlledPhase")
}
func (p PhaseShiftedControlledPhase) HqslangName() string      { return "PhaseShiftedControlledPhase" }
func (p PhaseShiftedControlledPhase) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p PhaseShiftedControlledPhase) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }
func (p PhaseShiftedControlledPhase) Unitary()                 {}

func (p PhaseShiftedControlledPhase) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PhaseShiftedControlledPhase) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p PhaseShiftedControlledPhase) MinimumSupportedVersion() Version {
	return introducedVersion("PhaseShiftedControlledPhase")
}

// ControlledRotateX rotates the target qubit around the x-axis conditional on
// the control qubit.
type ControlledRotateX struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
}

func (p ControlledRotateX) Tags() []string           { return tagsTwoQubitGate("ControlledRotateX") }
func (p ControlledRotateX) HqslangName() string      { return "ControlledRotateX" }
func (p ControlledRotateX) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p ControlledRotateX) IsParametrized() bool     { return p.Theta.IsSymbolic() }
func (p ControlledRotateX) Unitary()                 {}

func (p ControlledRotateX) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p ControlledRotateX) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p ControlledRotateX) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledRotateX")
}

// ControlledRotateXY rotates the target qubit around an axis in the x-y plane
// conditional on the control qubit.
type ControlledRotateXY struct {
	Control uint64           `json:"control"`
	Target  uint64           `json:"target"`
	Theta   calculator.Value `json:"theta"`
	Phi     calculator.Value `json:"phi"`
}

func (p ControlledRotateXY) Tags() []string           { return tagsTwoQubitGate("ControlledRotateXY") }
func (p ControlledRotateXY) HqslangName() string      { return "ControlledRotateXY" }
func (p ControlledRotateXY) InvolvedQubits() QubitSet { return QubitsOf(p.Control, p.Target) }
func (p ControlledRotateXY) IsParametrized() bool     { return anySymbolic(p.Theta, p.Phi) }
func (p ControlledRotateXY) Unitary()                 {}

func (p ControlledRotateXY) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Theta, &p.Phi); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p ControlledRotateXY) RemapQubits(m QubitMapping) (Operation, error) {
	c, t, err := m.apply2(p.Control, p.Target)
	if err != nil {
		return nil, err
	}
	//
	p.Control, p.Target = c, t
	//
	return p, nil
}

func (p ControlledRotateXY) MinimumSupportedVersion() Version {
	return introducedVersion("ControlledRotateXY")
}

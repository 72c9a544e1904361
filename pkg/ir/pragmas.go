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
	"fmt"

	"github.com/qirlab/go-qir/pkg/calculator"
)

// PragmaSetStateVector sets the quantum state of a simulator backend to the
// given state vector, discarding whatever state was there before.
type PragmaSetStateVector struct {
	Statevector ComplexVector `json:"statevector"`
}

// NewPragmaSetStateVector constructs a PragmaSetStateVector, checking that
// the state vector has a power-of-two length.
func NewPragmaSetStateVector(statevector ComplexVector) (PragmaSetStateVector, error) {
	n := len(statevector)
	if n == 0 || n&(n-1) != 0 {
		return PragmaSetStateVector{}, &ShapeError{
			Expected: "power-of-two length",
			Actual:   fmt.Sprintf("%d amplitudes", n),
		}
	}
	//
	return PragmaSetStateVector{Statevector: statevector}, nil
}

func (p PragmaSetStateVector) Tags() []string           { return tagsPragma("PragmaSetStateVector") }
func (p PragmaSetStateVector) HqslangName() string      { return "PragmaSetStateVector" }
func (p PragmaSetStateVector) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaSetStateVector) IsParametrized() bool     { return false }

func (p PragmaSetStateVector) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaSetStateVector) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaSetStateVector) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaSetStateVector")
}

// PragmaSetDensityMatrix sets the quantum state of a simulator backend to the
// given density matrix, discarding whatever state was there before.
type PragmaSetDensityMatrix struct {
	DensityMatrix ComplexMatrix `json:"density_matrix"`
}

// NewPragmaSetDensityMatrix constructs a PragmaSetDensityMatrix, checking
// that the matrix is square.
func NewPragmaSetDensityMatrix(matrix ComplexMatrix) (PragmaSetDensityMatrix, error) {
	if !matrix.IsSquare() {
		return PragmaSetDensityMatrix{}, &ShapeError{
			Expected: "square matrix",
			Actual:   fmt.Sprintf("%dx%d", matrix.Rows, matrix.Cols),
		}
	}
	//
	return PragmaSetDensityMatrix{DensityMatrix: matrix}, nil
}

func (p PragmaSetDensityMatrix) Tags() []string           { return tagsPragma("PragmaSetDensityMatrix") }
func (p PragmaSetDensityMatrix) HqslangName() string      { return "PragmaSetDensityMatrix" }
func (p PragmaSetDensityMatrix) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaSetDensityMatrix) IsParametrized() bool     { return false }

func (p PragmaSetDensityMatrix) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaSetDensityMatrix) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaSetDensityMatrix) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaSetDensityMatrix")
}

// PragmaRepeatGate repeats the directly following gate a fixed number of
// times, for example to amplify coherent errors during characterisation.
type PragmaRepeatGate struct {
	RepetitionCoefficient uint64 `json:"repetition_coefficient"`
}

func (p PragmaRepeatGate) Tags() []string           { return tagsPragma("PragmaRepeatGate") }
func (p PragmaRepeatGate) HqslangName() string      { return "PragmaRepeatGate" }
func (p PragmaRepeatGate) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaRepeatGate) IsParametrized() bool     { return false }

func (p PragmaRepeatGate) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaRepeatGate) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaRepeatGate) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaRepeatGate")
}

// PragmaOverrotation applies a statistical overrotation to the next
// occurrence of a named rotation gate acting on the given qubits.  The
// overrotation angle is drawn from a normal distribution with the given mean
// amplitude and variance.
type PragmaOverrotation struct {
	GateHqslang string   `json:"gate_hqslang"`
	Qubits      []uint64 `json:"qubits"`
	Amplitude   float64  `json:"amplitude"`
	Variance    float64  `json:"variance"`
}

func (p PragmaOverrotation) Tags() []string           { return tagsPragma("PragmaOverrotation") }
func (p PragmaOverrotation) HqslangName() string      { return "PragmaOverrotation" }
func (p PragmaOverrotation) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p PragmaOverrotation) IsParametrized() bool     { return false }

func (p PragmaOverrotation) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaOverrotation) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	return p, nil
}

func (p PragmaOverrotation) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaOverrotation")
}

// PragmaBoostNoise scales all noise terms in a simulation by a constant
// factor.
type PragmaBoostNoise struct {
	NoiseCoefficient calculator.Value `json:"noise_coefficient"`
}

func (p PragmaBoostNoise) Tags() []string           { return tagsPragma("PragmaBoostNoise") }
func (p PragmaBoostNoise) HqslangName() string      { return "PragmaBoostNoise" }
func (p PragmaBoostNoise) InvolvedQubits() QubitSet { return NoQubits() }
func (p PragmaBoostNoise) IsParametrized() bool     { return anySymbolic(p.NoiseCoefficient) }

func (p PragmaBoostNoise) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.NoiseCoefficient); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaBoostNoise) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaBoostNoise) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaBoostNoise")
}

// PragmaStopParallelBlock marks the end of a block of operations which may be
// executed in parallel, recording the wall-clock time the block takes.
type PragmaStopParallelBlock struct {
	Qubits        []uint64         `json:"qubits"`
	ExecutionTime calculator.Value `json:"execution_time"`
}

func (p PragmaStopParallelBlock) Tags() []string           { return tagsPragma("PragmaStopParallelBlock") }
func (p PragmaStopParallelBlock) HqslangName() string      { return "PragmaStopParallelBlock" }
func (p PragmaStopParallelBlock) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p PragmaStopParallelBlock) IsParametrized() bool     { return anySymbolic(p.ExecutionTime) }

func (p PragmaStopParallelBlock) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.ExecutionTime); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaStopParallelBlock) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	return p, nil
}

func (p PragmaStopParallelBlock) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaStopParallelBlock")
}

// PragmaGlobalPhase records an accumulated global phase of the circuit.  The
// phase has no observable effect on its own but matters when the circuit is
// used as a controlled subroutine.
type PragmaGlobalPhase struct {
	Phase calculator.Value `json:"phase"`
}

func (p PragmaGlobalPhase) Tags() []string           { return tagsPragma("PragmaGlobalPhase") }
func (p PragmaGlobalPhase) HqslangName() string      { return "PragmaGlobalPhase" }
func (p PragmaGlobalPhase) InvolvedQubits() QubitSet { return AllQubits() }
func (p PragmaGlobalPhase) IsParametrized() bool     { return anySymbolic(p.Phase) }

func (p PragmaGlobalPhase) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.Phase); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaGlobalPhase) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaGlobalPhase) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaGlobalPhase")
}

// PragmaSleep makes the given qubits sit idle for a fixed time, typically to
// probe decoherence.
type PragmaSleep struct {
	Qubits    []uint64         `json:"qubits"`
	SleepTime calculator.Value `json:"sleep_time"`
}

func (p PragmaSleep) Tags() []string           { return tagsPragma("PragmaSleep") }
func (p PragmaSleep) HqslangName() string      { return "PragmaSleep" }
func (p PragmaSleep) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p PragmaSleep) IsParametrized() bool     { return anySymbolic(p.SleepTime) }

func (p PragmaSleep) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.SleepTime); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaSleep) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	return p, nil
}

func (p PragmaSleep) MinimumSupportedVersion() Version { return introducedVersion("PragmaSleep") }

// PragmaActiveReset resets a qubit to the ground state, regardless of its
// current state.
type PragmaActiveReset struct {
	Qubit uint64 `json:"qubit"`
}

func (p PragmaActiveReset) Tags() []string           { return tagsPragma("PragmaActiveReset") }
func (p PragmaActiveReset) HqslangName() string      { return "PragmaActiveReset" }
func (p PragmaActiveReset) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PragmaActiveReset) IsParametrized() bool     { return false }

func (p PragmaActiveReset) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaActiveReset) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaActiveReset) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaActiveReset")
}

// PragmaStartDecompositionBlock marks the start of a block of operations that
// together decompose a single logical gate.  The reordering dictionary
// records how qubits were permuted for the decomposition.
type PragmaStartDecompositionBlock struct {
	Qubits               []uint64          `json:"qubits"`
	ReorderingDictionary map[uint64]uint64 `json:"reordering_dictionary"`
}

func (p PragmaStartDecompositionBlock) Tags() []string {
	return tagsPragma("PragmaStartDecompositionBlock")
}
func (p PragmaStartDecompositionBlock) HqslangName() string {
	return "PragmaStartDecompositionBlock"
}
func (p PragmaStartDecompositionBlock) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p PragmaStartDecompositionBlock) IsParametrized() bool     { return false }

func (p PragmaStartDecompositionBlock) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

// RemapQubits rewrites both the qubit list and the keys and values of the
// reordering dictionary.
func (p PragmaStartDecompositionBlock) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	if p.ReorderingDictionary != nil {
		remapped := make(map[uint64]uint64, len(p.ReorderingDictionary))
		//
		for from, to := range p.ReorderingDictionary {
			if q, ok := m[from]; ok {
				from = q
			}
			//
			if q, ok := m[to]; ok {
				to = q
			}
			//
			remapped[from] = to
		}
		//
		p.ReorderingDictionary = remapped
	}
	//
	return p, nil
}

func (p PragmaStartDecompositionBlock) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaStartDecompositionBlock")
}

// PragmaSimulationRepetitions instructs a stochastic simulator backend to
// average over the given number of simulation runs.
type PragmaSimulationRepetitions struct {
	Repetitions uint64 `json:"repetitions"`
}

func (p PragmaSimulationRepetitions) Tags() []string {
	return tagsPragma("PragmaSimulationRepetitions")
}
func (p PragmaSimulationRepetitions) HqslangName() string {
	return "PragmaSimulationRepetitions"
}
func (p PragmaSimulationRepetitions) InvolvedQubits() QubitSet { return NoQubits() }
func (p PragmaSimulationRepetitions) IsParametrized() bool     { return false }

func (p PragmaSimulationRepetitions) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaSimulationRepetitions) RemapQubits(QubitMapping) (Operation, error) {
	return p, nil
}

func (p PragmaSimulationRepetitions) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaSimulationRepetitions")
}

// PragmaStopDecompositionBlock marks the end of a decomposition block.
type PragmaStopDecompositionBlock struct {
	Qubits []uint64 `json:"qubits"`
}

func (p PragmaStopDecompositionBlock) Tags() []string {
	return tagsPragma("PragmaStopDecompositionBlock")
}
func (p PragmaStopDecompositionBlock) HqslangName() string {
	return "PragmaStopDecompositionBlock"
}
func (p PragmaStopDecompositionBlock) InvolvedQubits() QubitSet { return QubitsOf(p.Qubits...) }
func (p PragmaStopDecompositionBlock) IsParametrized() bool     { return false }

func (p PragmaStopDecompositionBlock) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p PragmaStopDecompositionBlock) RemapQubits(m QubitMapping) (Operation, error) {
	qubits, err := m.applyAll(p.Qubits)
	if err != nil {
		return nil, err
	}
	//
	p.Qubits = qubits
	//
	return p, nil
}

func (p PragmaStopDecompositionBlock) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaStopDecompositionBlock")
}

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
	"slices"
	"strings"
)

// Categories group operation variants by their most specific shared tag.
const (
	CategorySingleQubitGate = "SingleQubitGateOperation"
	CategoryRotation        = "Rotation"
	CategoryTwoQubitGate    = "TwoQubitGateOperation"
	CategoryThreeQubitGate  = "ThreeQubitGateOperation"
	CategoryFourQubitGate   = "FourQubitGateOperation"
	CategoryMultiQubitGate  = "MultiQubitGateOperation"
	CategoryDefinition      = "Definition"
	CategoryMeasurement     = "Measurement"
	CategoryPragma          = "PragmaOperation"
	CategoryNoisePragma     = "PragmaNoiseOperation"
	CategoryNoiseProba      = "PragmaNoiseProbaOperation"
	CategorySingleModeGate  = "SingleModeGateOperation"
	CategoryTwoModeGate     = "TwoModeGateOperation"
	CategorySpinBosonGate   = "SpinBosonGateOperation"
	CategoryOperation       = "Operation"
)

// Descriptor records the registry metadata of one operation variant: its
// stable hqslang name, its category and the core version which introduced
// it.  The table is append-only; released rows never change.
type Descriptor struct {
	Name       string
	Category   string
	Introduced Version
}

var (
	v1_0  = Version{1, 0, 0}
	v1_1  = Version{1, 1, 0}
	v1_2  = Version{1, 2, 0}
	v1_3  = Version{1, 3, 0}
	v1_4  = Version{1, 4, 0}
	v1_5  = Version{1, 5, 0}
	v1_6  = Version{1, 6, 0}
	v1_7  = Version{1, 7, 0}
	v1_8  = Version{1, 8, 0}
	v1_9  = Version{1, 9, 0}
	v1_13 = Version{1, 13, 0}
	v1_15 = Version{1, 15, 0}
	v1_16 = Version{1, 16, 0}
	v1_19 = Version{1, 19, 0}
	v1_20 = Version{1, 20, 0}
)

// descriptors enumerates every operation variant of this core, in rough
// order of introduction.
var descriptors = []Descriptor{
	// Single-qubit gates
	{"SingleQubitGate", CategorySingleQubitGate, v1_0},
	{"PauliX", CategorySingleQubitGate, v1_0},
	{"PauliY", CategorySingleQubitGate, v1_0},
	{"PauliZ", CategorySingleQubitGate, v1_0},
	{"SqrtPauliX", CategorySingleQubitGate, v1_0},
	{"InvSqrtPauliX", CategorySingleQubitGate, v1_0},
	{"Hadamard", CategorySingleQubitGate, v1_0},
	{"SGate", CategorySingleQubitGate, v1_0},
	{"TGate", CategorySingleQubitGate, v1_0},
	{"PhaseShiftState0", CategorySingleQubitGate, v1_0},
	{"PhaseShiftState1", CategorySingleQubitGate, v1_0},
	{"RotateX", CategoryRotation, v1_0},
	{"RotateY", CategoryRotation, v1_0},
	{"RotateZ", CategoryRotation, v1_0},
	{"RotateXY", CategoryRotation, v1_0},
	{"RotateAroundSphericalAxis", CategoryRotation, v1_0},
	{"GPi", CategoryRotation, v1_4},
	{"GPi2", CategoryRotation, v1_4},
	{"Identity", CategorySingleQubitGate, v1_7},
	{"SqrtPauliY", CategorySingleQubitGate, v1_15},
	{"InvSqrtPauliY", CategorySingleQubitGate, v1_15},
	{"InvSGate", CategorySingleQubitGate, v1_16},
	{"InvTGate", CategorySingleQubitGate, v1_16},
	{"SXGate", CategorySingleQubitGate, v1_16},
	{"InvSXGate", CategorySingleQubitGate, v1_16},
	// Two-qubit gates
	{"CNOT", CategoryTwoQubitGate, v1_0},
	{"SWAP", CategoryTwoQubitGate, v1_0},
	{"FSwap", CategoryTwoQubitGate, v1_0},
	{"ISwap", CategoryTwoQubitGate, v1_0},
	{"SqrtISwap", CategoryTwoQubitGate, v1_0},
	{"InvSqrtISwap", CategoryTwoQubitGate, v1_0},
	{"ControlledPauliY", CategoryTwoQubitGate, v1_0},
	{"ControlledPauliZ", CategoryTwoQubitGate, v1_0},
	{"ControlledPhaseShift", CategoryTwoQubitGate, v1_0},
	{"MolmerSorensenXX", CategoryTwoQubitGate, v1_0},
	{"VariableMSXX", CategoryTwoQubitGate, v1_0},
	{"XY", CategoryTwoQubitGate, v1_0},
	{"GivensRotation", CategoryTwoQubitGate, v1_0},
	{"GivensRotationLittleEndian", CategoryTwoQubitGate, v1_0},
	{"Qsim", CategoryTwoQubitGate, v1_0},
	{"Fsim", CategoryTwoQubitGate, v1_0},
	{"SpinInteraction", CategoryTwoQubitGate, v1_0},
	{"Bogoliubov", CategoryTwoQubitGate, v1_0},
	{"PMInteraction", CategoryTwoQubitGate, v1_0},
	{"ComplexPMInteraction", CategoryTwoQubitGate, v1_0},
	{"PhaseShiftedControlledZ", CategoryTwoQubitGate, v1_0},
	{"PhaseShiftedControlledPhase", CategoryTwoQubitGate, v1_2},
	{"ControlledRotateX", CategoryTwoQubitGate, v1_3},
	{"ControlledRotateXY", CategoryTwoQubitGate, v1_3},
	{"EchoCrossResonance", CategoryTwoQubitGate, v1_8},
	// Three-qubit gates
	{"Toffoli", CategoryThreeQubitGate, v1_3},
	{"ControlledControlledPauliZ", CategoryThreeQubitGate, v1_3},
	{"ControlledControlledPhaseShift", CategoryThreeQubitGate, v1_3},
	{"ControlledSWAP", CategoryThreeQubitGate, v1_16},
	{"PhaseShiftedControlledControlledZ", CategoryThreeQubitGate, v1_16},
	{"PhaseShiftedControlledControlledPhase", CategoryThreeQubitGate, v1_16},
	// Four-qubit gates
	{"TripleControlledPauliX", CategoryFourQubitGate, v1_16},
	{"TripleControlledPauliZ", CategoryFourQubitGate, v1_16},
	{"TripleControlledPhaseShift", CategoryFourQubitGate, v1_16},
	// Multi-qubit gates
	{"MultiQubitMS", CategoryMultiQubitGate, v1_0},
	{"MultiQubitZZ", CategoryMultiQubitGate, v1_0},
	{"MultiQubitCNOT", CategoryMultiQubitGate, v1_20},
	{"QFT", CategoryMultiQubitGate, v1_20},
	// Definitions
	{"DefinitionBit", CategoryDefinition, v1_0},
	{"DefinitionFloat", CategoryDefinition, v1_0},
	{"DefinitionComplex", CategoryDefinition, v1_0},
	{"DefinitionUsize", CategoryDefinition, v1_0},
	{"InputSymbolic", CategoryDefinition, v1_0},
	{"InputBit", CategoryDefinition, v1_1},
	{"GateDefinition", CategoryDefinition, v1_13},
	{"CallDefinedGate", CategoryOperation, v1_13},
	// Measurements
	{"MeasureQubit", CategoryMeasurement, v1_0},
	{"PragmaRepeatedMeasurement", CategoryMeasurement, v1_0},
	{"PragmaSetNumberOfMeasurements", CategoryMeasurement, v1_0},
	{"PragmaGetStateVector", CategoryMeasurement, v1_0},
	{"PragmaGetDensityMatrix", CategoryMeasurement, v1_0},
	{"PragmaGetOccupationProbability", CategoryMeasurement, v1_0},
	{"PragmaGetPauliProduct", CategoryMeasurement, v1_0},
	// Pragmas
	{"PragmaSetStateVector", CategoryPragma, v1_0},
	{"PragmaSetDensityMatrix", CategoryPragma, v1_0},
	{"PragmaRepeatGate", CategoryPragma, v1_0},
	{"PragmaOverrotation", CategoryPragma, v1_0},
	{"PragmaBoostNoise", CategoryPragma, v1_0},
	{"PragmaStopParallelBlock", CategoryPragma, v1_0},
	{"PragmaGlobalPhase", CategoryPragma, v1_0},
	{"PragmaSleep", CategoryPragma, v1_0},
	{"PragmaActiveReset", CategoryPragma, v1_0},
	{"PragmaStartDecompositionBlock", CategoryPragma, v1_0},
	{"PragmaStopDecompositionBlock", CategoryPragma, v1_0},
	{"PragmaChangeDevice", CategoryPragma, v1_0},
	{"PragmaConditional", CategoryPragma, v1_0},
	{"PragmaLoop", CategoryPragma, v1_1},
	{"PragmaControlledCircuit", CategoryPragma, v1_5},
	{"PragmaAnnotatedOp", CategoryPragma, v1_8},
	{"PragmaSimulationRepetitions", CategoryPragma, v1_19},
	// Noise pragmas
	{"PragmaDamping", CategoryNoiseProba, v1_0},
	{"PragmaDepolarising", CategoryNoiseProba, v1_0},
	{"PragmaDephasing", CategoryNoiseProba, v1_0},
	{"PragmaRandomNoise", CategoryNoiseProba, v1_0},
	{"PragmaGeneralNoise", CategoryNoisePragma, v1_0},
	// Bosonic mode gates
	{"Squeezing", CategorySingleModeGate, v1_6},
	{"PhaseShift", CategorySingleModeGate, v1_6},
	{"BeamSplitter", CategoryTwoModeGate, v1_6},
	{"PhotonDetection", CategorySingleModeGate, v1_6},
	{"PhaseDisplacement", CategorySingleModeGate, v1_7},
	// Spin-boson gates
	{"QuantumRabi", CategorySpinBosonGate, v1_9},
	{"LongitudinalCoupling", CategorySpinBosonGate, v1_9},
	{"JaynesCummings", CategorySpinBosonGate, v1_9},
	{"SingleExcitationLoad", CategorySpinBosonGate, v1_9},
	{"SingleExcitationStore", CategorySpinBosonGate, v1_9},
	{"CZQubitResonator", CategorySpinBosonGate, v1_9},
}

// descriptorsByName indexes the registry by hqslang name.
var descriptorsByName = func() map[string]Descriptor {
	index := make(map[string]Descriptor, len(descriptors))
	//
	for _, d := range descriptors {
		if _, ok := index[d.Name]; ok {
			panic(fmt.Sprintf("duplicate operation descriptor %q", d.Name))
		}
		//
		index[d.Name] = d
	}
	//
	return index
}()

// introducedVersion looks up the introduction version of a released variant.
// Unlike IntroducedIn, it panics on unknown names since every variant in
// this package must have a registry row.
func introducedVersion(hqslang string) Version {
	d, ok := descriptorsByName[hqslang]
	//
	if !ok {
		panic(fmt.Sprintf("operation %q missing from registry", hqslang))
	}
	//
	return d.Introduced
}

// Prototype returns a zero value of the variant with the given hqslang name.
func Prototype(hqslang string) (Operation, bool) {
	proto, ok := prototypes[hqslang]
	return proto, ok
}

// Describe returns the registry row for the given hqslang name.
func Describe(hqslang string) (Descriptor, bool) {
	d, ok := descriptorsByName[hqslang]
	return d, ok
}

// AvailableOperations returns the hqslang names of all variants known to
// this core, sorted alphabetically.
func AvailableOperations() []string {
	names := make([]string, 0, len(descriptors))
	//
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	//
	slices.Sort(names)
	//
	return names
}

// AvailableGates returns the hqslang names of all unitary gate variants,
// sorted alphabetically.
func AvailableGates() []string {
	var names []string
	//
	for _, d := range descriptors {
		if strings.HasSuffix(d.Category, "GateOperation") || d.Category == CategoryRotation {
			names = append(names, d.Name)
		}
	}
	//
	slices.Sort(names)
	//
	return names
}

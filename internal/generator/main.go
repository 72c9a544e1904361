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

// Generator for the mechanical parts of pkg/ir: the parameterless gate
// variants and the registry maps.  Run via go:generate; the interesting
// variants (parametrized gates, pragmas, control flow) stay hand-written.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Qirlab Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "internal/generator")

	data := irData{
		SingleQubitGates: []string{
			"PauliX", "PauliY", "PauliZ",
			"SqrtPauliX", "InvSqrtPauliX",
			"SqrtPauliY", "InvSqrtPauliY",
			"Hadamard",
			"SGate", "TGate", "InvSGate", "InvTGate",
			"SXGate", "InvSXGate",
			"Identity",
		},
		TwoQubitGates: []string{
			"CNOT", "SWAP", "FSwap", "ISwap",
			"SqrtISwap", "InvSqrtISwap",
			"ControlledPauliY", "ControlledPauliZ",
			"MolmerSorensenXX", "EchoCrossResonance",
		},
	}
	// All registered variants, including the hand-written ones.
	data.AllVariants = allVariants(data)

	assertNoError(bgen.Generate(data, "ir", "templates",
		bavard.Entry{
			File:      "../../pkg/ir/gates_single_gen.go",
			Templates: []string{"gates_single.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../pkg/ir/gates_two_gen.go",
			Templates: []string{"gates_two.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../pkg/ir/registry_gen.go",
			Templates: []string{"registry.go.tmpl"},
		},
	), "generating pkg/ir")

	// run gofmt on the generated package
	runCmd("gofmt", "-w", "../../pkg/ir")
}

type irData struct {
	SingleQubitGates []string
	TwoQubitGates    []string
	AllVariants      []string
}

// allVariants lists every variant name in registration order: the generated
// gates plus the hand-written ones.
func allVariants(data irData) []string {
	variants := []string{
		"SingleQubitGate",
		"PhaseShiftState0", "PhaseShiftState1",
		"RotateX", "RotateY", "RotateZ", "RotateXY",
		"RotateAroundSphericalAxis", "GPi", "GPi2",
	}
	variants = append(variants, data.SingleQubitGates...)
	variants = append(variants, data.TwoQubitGates...)
	variants = append(variants,
		"XY", "ControlledPhaseShift", "VariableMSXX",
		"GivensRotation", "GivensRotationLittleEndian",
		"Qsim", "Fsim", "SpinInteraction", "Bogoliubov",
		"PMInteraction", "ComplexPMInteraction",
		"PhaseShiftedControlledZ", "PhaseShiftedControlledPhase",
		"ControlledRotateX", "ControlledRotateXY",
		"Toffoli", "ControlledControlledPauliZ", "ControlledControlledPhaseShift",
		"ControlledSWAP", "PhaseShiftedControlledControlledZ",
		"PhaseShiftedControlledControlledPhase",
		"TripleControlledPauliX", "TripleControlledPauliZ", "TripleControlledPhaseShift",
		"MultiQubitMS", "MultiQubitZZ", "MultiQubitCNOT", "QFT",
		"DefinitionBit", "DefinitionFloat", "DefinitionComplex", "DefinitionUsize",
		"InputSymbolic", "InputBit",
		"GateDefinition", "CallDefinedGate",
		"MeasureQubit", "PragmaRepeatedMeasurement", "PragmaSetNumberOfMeasurements",
		"PragmaGetStateVector", "PragmaGetDensityMatrix",
		"PragmaGetOccupationProbability", "PragmaGetPauliProduct",
		"PragmaSetStateVector", "PragmaSetDensityMatrix",
		"PragmaRepeatGate", "PragmaOverrotation", "PragmaBoostNoise",
		"PragmaStopParallelBlock", "PragmaGlobalPhase", "PragmaSleep",
		"PragmaActiveReset", "PragmaStartDecompositionBlock",
		"PragmaStopDecompositionBlock", "PragmaChangeDevice",
		"PragmaConditional", "PragmaLoop", "PragmaControlledCircuit",
		"PragmaAnnotatedOp", "PragmaSimulationRepetitions",
		"PragmaDamping", "PragmaDepolarising", "PragmaDephasing",
		"PragmaRandomNoise", "PragmaGeneralNoise",
		"Squeezing", "PhaseShift", "BeamSplitter", "PhotonDetection",
		"PhaseDisplacement",
		"QuantumRabi", "LongitudinalCoupling", "JaynesCummings",
		"SingleExcitationLoad", "SingleExcitationStore", "CZQubitResonator",
	)
	//
	return variants
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, msg string, args ...any) {
	if err != nil {
		if msg != "" {
			fmt.Printf(msg+": ", args...)
		}
		//
		fmt.Println(err)
		os.Exit(1)
	}
}

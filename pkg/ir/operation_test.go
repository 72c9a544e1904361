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
	"errors"
	"slices"
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
)

func Test_Operation_Tags_01(t *testing.T) {
	checkTags(t, RotateZ{},
		"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateZ")
	checkTags(t, Hadamard{},
		"Operation", "GateOperation", "SingleQubitGateOperation", "Hadamard")
	checkTags(t, CNOT{},
		"Operation", "GateOperation", "TwoQubitGateOperation", "CNOT")
	checkTags(t, Toffoli{},
		"Operation", "GateOperation", "ThreeQubitGateOperation", "Toffoli")
	checkTags(t, DefinitionBit{},
		"Operation", "Definition", "DefinitionBit")
	checkTags(t, MeasureQubit{},
		"Operation", "Measurement", "MeasureQubit")
	checkTags(t, PragmaSleep{},
		"Operation", "PragmaOperation", "PragmaSleep")
	checkTags(t, PragmaDamping{},
		"Operation", "PragmaOperation", "PragmaNoiseOperation", "PragmaNoiseProbaOperation",
		"PragmaDamping")
	checkTags(t, PragmaGeneralNoise{},
		"Operation", "PragmaOperation", "PragmaNoiseOperation", "PragmaGeneralNoise")
	checkTags(t, Squeezing{},
		"Operation", "ModeGateOperation", "SingleModeGateOperation", "Squeezing")
	checkTags(t, BeamSplitter{},
		"Operation", "ModeGateOperation", "TwoModeGateOperation", "BeamSplitter")
	checkTags(t, JaynesCummings{},
		"Operation", "GateOperation", "SpinBosonGateOperation", "JaynesCummings")
}

func Test_Operation_Tags_02(t *testing.T) {
	// Every variant's tag chain starts with "Operation" and ends with its
	// hqslang name.
	for name, proto := range prototypes {
		tags := proto.Tags()
		//
		if len(tags) < 2 {
			t.Errorf("%s: tag chain too short", name)
		} else if tags[0] != "Operation" {
			t.Errorf("%s: tag chain starts with %q", name, tags[0])
		} else if tags[len(tags)-1] != name {
			t.Errorf("%s: tag chain ends with %q", name, tags[len(tags)-1])
		}
		//
		if proto.HqslangName() != name {
			t.Errorf("%s: registered under wrong name %q", name, proto.HqslangName())
		}
	}
}

func Test_Operation_Involved_01(t *testing.T) {
	checkInvolved(t, Hadamard{Qubit: 3}, 3)
	checkInvolved(t, CNOT{Control: 1, Target: 0}, 0, 1)
	checkInvolved(t, Toffoli{Control0: 2, Control1: 0, Target: 4}, 0, 2, 4)
	checkInvolved(t, TripleControlledPauliX{Control0: 0, Control1: 1, Control2: 2, Target: 3},
		0, 1, 2, 3)
	checkInvolved(t, MultiQubitMS{Qubits: []uint64{4, 1, 2}, Theta: calculator.Float(1)}, 1, 2, 4)
	checkInvolved(t, MeasureQubit{Qubit: 7}, 7)
}

func Test_Operation_Involved_02(t *testing.T) {
	// Definitions and register-only pragmas involve no qubits at all.
	for _, op := range []Operation{
		DefinitionBit{}, DefinitionFloat{}, DefinitionComplex{}, DefinitionUsize{},
		InputSymbolic{}, InputBit{}, GateDefinition{},
		PragmaSetNumberOfMeasurements{}, PragmaBoostNoise{}, PragmaSimulationRepetitions{},
	} {
		if !op.InvolvedQubits().IsEmpty() {
			t.Errorf("%s should involve no qubits", op.HqslangName())
		}
	}
	// Global directives involve every qubit.
	for _, op := range []Operation{
		PragmaSetStateVector{}, PragmaSetDensityMatrix{}, PragmaGlobalPhase{},
		PragmaRepeatedMeasurement{}, PragmaGetStateVector{}, PragmaGetPauliProduct{},
		PragmaChangeDevice{},
	} {
		if !op.InvolvedQubits().IsAll() {
			t.Errorf("%s should involve all qubits", op.HqslangName())
		}
	}
}

func Test_Operation_Involved_03(t *testing.T) {
	// Bosonic mode gates involve modes, not qubits.
	squeeze := Squeezing{Mode: 2}
	//
	if !squeeze.InvolvedQubits().IsEmpty() {
		t.Error("mode gate should involve no qubits")
	}
	//
	if !slices.Equal(squeeze.InvolvedModes(), []uint64{2}) {
		t.Errorf("unexpected modes %v", squeeze.InvolvedModes())
	}
	//
	bs := BeamSplitter{Mode0: 0, Mode1: 3}
	//
	if !slices.Equal(bs.InvolvedModes(), []uint64{0, 3}) {
		t.Errorf("unexpected modes %v", bs.InvolvedModes())
	}
	// Spin-boson gates involve one qubit and one mode.
	rabi := QuantumRabi{Qubit: 1, Mode: 2, Theta: calculator.Float(0.1)}
	//
	checkInvolved(t, rabi, 1)
	//
	if !slices.Equal(rabi.InvolvedModes(), []uint64{2}) {
		t.Errorf("unexpected modes %v", rabi.InvolvedModes())
	}
}

func Test_Operation_Remap_01(t *testing.T) {
	remapped, err := CNOT{Control: 0, Target: 1}.RemapQubits(QubitMapping{0: 1, 1: 0})
	if err != nil {
		t.Fatal(err)
	}
	//
	cnot := remapped.(CNOT)
	//
	if cnot.Control != 1 || cnot.Target != 0 {
		t.Errorf("unexpected remap %+v", cnot)
	}
}

func Test_Operation_Remap_02(t *testing.T) {
	// The mapping must be total over the involved-qubit set.
	_, err := CNOT{Control: 0, Target: 1}.RemapQubits(QubitMapping{0: 5})
	//
	var rerr *RemapError
	//
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RemapError, got %v", err)
	} else if rerr.Qubit != 1 {
		t.Errorf("unexpected qubit %d", rerr.Qubit)
	}
}

func Test_Operation_Remap_03(t *testing.T) {
	// Remapping never mutates the original value.
	original := PragmaOverrotation{GateHqslang: "RotateX", Qubits: []uint64{0, 1}}
	//
	remapped, err := original.RemapQubits(QubitMapping{0: 3, 1: 4})
	if err != nil {
		t.Fatal(err)
	}
	//
	checkInvolved(t, remapped, 3, 4)
	checkInvolved(t, original, 0, 1)
}

func Test_Operation_Remap_04(t *testing.T) {
	// Repeated-measurement slot maps remap by key, leaving unmapped indices
	// unchanged.
	op := PragmaRepeatedMeasurement{
		Readout:            "ro",
		NumberMeasurements: 100,
		QubitMapping:       map[uint64]uint64{0: 0, 1: 1},
	}
	//
	remapped, err := op.RemapQubits(QubitMapping{0: 2})
	if err != nil {
		t.Fatal(err)
	}
	//
	mapping := remapped.(PragmaRepeatedMeasurement).QubitMapping
	//
	if mapping[2] != 0 || mapping[1] != 1 {
		t.Errorf("unexpected mapping %v", mapping)
	}
}

func Test_Operation_Remap_05(t *testing.T) {
	// Device-change payloads are opaque, so only identity mappings succeed.
	op := PragmaChangeDevice{WrappedHqslang: "Calibrate"}
	//
	if _, err := op.RemapQubits(QubitMapping{0: 0, 1: 1}); err != nil {
		t.Errorf("identity mapping should succeed: %v", err)
	}
	//
	if _, err := op.RemapQubits(QubitMapping{0: 1}); err == nil {
		t.Error("non-identity mapping should fail")
	}
}

func Test_Operation_Substitute_01(t *testing.T) {
	op := RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")}
	//
	if !op.IsParametrized() {
		t.Error("operation should be parametrized")
	}
	//
	resolved, err := op.SubstituteParameters(calculator.Bindings{"theta": 1.5})
	if err != nil {
		t.Fatal(err)
	}
	//
	if resolved.IsParametrized() {
		t.Error("resolved operation should not be parametrized")
	}
	// Original untouched
	if !op.IsParametrized() {
		t.Error("substitution should not modify the original")
	}
}

func Test_Operation_Substitute_02(t *testing.T) {
	op := RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")}
	//
	_, err := op.SubstituteParameters(calculator.Bindings{"phi": 1})
	//
	var serr *SubstitutionError
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected SubstitutionError, got %v", err)
	} else if serr.Index != -1 {
		t.Errorf("operation-level error should carry index -1, got %d", serr.Index)
	}
}

func Test_Operation_Substitute_03(t *testing.T) {
	// Substitution recurses through wrappers.
	inner := NewCircuit(RotateX{Qubit: 0, Theta: calculator.Symbol("a")})
	op := PragmaLoop{Repetitions: calculator.Symbol("n"), Circuit: inner}
	//
	resolved, err := op.SubstituteParameters(calculator.Bindings{"a": 0.5, "n": 3})
	if err != nil {
		t.Fatal(err)
	}
	//
	loop := resolved.(PragmaLoop)
	//
	if loop.IsParametrized() {
		t.Error("resolved loop should not be parametrized")
	}
	//
	if reps, _ := loop.Repetitions.Float64(); reps != 3 {
		t.Errorf("unexpected repetitions %g", reps)
	}
}

func Test_Operation_Substitute_04(t *testing.T) {
	op := CallDefinedGate{
		GateName:       "grover_step",
		Qubits:         []uint64{0, 1},
		FreeParameters: []calculator.Value{calculator.Symbol("a"), calculator.Float(2)},
	}
	//
	resolved, err := op.SubstituteParameters(calculator.Bindings{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	//
	if resolved.IsParametrized() {
		t.Error("resolved call should not be parametrized")
	}
	// Original parameter list untouched
	if !op.FreeParameters[0].IsSymbolic() {
		t.Error("substitution should not modify the original")
	}
}

func Test_Operation_Annotated_01(t *testing.T) {
	op := PragmaAnnotatedOp{
		Operation:  RotateZ{Qubit: 1, Theta: calculator.Symbol("theta")},
		Annotation: "decomposed",
	}
	// All capabilities delegate to the wrapped operation.
	checkInvolved(t, op, 1)
	//
	if !op.IsParametrized() {
		t.Error("wrapper should report wrapped parametrization")
	}
	//
	remapped, err := op.RemapQubits(QubitMapping{1: 4})
	if err != nil {
		t.Fatal(err)
	}
	//
	checkInvolved(t, remapped, 4)
	//
	if remapped.(PragmaAnnotatedOp).Annotation != "decomposed" {
		t.Error("annotation lost during remap")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkTags(t *testing.T, op Operation, expected ...string) {
	t.Helper()
	//
	if !slices.Equal(op.Tags(), expected) {
		t.Errorf("expected tags %v, got %v", expected, op.Tags())
	}
}

func checkInvolved(t *testing.T, op Operation, expected ...uint64) {
	t.Helper()
	//
	qs := op.InvolvedQubits()
	//
	if qs.IsAll() {
		t.Fatalf("%s: unexpected universal qubit set", op.HqslangName())
	}
	//
	if !slices.Equal(qs.Qubits(), expected) {
		t.Errorf("%s: expected qubits %v, got %v", op.HqslangName(), expected, qs.Qubits())
	}
}

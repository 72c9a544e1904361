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

func Test_Circuit_01(t *testing.T) {
	var circuit Circuit
	// Zero value is an empty circuit
	if circuit.Len() != 0 {
		t.Errorf("unexpected length %d", circuit.Len())
	}
	//
	if !circuit.InvolvedQubits().IsEmpty() {
		t.Error("empty circuit should involve no qubits")
	}
	//
	circuit.Add(PauliX{Qubit: 0}, CNOT{Control: 0, Target: 1})
	//
	if circuit.Len() != 2 {
		t.Errorf("unexpected length %d", circuit.Len())
	}
	//
	if circuit.Get(1).HqslangName() != "CNOT" {
		t.Errorf("unexpected operation %s", circuit.Get(1).HqslangName())
	}
}

func Test_Circuit_02(t *testing.T) {
	circuit := NewCircuit(
		Hadamard{Qubit: 2},
		CNOT{Control: 2, Target: 5},
		MeasureQubit{Qubit: 5, Readout: "ro", ReadoutIndex: 0},
	)
	//
	checkQubits(t, circuit.InvolvedQubits(), 2, 5)
}

func Test_Circuit_03(t *testing.T) {
	// Any globally-acting operation makes involvement universal.
	circuit := NewCircuit(
		Hadamard{Qubit: 0},
		PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 10},
	)
	//
	if !circuit.InvolvedQubits().IsAll() {
		t.Error("expected universal involvement")
	}
}

func Test_Circuit_04(t *testing.T) {
	l := NewCircuit(PauliX{Qubit: 0})
	r := NewCircuit(PauliY{Qubit: 1})
	//
	c := l.Concat(r)
	//
	if c.Len() != 2 {
		t.Errorf("unexpected length %d", c.Len())
	}
	// Empty circuit is the identity of concatenation
	if l.Concat(Circuit{}).Len() != 1 || (Circuit{}).Concat(l).Len() != 1 {
		t.Error("empty circuit should be concat identity")
	}
	// Operands untouched
	if l.Len() != 1 || r.Len() != 1 {
		t.Error("concat should not modify its operands")
	}
}

func Test_Circuit_Substitute_01(t *testing.T) {
	circuit := NewCircuit(
		RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
		RotateX{Qubit: 1, Theta: calculator.Float(1.5)},
	)
	//
	if !circuit.IsParametrized() {
		t.Error("circuit should be parametrized")
	}
	//
	resolved, err := circuit.SubstituteParameters(calculator.Bindings{"theta": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	//
	if resolved.IsParametrized() {
		t.Error("resolved circuit should not be parametrized")
	}
	// Original untouched
	if !circuit.IsParametrized() {
		t.Error("substitution should not modify the original")
	}
	//
	rz := resolved.Get(0).(RotateZ)
	//
	if f, _ := rz.Theta.Float64(); f != 0.5 {
		t.Errorf("unexpected angle %g", f)
	}
}

func Test_Circuit_Substitute_02(t *testing.T) {
	circuit := NewCircuit(
		PauliX{Qubit: 0},
		RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
	)
	//
	_, err := circuit.SubstituteParameters(calculator.Bindings{})
	//
	var serr *SubstitutionError
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected SubstitutionError, got %v", err)
	} else if serr.Index != 1 {
		t.Errorf("error should carry position 1, got %d", serr.Index)
	}
}

func Test_Circuit_Remap_01(t *testing.T) {
	circuit := NewCircuit(
		Hadamard{Qubit: 0},
		CNOT{Control: 0, Target: 1},
	)
	//
	remapped, err := circuit.RemapQubits(QubitMapping{0: 2, 1: 3})
	if err != nil {
		t.Fatal(err)
	}
	//
	checkQubits(t, remapped.InvolvedQubits(), 2, 3)
	// Original untouched
	checkQubits(t, circuit.InvolvedQubits(), 0, 1)
}

func Test_Circuit_Remap_02(t *testing.T) {
	// Partial mappings fail, carrying the offending position.
	circuit := NewCircuit(
		PauliX{Qubit: 0},
		CNOT{Control: 0, Target: 1},
	)
	//
	_, err := circuit.RemapQubits(QubitMapping{0: 5})
	//
	var rerr *RemapError
	//
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RemapError, got %v", err)
	} else if rerr.Qubit != 1 {
		t.Errorf("unexpected qubit %d", rerr.Qubit)
	} else if rerr.Index != 1 {
		t.Errorf("error should carry position 1, got %d", rerr.Index)
	}
}

func Test_Circuit_Version_01(t *testing.T) {
	// Old variants only: readable by the first release.
	circuit := NewCircuit(Hadamard{Qubit: 0}, CNOT{Control: 0, Target: 1})
	//
	if v := circuit.MinimumSupportedVersion(); v != (Version{1, 0, 0}) {
		t.Errorf("unexpected version %s", v)
	}
	// Adding a newer variant raises the requirement.
	circuit.Add(QFT{Qubits: []uint64{0, 1}})
	//
	if v := circuit.MinimumSupportedVersion(); v != (Version{1, 20, 0}) {
		t.Errorf("unexpected version %s", v)
	}
}

func Test_Circuit_Version_02(t *testing.T) {
	// Wrappers recurse into their payload.
	inner := NewCircuit(Toffoli{Control0: 0, Control1: 1, Target: 2})
	circuit := NewCircuit(PragmaLoop{Repetitions: calculator.Float(2), Circuit: inner})
	//
	if v := circuit.MinimumSupportedVersion(); v != (Version{1, 3, 0}) {
		t.Errorf("unexpected version %s", v)
	}
}

func Test_Circuit_Gob_01(t *testing.T) {
	circuit := NewCircuit(
		Hadamard{Qubit: 0},
		RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
		CNOT{Control: 0, Target: 1},
		MeasureQubit{Qubit: 1, Readout: "ro", ReadoutIndex: 1},
	)
	//
	data, err := circuit.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	//
	var decoded Circuit
	//
	if err := decoded.GobDecode(data); err != nil {
		t.Fatal(err)
	}
	//
	checkSameCircuit(t, circuit, decoded)
}

func Test_Circuit_Json_01(t *testing.T) {
	circuit := NewCircuit(
		DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
		Hadamard{Qubit: 0},
		RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
		PragmaDamping{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(0.01)},
		MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
	)
	//
	data, err := circuit.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	//
	var decoded Circuit
	//
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	//
	checkSameCircuit(t, circuit, decoded)
}

func Test_Circuit_Iter_01(t *testing.T) {
	circuit := NewCircuit(PauliX{Qubit: 0}, PauliY{Qubit: 1}, PauliZ{Qubit: 2})
	//
	var names []string
	//
	for iter := circuit.Iter(); iter.HasNext(); {
		names = append(names, iter.Next().HqslangName())
	}
	//
	if !slices.Equal(names, []string{"PauliX", "PauliY", "PauliZ"}) {
		t.Errorf("unexpected iteration order %v", names)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkQubits(t *testing.T, qs QubitSet, expected ...uint64) {
	t.Helper()
	//
	if qs.IsAll() {
		t.Fatal("unexpected universal qubit set")
	}
	//
	if !slices.Equal(qs.Qubits(), expected) {
		t.Errorf("expected qubits %v, got %v", expected, qs.Qubits())
	}
}

func checkSameCircuit(t *testing.T, expected, actual Circuit) {
	t.Helper()
	//
	if expected.Len() != actual.Len() {
		t.Fatalf("expected %d operations, got %d", expected.Len(), actual.Len())
	}
	//
	for i := 0; i < expected.Len(); i++ {
		l, r := expected.Get(i), actual.Get(i)
		//
		if l.HqslangName() != r.HqslangName() {
			t.Errorf("operation %d: expected %s, got %s", i, l.HqslangName(), r.HqslangName())
		}
	}
	//
	if expected.String() != actual.String() {
		t.Errorf("expected:\n%s\ngot:\n%s", expected.String(), actual.String())
	}
}

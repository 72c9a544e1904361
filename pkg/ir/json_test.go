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
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
)

func Test_Json_Operation_01(t *testing.T) {
	data, err := MarshalOperation(RotateZ{Qubit: 0, Theta: calculator.Float(1.5)})
	if err != nil {
		t.Fatal(err)
	}
	// Externally tagged: the variant name is the single key.
	if !strings.HasPrefix(string(data), `{"RotateZ":`) {
		t.Errorf("unexpected encoding %s", string(data))
	}
	//
	decoded, err := UnmarshalOperation(data)
	if err != nil {
		t.Fatal(err)
	}
	//
	if !reflect.DeepEqual(decoded, RotateZ{Qubit: 0, Theta: calculator.Float(1.5)}) {
		t.Errorf("round trip changed operation: %+v", decoded)
	}
}

func Test_Json_Operation_02(t *testing.T) {
	checkOperationJsonRoundTrip(t, Hadamard{Qubit: 3})
	checkOperationJsonRoundTrip(t, RotateXY{
		Qubit: 1, Theta: calculator.Symbol("theta"), Phi: calculator.Float(0.5),
	})
	checkOperationJsonRoundTrip(t, CNOT{Control: 0, Target: 1})
	checkOperationJsonRoundTrip(t, Toffoli{Control0: 0, Control1: 1, Target: 2})
	checkOperationJsonRoundTrip(t, MultiQubitMS{
		Qubits: []uint64{0, 1, 2}, Theta: calculator.Float(0.25),
	})
	checkOperationJsonRoundTrip(t, QFT{Qubits: []uint64{0, 1, 2}, Swaps: true, Inverse: false})
	checkOperationJsonRoundTrip(t, DefinitionBit{Name: "ro", Length: 4, IsOutput: true})
	checkOperationJsonRoundTrip(t, InputSymbolic{Name: "theta", Input: 1.5})
	checkOperationJsonRoundTrip(t, MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 2})
	checkOperationJsonRoundTrip(t, PragmaSetNumberOfMeasurements{
		NumberMeasurements: 1000, Readout: "ro",
	})
	checkOperationJsonRoundTrip(t, PragmaDamping{
		Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Symbol("gamma"),
	})
	checkOperationJsonRoundTrip(t, PragmaSleep{
		Qubits: []uint64{0, 1}, SleepTime: calculator.Float(0.5),
	})
	checkOperationJsonRoundTrip(t, Squeezing{
		Mode: 1, Squeezing: calculator.Float(0.2), Phase: calculator.Float(0),
	})
	checkOperationJsonRoundTrip(t, CZQubitResonator{Qubit: 0, Mode: 1})
	checkOperationJsonRoundTrip(t, CallDefinedGate{
		GateName: "grover_step",
		Qubits:   []uint64{0, 1},
		FreeParameters: []calculator.Value{
			calculator.Symbol("a"), calculator.Float(2),
		},
	})
}

func Test_Json_Operation_03(t *testing.T) {
	// Nested circuits survive round trips.
	inner := NewCircuit(RotateX{Qubit: 0, Theta: calculator.Symbol("a")})
	//
	checkOperationJsonRoundTrip(t, PragmaLoop{Repetitions: calculator.Float(5), Circuit: inner})
	checkOperationJsonRoundTrip(t, PragmaConditional{
		ConditionRegister: "ro", ConditionIndex: 1, Circuit: inner,
	})
	checkOperationJsonRoundTrip(t, PragmaGetPauliProduct{
		QubitPaulis: map[uint64]uint64{0: 3, 1: 1},
		Readout:     "ro",
		Circuit:     inner,
	})
}

func Test_Json_Operation_04(t *testing.T) {
	// Documents using a tag unknown to this core fail loudly.
	_, err := UnmarshalOperation([]byte(`{"FluxCapacitor":{"qubit":0}}`))
	//
	var serr *SerializationError
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected SerializationError, got %v", err)
	}
	//
	if !strings.Contains(serr.Error(), "FluxCapacitor") {
		t.Errorf("error should name the unknown variant: %v", serr)
	}
}

func Test_Json_Operation_05(t *testing.T) {
	// Multiple keys are ambiguous and rejected.
	_, err := UnmarshalOperation([]byte(`{"PauliX":{"qubit":0},"PauliY":{"qubit":1}}`))
	//
	if err == nil {
		t.Error("two-key object should fail")
	}
	// So is a bare object.
	if _, err := UnmarshalOperation([]byte(`{}`)); err == nil {
		t.Error("empty object should fail")
	}
}

func Test_Json_Annotated_01(t *testing.T) {
	op := PragmaAnnotatedOp{
		Operation:  RotateZ{Qubit: 1, Theta: calculator.Symbol("theta")},
		Annotation: "noise-insertion \"pass\"",
	}
	//
	checkOperationJsonRoundTrip(t, op)
}

func Test_Json_Annotated_02(t *testing.T) {
	// Wrapping a wrapper nests cleanly.
	op := PragmaAnnotatedOp{
		Operation: PragmaAnnotatedOp{
			Operation:  PauliX{Qubit: 0},
			Annotation: "inner",
		},
		Annotation: "outer",
	}
	//
	checkOperationJsonRoundTrip(t, op)
}

func Test_Gob_Operation_01(t *testing.T) {
	// Interface values round-trip through a circuit's gob codec for every
	// registered variant's zero value.
	for name := range prototypes {
		circuit := NewCircuit(prototypes[name])
		//
		data, err := circuit.GobEncode()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		//
		var decoded Circuit
		//
		if err := decoded.GobDecode(data); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		//
		if decoded.Len() != 1 || decoded.Get(0).HqslangName() != name {
			t.Errorf("%s: round trip lost the operation", name)
		}
	}
}

func Test_Gob_Operation_02(t *testing.T) {
	// Encoding the same circuit must always produce the same bytes: the
	// map-carrying operations emit their entries in sorted-key order.
	mapping := make(map[uint64]uint64, 32)
	//
	for i := uint64(0); i < 32; i++ {
		mapping[i] = 31 - i
	}
	//
	circuit := NewCircuit(
		PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 10, QubitMapping: mapping},
		PragmaGetPauliProduct{QubitPaulis: mapping, Readout: "ro"},
		PragmaStartDecompositionBlock{Qubits: []uint64{0, 1}, ReorderingDictionary: mapping},
	)
	//
	first, err := circuit.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	//
	for i := 0; i < 16; i++ {
		next, err := circuit.GobEncode()
		if err != nil {
			t.Fatal(err)
		}
		//
		if !bytes.Equal(first, next) {
			t.Fatal("two encodings of the same circuit differ")
		}
	}
}

func Test_Gob_Operation_03(t *testing.T) {
	// The canonical codecs preserve the map contents.
	mapping := map[uint64]uint64{4: 1, 0: 2, 9: 3}
	//
	circuit := NewCircuit(
		PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 5, QubitMapping: mapping},
		PragmaGetPauliProduct{
			QubitPaulis: mapping,
			Readout:     "ro",
			Circuit:     NewCircuit(Hadamard{Qubit: 0}),
		},
		PragmaStartDecompositionBlock{Qubits: []uint64{0, 4}, ReorderingDictionary: mapping},
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
	if !reflect.DeepEqual(decoded.Get(0).(PragmaRepeatedMeasurement).QubitMapping, mapping) {
		t.Errorf("qubit mapping lost: %+v", decoded.Get(0))
	}
	//
	product := decoded.Get(1).(PragmaGetPauliProduct)
	//
	if !reflect.DeepEqual(product.QubitPaulis, mapping) || product.Circuit.Len() != 1 {
		t.Errorf("pauli product lost: %+v", product)
	}
	//
	if !reflect.DeepEqual(decoded.Get(2).(PragmaStartDecompositionBlock).ReorderingDictionary, mapping) {
		t.Errorf("reordering dictionary lost: %+v", decoded.Get(2))
	}
}

func Test_Json_Registry_01(t *testing.T) {
	// Every registered variant's zero value survives a JSON round trip.  The
	// annotation wrapper needs a wrapped operation to encode at all.
	for name, proto := range prototypes {
		if name == "PragmaAnnotatedOp" {
			proto = PragmaAnnotatedOp{Operation: Identity{}, Annotation: "x"}
		}
		//
		checkNamedJsonRoundTrip(t, name, proto)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkOperationJsonRoundTrip(t *testing.T, op Operation) {
	t.Helper()
	//
	checkNamedJsonRoundTrip(t, op.HqslangName(), op)
}

func checkNamedJsonRoundTrip(t *testing.T, name string, op Operation) {
	t.Helper()
	//
	data, err := MarshalOperation(op)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	//
	decoded, err := UnmarshalOperation(data)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	//
	if decoded.HqslangName() != name {
		t.Fatalf("%s: round trip changed variant to %s", name, decoded.HqslangName())
	}
	//
	reencoded, err := MarshalOperation(decoded)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	//
	if string(data) != string(reencoded) {
		t.Errorf("%s: unstable encoding\n%s\n%s", name, string(data), string(reencoded))
	}
}

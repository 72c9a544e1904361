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
)

func Test_Registry_01(t *testing.T) {
	// Every registry row has a prototype and a JSON factory, and vice versa.
	for _, d := range descriptors {
		if _, ok := prototypes[d.Name]; !ok {
			t.Errorf("%s: registry row without prototype", d.Name)
		}
		//
		if _, ok := jsonFactories[d.Name]; !ok {
			t.Errorf("%s: registry row without JSON factory", d.Name)
		}
	}
	//
	for name := range prototypes {
		if _, ok := descriptorsByName[name]; !ok {
			t.Errorf("%s: prototype without registry row", name)
		}
	}
	//
	for name := range jsonFactories {
		if _, ok := descriptorsByName[name]; !ok {
			t.Errorf("%s: JSON factory without registry row", name)
		}
	}
}

func Test_Registry_02(t *testing.T) {
	// No variant may claim a version newer than the current core.
	for _, d := range descriptors {
		if !CurrentVersion.AtLeast(d.Introduced) {
			t.Errorf("%s: introduced in %s, after current %s", d.Name, d.Introduced, CurrentVersion)
		}
	}
}

func Test_Registry_03(t *testing.T) {
	d, ok := Describe("RotateZ")
	//
	if !ok {
		t.Fatal("RotateZ should be registered")
	}
	//
	if d.Category != CategoryRotation {
		t.Errorf("unexpected category %q", d.Category)
	}
	//
	if d.Introduced != (Version{1, 0, 0}) {
		t.Errorf("unexpected version %s", d.Introduced)
	}
	//
	if _, ok := Describe("FluxCapacitor"); ok {
		t.Error("unknown name should not describe")
	}
}

func Test_Registry_04(t *testing.T) {
	names := AvailableOperations()
	//
	if len(names) != len(descriptors) {
		t.Errorf("expected %d names, got %d", len(descriptors), len(names))
	}
	//
	if !slices.IsSorted(names) {
		t.Error("names should be sorted")
	}
	//
	if !slices.Contains(names, "CNOT") || !slices.Contains(names, "PragmaLoop") {
		t.Error("missing expected names")
	}
}

func Test_Registry_05(t *testing.T) {
	gates := AvailableGates()
	//
	if !slices.Contains(gates, "CNOT") || !slices.Contains(gates, "RotateZ") {
		t.Error("missing expected gates")
	}
	// Pragmas, definitions and measurements are not gates.
	for _, name := range []string{"PragmaLoop", "DefinitionBit", "MeasureQubit", "PragmaDamping"} {
		if slices.Contains(gates, name) {
			t.Errorf("%s should not be listed as a gate", name)
		}
	}
}

func Test_Registry_06(t *testing.T) {
	// Gate variants implement the marker interface; the registry category
	// and the marker must agree.
	gates := AvailableGates()
	//
	for name, proto := range prototypes {
		_, unitary := proto.(GateOperation)
		listed := slices.Contains(gates, name)
		//
		if unitary != listed {
			t.Errorf("%s: unitary marker %v but gate listing %v", name, unitary, listed)
		}
	}
}

func Test_Version_01(t *testing.T) {
	v := Version{1, 2, 3}
	//
	if !v.AtLeast(Version{1, 2, 3}) {
		t.Error("version should be at least itself")
	}
	//
	if !v.AtLeast(Version{1, 2, 2}) || !v.AtLeast(Version{1, 1, 9}) || !v.AtLeast(Version{0, 9, 9}) {
		t.Error("expected at-least to hold")
	}
	//
	if v.AtLeast(Version{1, 2, 4}) || v.AtLeast(Version{1, 3, 0}) || v.AtLeast(Version{2, 0, 0}) {
		t.Error("expected at-least to fail")
	}
	//
	if v.Max(Version{1, 3, 0}) != (Version{1, 3, 0}) {
		t.Error("unexpected max")
	}
	//
	if v.String() != "1.2.3" {
		t.Errorf("unexpected rendering %q", v.String())
	}
}

func Test_Version_02(t *testing.T) {
	v, err := IntroducedIn("Toffoli")
	if err != nil {
		t.Fatal(err)
	}
	//
	if v != (Version{1, 3, 0}) {
		t.Errorf("unexpected version %s", v)
	}
	//
	_, err = IntroducedIn("FluxCapacitor")
	//
	var verr *VersionError
	//
	if !errors.As(err, &verr) {
		t.Fatalf("expected VersionError, got %v", err)
	} else if verr.Name != "FluxCapacitor" {
		t.Errorf("unexpected name %q", verr.Name)
	}
}

func Test_Version_03(t *testing.T) {
	// Spot checks along the release ladder.
	checkIntroduced(t, "CNOT", Version{1, 0, 0})
	checkIntroduced(t, "PragmaLoop", Version{1, 1, 0})
	checkIntroduced(t, "PhaseShiftedControlledPhase", Version{1, 2, 0})
	checkIntroduced(t, "GPi", Version{1, 4, 0})
	checkIntroduced(t, "PragmaControlledCircuit", Version{1, 5, 0})
	checkIntroduced(t, "Squeezing", Version{1, 6, 0})
	checkIntroduced(t, "Identity", Version{1, 7, 0})
	checkIntroduced(t, "EchoCrossResonance", Version{1, 8, 0})
	checkIntroduced(t, "QuantumRabi", Version{1, 9, 0})
	checkIntroduced(t, "GateDefinition", Version{1, 13, 0})
	checkIntroduced(t, "SqrtPauliY", Version{1, 15, 0})
	checkIntroduced(t, "ControlledSWAP", Version{1, 16, 0})
	checkIntroduced(t, "PragmaSimulationRepetitions", Version{1, 19, 0})
	checkIntroduced(t, "QFT", Version{1, 20, 0})
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkIntroduced(t *testing.T, name string, expected Version) {
	t.Helper()
	//
	proto, ok := Prototype(name)
	if !ok {
		t.Fatalf("%s: missing prototype", name)
	}
	//
	if v := proto.MinimumSupportedVersion(); v != expected {
		t.Errorf("%s: expected %s, got %s", name, expected, v)
	}
}

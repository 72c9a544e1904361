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
package binfile

import (
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/devices"
	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/measurement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryFileRoundTrip(t *testing.T) {
	program := sampleProgram()
	//
	file := NewBinaryFile([]byte("meta"), []Attribute{
		Provenance{Tool: "qir-compile", Version: "0.3.1"},
	}, program)
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	assert.True(t, IsBinaryFile(data))
	assert.False(t, IsCircuitFile(data))
	//
	var decoded BinaryFile
	require.NoError(t, decoded.UnmarshalBinary(data))
	//
	assert.Equal(t, []byte("meta"), decoded.Header.MetaData)
	assert.Equal(t, program.InputParameterNames, decoded.Program.InputParameterNames)
	//
	circuits := decoded.Program.Measurement.MeasurementCircuits()
	require.Len(t, circuits, 1)
	assert.Equal(t, "RotateZ", circuits[0].Get(1).HqslangName())
}

func TestBinaryFileMinorStamp(t *testing.T) {
	// The header records the oldest core able to read the payload, not the
	// writer's own version.
	old := NewBinaryFile(nil, nil, sampleProgram())
	assert.Equal(t, uint16(0), old.Header.MinorVersion)
	//
	newer := NewBinaryFile(nil, nil, measurement.NewQuantumProgram(
		measurement.ClassicalRegister{
			Circuits: []ir.Circuit{ir.NewCircuit(
				ir.Toffoli{Control0: 0, Control1: 1, Target: 2},
			)},
		}, nil))
	assert.Equal(t, uint16(3), newer.Header.MinorVersion)
}

func TestBinaryFileRejectsNewerMinor(t *testing.T) {
	file := NewBinaryFile(nil, nil, sampleProgram())
	file.Header.MinorVersion = uint16(ir.CurrentVersion.Minor) + 1
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	//
	var decoded BinaryFile
	assert.ErrorContains(t, decoded.UnmarshalBinary(data), "incompatible binary file")
}

func TestBinaryFileRejectsForeignIdentifier(t *testing.T) {
	file := NewBinaryFile(nil, nil, sampleProgram())
	file.Header.Identifier = [8]byte{'n', 'o', 't', 'a', 'f', 'i', 'l', 'e'}
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	assert.False(t, IsBinaryFile(data))
	//
	var decoded BinaryFile
	assert.ErrorContains(t, decoded.UnmarshalBinary(data), "incompatible binary file")
}

func TestBinaryFileTruncated(t *testing.T) {
	var decoded BinaryFile
	//
	assert.Error(t, decoded.UnmarshalBinary([]byte("qirb")))
	assert.False(t, IsBinaryFile(nil))
}

func TestGetAttribute(t *testing.T) {
	file := NewBinaryFile(nil, []Attribute{
		Provenance{Tool: "qir-compile", Version: "0.3.1"},
	}, sampleProgram())
	//
	prov := GetAttribute[Provenance](file)
	require.NotNil(t, prov)
	assert.Equal(t, "qir-compile", prov.Tool)
	//
	entries := prov.Entries().Collect()
	assert.Equal(t, []AttributeEntry{
		{Key: "tool", Value: "qir-compile"},
		{Key: "version", Value: "0.3.1"},
	}, entries)
	//
	empty := NewBinaryFile(nil, nil, sampleProgram())
	assert.Nil(t, GetAttribute[Provenance](empty))
}

func TestTargetDeviceAttribute(t *testing.T) {
	device := devices.NewSquareLatticeDevice(2, 3, []string{"RotateZ"}, []string{"CNOT"}, 1e-6)
	//
	file := NewBinaryFile(nil, []Attribute{
		TargetDevice{Name: "lattice-2x3", Device: device},
	}, sampleProgram())
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	//
	var decoded BinaryFile
	require.NoError(t, decoded.UnmarshalBinary(data))
	//
	target := GetAttribute[TargetDevice](&decoded)
	require.NotNil(t, target)
	assert.Equal(t, "lattice-2x3", target.Name)
	assert.Equal(t, uint64(6), target.Device.NumberQubits())
	//
	entries := target.Entries().Collect()
	assert.Equal(t, []AttributeEntry{
		{Key: "name", Value: "lattice-2x3"},
		{Key: "qubits", Value: "6"},
	}, entries)
	//
	_, ok := target.Device.TwoQubitGateTime("CNOT", 0, 1)
	assert.True(t, ok)
}

func TestCircuitFileRoundTrip(t *testing.T) {
	circuit := ir.NewCircuit(
		ir.Hadamard{Qubit: 0},
		ir.CNOT{Control: 0, Target: 1},
		ir.PragmaDamping{
			Qubit:    0,
			GateTime: calculator.Float(0.1),
			Rate:     calculator.Symbol("gamma"),
		},
	)
	//
	file := NewCircuitFile(nil, circuit)
	assert.Equal(t, uint16(0), file.Header.MinorVersion)
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	assert.True(t, IsCircuitFile(data))
	assert.False(t, IsBinaryFile(data))
	//
	var decoded CircuitFile
	require.NoError(t, decoded.UnmarshalBinary(data))
	//
	require.Equal(t, circuit.Len(), decoded.Circuit.Len())
	//
	for i := 0; i < circuit.Len(); i++ {
		assert.Equal(t, circuit.Get(i).HqslangName(), decoded.Circuit.Get(i).HqslangName())
	}
	//
	assert.True(t, decoded.Circuit.IsParametrized())
}

func TestCircuitFileRejectsNewerMinor(t *testing.T) {
	file := NewCircuitFile(nil, ir.NewCircuit(ir.PauliX{Qubit: 0}))
	file.Header.MinorVersion = uint16(ir.CurrentVersion.Minor) + 1
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	//
	var decoded CircuitFile
	assert.ErrorContains(t, decoded.UnmarshalBinary(data), "incompatible circuit file")
}

// ===================================================================
// Test Helpers
// ===================================================================

func sampleProgram() measurement.QuantumProgram {
	return measurement.NewQuantumProgram(measurement.ClassicalRegister{
		Circuits: []ir.Circuit{ir.NewCircuit(
			ir.DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
			ir.RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
			ir.MeasureQubit{Qubit: 0, Readout: "ro"},
		)},
	}, []string{"theta"})
}

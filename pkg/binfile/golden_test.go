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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/measurement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWireFormat(t *testing.T) {
	// The header layout is fixed: identifier, big-endian major and minor,
	// u32 metadata length, metadata bytes.
	header := Header{QIRBINARY, 1, 3, []byte("meta")}
	//
	data, err := header.MarshalBinary()
	require.NoError(t, err)
	//
	assert.Equal(t, []byte{
		'q', 'i', 'r', 'b', 'i', 'n', 'r', 'y',
		0x00, 0x01,
		0x00, 0x03,
		0x00, 0x00, 0x00, 0x04,
		'm', 'e', 't', 'a',
	}, data)
	//
	var decoded Header
	require.NoError(t, decoded.UnmarshalBinary(bytes.NewBuffer(data)))
	assert.Equal(t, header, decoded)
}

// TestBinaryFileGolden pins the wire bytes of a representative program file
// against testdata/program.bin, so accidental format changes fail loudly.
// The fixture is seeded from the current encoder on first run; once checked
// in, any byte drift is a compatibility break.
func TestBinaryFileGolden(t *testing.T) {
	file := goldenFile()
	//
	data, err := file.MarshalBinary()
	require.NoError(t, err)
	//
	golden := filepath.Join("testdata", "program.bin")
	//
	expected, err := os.ReadFile(golden)
	if errors.Is(err, os.ErrNotExist) {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(golden, data, 0644))
		//
		expected = data
	} else {
		require.NoError(t, err)
	}
	//
	assert.Equal(t, expected, data, "wire bytes drifted from the checked-in fixture")
	//
	// The fixture decodes back to the constructed program.
	var decoded BinaryFile
	require.NoError(t, decoded.UnmarshalBinary(expected))
	//
	assert.Equal(t, file.Header, decoded.Header)
	//
	prov := GetAttribute[Provenance](&decoded)
	require.NotNil(t, prov)
	assert.Equal(t, "qir-compile", prov.Tool)
	//
	original := file.Program.Measurement.MeasurementCircuits()[0]
	recovered := decoded.Program.Measurement.MeasurementCircuits()[0]
	//
	require.Equal(t, original.Len(), recovered.Len())
	assert.Equal(t, original.String(), recovered.String())
}

func TestBinaryFileGoldenReproducible(t *testing.T) {
	first, err := goldenFile().MarshalBinary()
	require.NoError(t, err)
	//
	for i := 0; i < 16; i++ {
		next, err := goldenFile().MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, first, next, "two encodings of the same file differ")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// goldenFile builds the fixture program: one operation per serialization
// class, with fixed contents.
func goldenFile() *BinaryFile {
	circuit := ir.NewCircuit(
		ir.DefinitionBit{Name: "ro", Length: 3, IsOutput: true},
		ir.Hadamard{Qubit: 0},
		ir.RotateZ{Qubit: 1, Theta: calculator.Float(0.25)},
		ir.RotateX{Qubit: 2, Theta: calculator.Symbol("theta")},
		ir.CNOT{Control: 0, Target: 1},
		ir.PragmaDamping{
			Qubit:    0,
			GateTime: calculator.Float(0.1),
			Rate:     calculator.Float(0.02),
		},
		ir.PragmaSetStateVector{Statevector: ir.ComplexVector{1, 0, 0, 1i}},
		ir.PragmaLoop{
			Repetitions: calculator.Float(3),
			Circuit:     ir.NewCircuit(ir.PauliX{Qubit: 2}),
		},
		ir.PragmaRepeatedMeasurement{
			Readout:            "ro",
			NumberMeasurements: 100,
			QubitMapping:       map[uint64]uint64{0: 2, 1: 0, 2: 1},
		},
	)
	//
	program := measurement.NewQuantumProgram(measurement.ClassicalRegister{
		Circuits: []ir.Circuit{circuit},
	}, []string{"theta"})
	//
	return NewBinaryFile([]byte("golden"), []Attribute{
		Provenance{Tool: "qir-compile", Version: "0.3.1"},
	}, program)
}

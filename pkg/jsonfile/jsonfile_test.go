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
package jsonfile

import (
	"fmt"
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/measurement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonFileRoundTrip(t *testing.T) {
	program := measurement.NewQuantumProgram(measurement.ClassicalRegister{
		Circuits: []ir.Circuit{ir.NewCircuit(
			ir.DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
			ir.RotateZ{Qubit: 0, Theta: calculator.Symbol("theta")},
			ir.MeasureQubit{Qubit: 0, Readout: "ro"},
		)},
	}, []string{"theta"})
	//
	file := NewJsonFile(map[string]string{"author": "qirlab"}, program)
	assert.Equal(t, Identifier, file.Identifier)
	assert.Equal(t, uint16(0), file.MinorVersion)
	//
	data, err := file.Marshal()
	require.NoError(t, err)
	//
	var decoded JsonFile
	require.NoError(t, decoded.Unmarshal(data))
	//
	assert.Equal(t, "qirlab", decoded.Metadata["author"])
	assert.Equal(t, []string{"theta"}, decoded.Program.InputParameterNames)
	//
	circuits := decoded.Program.Measurement.MeasurementCircuits()
	require.Len(t, circuits, 1)
	assert.Equal(t, "RotateZ", circuits[0].Get(1).HqslangName())
}

func TestJsonFileMinorStamp(t *testing.T) {
	file := NewJsonFile(nil, measurement.NewQuantumProgram(
		measurement.ClassicalRegister{
			Circuits: []ir.Circuit{ir.NewCircuit(
				ir.QFT{Qubits: []uint64{0, 1}, Swaps: true},
			)},
		}, nil))
	//
	assert.Equal(t, uint16(ir.CurrentVersion.Minor), file.MinorVersion)
}

func TestJsonFileRejectsNewerMinor(t *testing.T) {
	// The envelope check beats any payload error: the unknown variant inside
	// the program is never reached.
	data := fmt.Sprintf(
		`{"identifier":"qirjson","major_version":1,"minor_version":%d,`+
			`"program":{"measurement":{"ClassicalRegister":`+
			`{"circuits":[[{"FluxCapacitor":{"qubit":0}}]]}},`+
			`"input_parameter_names":[]}}`,
		ir.CurrentVersion.Minor+1)
	//
	var decoded JsonFile
	assert.ErrorContains(t, decoded.Unmarshal([]byte(data)), "incompatible json file")
}

func TestJsonFileRejectsForeignIdentifier(t *testing.T) {
	var decoded JsonFile
	//
	err := decoded.Unmarshal([]byte(`{"identifier":"notjson","major_version":1}`))
	assert.ErrorContains(t, err, "not a qirjson file")
}

func TestJsonFileRejectsMalformed(t *testing.T) {
	var decoded JsonFile
	//
	var serr *ir.SerializationError
	assert.ErrorAs(t, decoded.Unmarshal([]byte(`{"identifier":`)), &serr)
}

func TestSchemaForRotateZ(t *testing.T) {
	schema, ok := SchemaFor("RotateZ")
	require.True(t, ok)
	//
	assert.Equal(t, "RotateZ", schema.Name)
	assert.Equal(t, "1.0.0", schema.Introduced)
	assert.Equal(t, []SchemaField{
		{Name: "qubit", Type: "integer"},
		{Name: "theta", Type: "number|string"},
	}, schema.Fields)
}

func TestSchemaForNestedCircuit(t *testing.T) {
	schema, ok := SchemaFor("PragmaLoop")
	require.True(t, ok)
	//
	assert.Equal(t, []SchemaField{
		{Name: "repetitions", Type: "number|string"},
		{Name: "circuit", Type: "array<operation>"},
	}, schema.Fields)
}

func TestSchemaForUnknown(t *testing.T) {
	_, ok := SchemaFor("FluxCapacitor")
	assert.False(t, ok)
}

func TestSchemasComplete(t *testing.T) {
	schemas := Schemas()
	names := ir.AvailableOperations()
	//
	require.Len(t, schemas, len(names))
	//
	for i, schema := range schemas {
		assert.Equal(t, names[i], schema.Name)
		assert.NotEmpty(t, schema.Category)
	}
}

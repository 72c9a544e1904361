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
	"encoding/gob"
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/util/collection/iter"
)

// Circuit is an ordered sequence of operations.  The zero value is an empty
// circuit ready for use.  Transformations return new circuits and leave the
// receiver untouched.
type Circuit struct {
	operations []Operation
}

// NewCircuit constructs a circuit over the given operations.
func NewCircuit(operations ...Operation) Circuit {
	return Circuit{operations: operations}
}

// Add appends operations in order, preserving all existing ones.
func (p *Circuit) Add(operations ...Operation) {
	p.operations = append(p.operations, operations...)
}

// Concat returns a new circuit holding this circuit's operations followed by
// the other's.  Concatenation is associative and the empty circuit is its
// identity.
func (p Circuit) Concat(other Circuit) Circuit {
	operations := make([]Operation, 0, len(p.operations)+len(other.operations))
	operations = append(operations, p.operations...)
	operations = append(operations, other.operations...)
	//
	return Circuit{operations: operations}
}

// Len returns the number of operations in this circuit.
func (p Circuit) Len() int {
	return len(p.operations)
}

// Get returns the operation at the given position.
func (p Circuit) Get(index int) Operation {
	return p.operations[index]
}

// Iter returns an iterator over the operations in order.
func (p Circuit) Iter() iter.Iterator[Operation] {
	return iter.NewArrayIterator(p.operations)
}

// Operations returns the underlying slice; callers must not mutate it.
func (p Circuit) Operations() []Operation {
	return p.operations
}

// InvolvedQubits returns the union of the involved-qubit sets of all
// operations.  Any globally-acting operation makes the result universal.
func (p Circuit) InvolvedQubits() QubitSet {
	indices := bitset.New(64)
	//
	for _, op := range p.operations {
		involved := op.InvolvedQubits()
		//
		if involved.IsAll() {
			return AllQubits()
		}
		//
		for _, q := range involved.Qubits() {
			indices.Set(uint(q))
		}
	}
	//
	qubits := make([]uint64, 0, indices.Count())
	//
	for q, ok := indices.NextSet(0); ok; q, ok = indices.NextSet(q + 1) {
		qubits = append(qubits, uint64(q))
	}
	//
	return QubitsOf(qubits...)
}

// IsParametrized reports whether any operation still holds a symbolic
// parameter.
func (p Circuit) IsParametrized() bool {
	for _, op := range p.operations {
		if op.IsParametrized() {
			return true
		}
	}
	//
	return false
}

// SubstituteParameters returns a copy of this circuit with all symbolic
// parameters resolved against the given bindings.  On failure the returned
// SubstitutionError carries the position of the offending operation.
func (p Circuit) SubstituteParameters(bindings calculator.Bindings) (Circuit, error) {
	operations := make([]Operation, len(p.operations))
	//
	for i, op := range p.operations {
		substituted, err := op.SubstituteParameters(bindings)
		//
		if err != nil {
			var serr *SubstitutionError
			if errors.As(err, &serr) && serr.Index < 0 {
				serr.Index = i
			}
			//
			return Circuit{}, err
		}
		//
		operations[i] = substituted
	}
	//
	return Circuit{operations: operations}, nil
}

// RemapQubits returns a copy of this circuit with all qubit indices rewritten
// according to the given mapping.  On failure the returned RemapError carries
// the position of the offending operation.
func (p Circuit) RemapQubits(mapping QubitMapping) (Circuit, error) {
	operations := make([]Operation, len(p.operations))
	//
	for i, op := range p.operations {
		remapped, err := op.RemapQubits(mapping)
		//
		if err != nil {
			var rerr *RemapError
			if errors.As(err, &rerr) && rerr.Index < 0 {
				rerr.Index = i
			}
			//
			return Circuit{}, err
		}
		//
		operations[i] = remapped
	}
	//
	return Circuit{operations: operations}, nil
}

// MinimumSupportedVersion returns the oldest core version able to deserialize
// every operation in this circuit.
func (p Circuit) MinimumSupportedVersion() Version {
	min := Version{Major: 1, Minor: 0, Patch: 0}
	//
	for _, op := range p.operations {
		min = min.Max(op.MinimumSupportedVersion())
	}
	//
	return min
}

// GobEncode encodes the operation sequence.  Every variant is registered
// with gob under its hqslang name, so interface values round-trip.
func (p Circuit) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	encoder := gob.NewEncoder(&buffer)
	//
	if err := encoder.Encode(p.operations); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

// GobDecode decodes an operation sequence produced by GobEncode.
func (p *Circuit) GobDecode(data []byte) error {
	decoder := gob.NewDecoder(bytes.NewReader(data))
	//
	return decoder.Decode(&p.operations)
}

// MarshalJSON encodes the circuit as an array of externally-tagged operation
// objects.
func (p Circuit) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	//
	buffer.WriteByte('[')
	//
	for i, op := range p.operations {
		if i != 0 {
			buffer.WriteByte(',')
		}
		//
		data, err := MarshalOperation(op)
		if err != nil {
			return nil, err
		}
		//
		buffer.Write(data)
	}
	//
	buffer.WriteByte(']')
	//
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes an array of externally-tagged operation objects.
func (p *Circuit) UnmarshalJSON(data []byte) error {
	items, err := splitJSONArray(data)
	if err != nil {
		return err
	}
	//
	operations := make([]Operation, len(items))
	//
	for i, item := range items {
		if operations[i], err = UnmarshalOperation(item); err != nil {
			return err
		}
	}
	//
	p.operations = operations
	//
	return nil
}

func (p Circuit) String() string {
	var builder strings.Builder
	//
	for _, op := range p.operations {
		fmt.Fprintf(&builder, "%s%+v\n", op.HqslangName(), op)
	}
	//
	return builder.String()
}

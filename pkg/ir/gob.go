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
	"cmp"
	"encoding/gob"
	"slices"
)

// Custom gob codecs for the operations carrying qubit-keyed maps.  Gob
// serializes maps in iteration order, which is randomized; encoding the same
// circuit must always produce the same bytes, so these codecs emit map
// entries sorted by key.

// qubitPair is one entry of a qubit-keyed map in canonical order.
type qubitPair struct {
	Key   uint64
	Value uint64
}

func sortedQubitPairs(m map[uint64]uint64) []qubitPair {
	pairs := make([]qubitPair, 0, len(m))
	//
	for k, v := range m {
		pairs = append(pairs, qubitPair{Key: k, Value: v})
	}
	//
	slices.SortFunc(pairs, func(a, b qubitPair) int { return cmp.Compare(a.Key, b.Key) })
	//
	return pairs
}

func qubitPairMap(pairs []qubitPair) map[uint64]uint64 {
	if len(pairs) == 0 {
		return nil
	}
	//
	m := make(map[uint64]uint64, len(pairs))
	//
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	//
	return m
}

type pragmaRepeatedMeasurementSurface struct {
	Readout            string
	NumberMeasurements uint64
	QubitMapping       []qubitPair
}

// GobEncode encodes the pragma with its qubit mapping in sorted-key order.
func (p PragmaRepeatedMeasurement) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(pragmaRepeatedMeasurementSurface{
		Readout:            p.Readout,
		NumberMeasurements: p.NumberMeasurements,
		QubitMapping:       sortedQubitPairs(p.QubitMapping),
	})
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this pragma from the encoding produced by GobEncode.
func (p *PragmaRepeatedMeasurement) GobDecode(data []byte) error {
	var surface pragmaRepeatedMeasurementSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.Readout = surface.Readout
	p.NumberMeasurements = surface.NumberMeasurements
	p.QubitMapping = qubitPairMap(surface.QubitMapping)
	//
	return nil
}

type pragmaGetPauliProductSurface struct {
	QubitPaulis []qubitPair
	Readout     string
	Circuit     Circuit
}

// GobEncode encodes the pragma with its qubit-pauli map in sorted-key order.
func (p PragmaGetPauliProduct) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(pragmaGetPauliProductSurface{
		QubitPaulis: sortedQubitPairs(p.QubitPaulis),
		Readout:     p.Readout,
		Circuit:     p.Circuit,
	})
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this pragma from the encoding produced by GobEncode.
func (p *PragmaGetPauliProduct) GobDecode(data []byte) error {
	var surface pragmaGetPauliProductSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.QubitPaulis = qubitPairMap(surface.QubitPaulis)
	p.Readout = surface.Readout
	p.Circuit = surface.Circuit
	//
	return nil
}

type pragmaStartDecompositionBlockSurface struct {
	Qubits               []uint64
	ReorderingDictionary []qubitPair
}

// GobEncode encodes the pragma with its reordering dictionary in sorted-key
// order.
func (p PragmaStartDecompositionBlock) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(pragmaStartDecompositionBlockSurface{
		Qubits:               p.Qubits,
		ReorderingDictionary: sortedQubitPairs(p.ReorderingDictionary),
	})
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this pragma from the encoding produced by GobEncode.
func (p *PragmaStartDecompositionBlock) GobDecode(data []byte) error {
	var surface pragmaStartDecompositionBlockSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.Qubits = surface.Qubits
	p.ReorderingDictionary = qubitPairMap(surface.ReorderingDictionary)
	//
	return nil
}

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
package devices

import (
	"bytes"
	"encoding/gob"
)

// AllToAllDevice declares a device on which every qubit pair is connected
// and every listed gate runs anywhere, with a uniform default gate time.
type AllToAllDevice struct {
	numberQubits    uint64
	singleQubitGate map[string]float64
	twoQubitGate    map[string]float64
	defaultGateTime float64
}

// NewAllToAllDevice constructs a fully-connected device supporting the given
// single- and two-qubit gate names at the default gate time.
func NewAllToAllDevice(
	numberQubits uint64, singleQubitGates, twoQubitGates []string, defaultGateTime float64,
) *AllToAllDevice {
	device := &AllToAllDevice{
		numberQubits:    numberQubits,
		singleQubitGate: make(map[string]float64, len(singleQubitGates)),
		twoQubitGate:    make(map[string]float64, len(twoQubitGates)),
		defaultGateTime: defaultGateTime,
	}
	//
	for _, g := range singleQubitGates {
		device.singleQubitGate[g] = defaultGateTime
	}
	//
	for _, g := range twoQubitGates {
		device.twoQubitGate[g] = defaultGateTime
	}
	//
	return device
}

// SetSingleQubitGateTime overrides the execution time of one single-qubit
// gate, adding it to the gate set if absent.
func (p *AllToAllDevice) SetSingleQubitGateTime(hqslang string, gateTime float64) {
	p.singleQubitGate[hqslang] = gateTime
}

// SetTwoQubitGateTime overrides the execution time of one two-qubit gate,
// adding it to the gate set if absent.
func (p *AllToAllDevice) SetTwoQubitGateTime(hqslang string, gateTime float64) {
	p.twoQubitGate[hqslang] = gateTime
}

// NumberQubits returns how many qubits the device exposes.
func (p *AllToAllDevice) NumberQubits() uint64 {
	return p.numberQubits
}

// SingleQubitGateTime returns the execution time of the named gate on the
// given qubit, or false when the device cannot run it there.
func (p *AllToAllDevice) SingleQubitGateTime(hqslang string, qubit uint64) (float64, bool) {
	if qubit >= p.numberQubits {
		return 0, false
	}
	//
	t, ok := p.singleQubitGate[hqslang]
	//
	return t, ok
}

// TwoQubitGateTime returns the execution time of the named gate on the given
// qubit pair, or false when the device cannot run it there.
func (p *AllToAllDevice) TwoQubitGateTime(hqslang string, control, target uint64) (float64, bool) {
	if control >= p.numberQubits || target >= p.numberQubits || control == target {
		return 0, false
	}
	//
	t, ok := p.twoQubitGate[hqslang]
	//
	return t, ok
}

// allToAllSurface is the wire form of AllToAllDevice, used by the gob codec
// below so devices can travel inside binary file attributes.
type allToAllSurface struct {
	NumberQubits    uint64
	SingleQubitGate map[string]float64
	TwoQubitGate    map[string]float64
	DefaultGateTime float64
}

// GobEncode encodes the device declaration.
func (p *AllToAllDevice) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(allToAllSurface{
		NumberQubits:    p.numberQubits,
		SingleQubitGate: p.singleQubitGate,
		TwoQubitGate:    p.twoQubitGate,
		DefaultGateTime: p.defaultGateTime,
	})
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this device from the encoding produced by GobEncode.
func (p *AllToAllDevice) GobDecode(data []byte) error {
	var surface allToAllSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.numberQubits = surface.NumberQubits
	p.singleQubitGate = surface.SingleQubitGate
	p.twoQubitGate = surface.TwoQubitGate
	p.defaultGateTime = surface.DefaultGateTime
	//
	return nil
}

// TwoQubitEdges returns every ordered-low-to-high qubit pair.
func (p *AllToAllDevice) TwoQubitEdges() [][2]uint64 {
	var edges [][2]uint64
	//
	for i := uint64(0); i < p.numberQubits; i++ {
		for j := i + 1; j < p.numberQubits; j++ {
			edges = append(edges, [2]uint64{i, j})
		}
	}
	//
	return edges
}

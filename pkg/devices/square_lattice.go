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

// SquareLatticeDevice declares a device whose qubits sit on a rectangular
// grid with nearest-neighbour two-qubit connectivity.  Qubit i lives at row
// i/columns, column i%columns.
type SquareLatticeDevice struct {
	rows            uint64
	columns         uint64
	singleQubitGate map[string]float64
	twoQubitGate    map[string]float64
}

// NewSquareLatticeDevice constructs a rows-by-columns lattice supporting the
// given single- and two-qubit gate names at the default gate time.
func NewSquareLatticeDevice(
	rows, columns uint64, singleQubitGates, twoQubitGates []string, defaultGateTime float64,
) *SquareLatticeDevice {
	device := &SquareLatticeDevice{
		rows:            rows,
		columns:         columns,
		singleQubitGate: make(map[string]float64, len(singleQubitGates)),
		twoQubitGate:    make(map[string]float64, len(twoQubitGates)),
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

// NumberRows returns the number of lattice rows.
func (p *SquareLatticeDevice) NumberRows() uint64 { return p.rows }

// NumberColumns returns the number of lattice columns.
func (p *SquareLatticeDevice) NumberColumns() uint64 { return p.columns }

// NumberQubits returns how many qubits the device exposes.
func (p *SquareLatticeDevice) NumberQubits() uint64 {
	return p.rows * p.columns
}

// SingleQubitGateTime returns the execution time of the named gate on the
// given qubit, or false when the device cannot run it there.
func (p *SquareLatticeDevice) SingleQubitGateTime(hqslang string, qubit uint64) (float64, bool) {
	if qubit >= p.NumberQubits() {
		return 0, false
	}
	//
	t, ok := p.singleQubitGate[hqslang]
	//
	return t, ok
}

// TwoQubitGateTime returns the execution time of the named gate on the given
// qubit pair, or false unless the qubits are lattice neighbours.
func (p *SquareLatticeDevice) TwoQubitGateTime(hqslang string, control, target uint64) (float64, bool) {
	if !p.neighbours(control, target) {
		return 0, false
	}
	//
	t, ok := p.twoQubitGate[hqslang]
	//
	return t, ok
}

// neighbours reports whether two qubits are horizontally or vertically
// adjacent on the lattice.
func (p *SquareLatticeDevice) neighbours(a, b uint64) bool {
	n := p.NumberQubits()
	//
	if a >= n || b >= n || a == b {
		return false
	}
	//
	rowA, colA := a/p.columns, a%p.columns
	rowB, colB := b/p.columns, b%p.columns
	//
	if rowA == rowB {
		return colA+1 == colB || colB+1 == colA
	} else if colA == colB {
		return rowA+1 == rowB || rowB+1 == rowA
	}
	//
	return false
}

// squareLatticeSurface is the wire form of SquareLatticeDevice, used by the
// gob codec below so devices can travel inside binary file attributes.
type squareLatticeSurface struct {
	Rows            uint64
	Columns         uint64
	SingleQubitGate map[string]float64
	TwoQubitGate    map[string]float64
}

// GobEncode encodes the device declaration.
func (p *SquareLatticeDevice) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(squareLatticeSurface{
		Rows:            p.rows,
		Columns:         p.columns,
		SingleQubitGate: p.singleQubitGate,
		TwoQubitGate:    p.twoQubitGate,
	})
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this device from the encoding produced by GobEncode.
func (p *SquareLatticeDevice) GobDecode(data []byte) error {
	var surface squareLatticeSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.rows = surface.Rows
	p.columns = surface.Columns
	p.singleQubitGate = surface.SingleQubitGate
	p.twoQubitGate = surface.TwoQubitGate
	//
	return nil
}

// TwoQubitEdges returns the nearest-neighbour qubit pairs of the lattice.
func (p *SquareLatticeDevice) TwoQubitEdges() [][2]uint64 {
	var edges [][2]uint64
	//
	for row := uint64(0); row < p.rows; row++ {
		for col := uint64(0); col < p.columns; col++ {
			q := row*p.columns + col
			//
			if col+1 < p.columns {
				edges = append(edges, [2]uint64{q, q + 1})
			}
			//
			if row+1 < p.rows {
				edges = append(edges, [2]uint64{q, q + p.columns})
			}
		}
	}
	//
	return edges
}

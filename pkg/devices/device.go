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

// Package devices declares hardware gate sets and topologies, letting
// callers check whether a circuit's operations are natively executable
// before submission.
package devices

import (
	"github.com/qirlab/go-qir/pkg/ir"
)

// Device declares the gate set and connectivity of one quantum device.
type Device interface {
	// NumberQubits returns how many qubits the device exposes.
	NumberQubits() uint64

	// SingleQubitGateTime returns the execution time of the named gate on
	// the given qubit, or false when the device cannot run it there.
	SingleQubitGateTime(hqslang string, qubit uint64) (float64, bool)

	// TwoQubitGateTime returns the execution time of the named gate on the
	// given qubit pair, or false when the device cannot run it there.
	TwoQubitGateTime(hqslang string, control, target uint64) (float64, bool)

	// TwoQubitEdges returns the qubit pairs with native two-qubit
	// connectivity.
	TwoQubitEdges() [][2]uint64
}

// SupportsOperation reports whether a device can natively execute the given
// operation.  Non-gate operations (pragmas, definitions, measurements) are
// always supported; gates are checked against the device's declared gate
// set and connectivity.
func SupportsOperation(device Device, op ir.Operation) bool {
	if _, ok := op.(ir.GateOperation); !ok {
		return true
	}
	//
	involved := op.InvolvedQubits()
	//
	if involved.IsAll() {
		return false
	}
	//
	switch qubits := involved.Qubits(); len(qubits) {
	case 1:
		_, ok := device.SingleQubitGateTime(op.HqslangName(), qubits[0])
		return ok
	case 2:
		if _, ok := device.TwoQubitGateTime(op.HqslangName(), qubits[0], qubits[1]); ok {
			return ok
		}
		// Gate times are declared per ordered pair; involvement is not.
		_, ok := device.TwoQubitGateTime(op.HqslangName(), qubits[1], qubits[0])
		//
		return ok
	default:
		return false
	}
}

// SupportsCircuit reports whether every operation of a circuit is natively
// executable, returning the position of the first unsupported operation
// otherwise.
func SupportsCircuit(device Device, circuit ir.Circuit) (int, bool) {
	for i, op := range circuit.Operations() {
		if !SupportsOperation(device, op) {
			return i, false
		}
	}
	//
	return -1, true
}

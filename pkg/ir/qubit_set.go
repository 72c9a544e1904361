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
	"fmt"
	"strings"

	"github.com/qirlab/go-qir/pkg/util/collection/set"
)

// QubitSet identifies the qubits an operation (or circuit) reads or writes.
// It is either the universal set, reserved for global directives such as
// state-vector injection, or an explicit (possibly empty) set of indices.
type QubitSet struct {
	all    bool
	qubits set.SortedSet[uint64]
}

// AllQubits returns the universal qubit set.
func AllQubits() QubitSet {
	return QubitSet{all: true}
}

// NoQubits returns the empty qubit set, used by operations which touch no
// qubit at all (e.g. register definitions).
func NoQubits() QubitSet {
	return QubitSet{}
}

// QubitsOf returns an explicit qubit set over the given indices.  Duplicates
// are coalesced and ordering is normalised.
func QubitsOf(qubits ...uint64) QubitSet {
	return QubitSet{qubits: *set.SortedSetOf(qubits...)}
}

// IsAll reports whether this is the universal set.
func (p QubitSet) IsAll() bool {
	return p.all
}

// IsEmpty reports whether no qubit is involved.
func (p QubitSet) IsEmpty() bool {
	return !p.all && p.qubits.Len() == 0
}

// Contains reports membership; the universal set contains every index.
func (p QubitSet) Contains(qubit uint64) bool {
	return p.all || p.qubits.Contains(qubit)
}

// Qubits returns the explicit indices in ascending order.  It panics on the
// universal set, which has no explicit enumeration.
func (p QubitSet) Qubits() []uint64 {
	if p.all {
		panic("universal qubit set cannot be enumerated")
	}
	//
	return p.qubits.Slice()
}

// Len returns the cardinality of an explicit set, or -1 for the universal
// set.
func (p QubitSet) Len() int {
	if p.all {
		return -1
	}
	//
	return p.qubits.Len()
}

// Union combines two qubit sets.  Any universal operand makes the result
// universal.
func (p QubitSet) Union(q QubitSet) QubitSet {
	if p.all || q.all {
		return AllQubits()
	}
	//
	return QubitSet{qubits: *p.qubits.Union(&q.qubits)}
}

func (p QubitSet) String() string {
	if p.all {
		return "All"
	} else if p.qubits.Len() == 0 {
		return "None"
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, q := range p.qubits {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "%d", q)
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

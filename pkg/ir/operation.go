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

// Package ir defines the intermediate representation of quantum circuits: a
// closed (but growing) set of operation variants, each implementing a uniform
// capability set, assembled into ordered circuits.  Every variant is a value
// type; transformations (parameter substitution, qubit remapping) return new
// values and never mutate their receiver.
package ir

import (
	"github.com/qirlab/go-qir/pkg/calculator"
)

// Operation is the capability set implemented uniformly by every variant of
// the operation algebra.  The variant set is closed: all implementations live
// in this package and are enumerated in the operation registry.
type Operation interface {
	// Tags returns the fixed, variant-specific tag hierarchy, ordered coarse
	// to fine (e.g. ["Operation","GateOperation","SingleQubitGateOperation",
	// "RotateZ"]).  Tags support runtime type tests without downcasting.
	Tags() []string

	// HqslangName returns the stable string identifier of this variant, used
	// for wire-format discrimination and device gate-set matching.  The name
	// never changes once a variant has been released.
	HqslangName() string

	// InvolvedQubits returns the exact set of qubit indices this operation
	// reads or writes.  The universal set is reserved for truly global
	// directives.
	InvolvedQubits() QubitSet

	// IsParametrized reports whether any contained calculator value is still
	// symbolic, recursing into nested circuits where present.
	IsParametrized() bool

	// SubstituteParameters returns a copy of this operation with every
	// symbolic calculator value resolved against the given bindings.  It
	// fails with a SubstitutionError when a referenced symbol is unbound.
	// Non-parametrized operations return themselves unchanged.
	SubstituteParameters(bindings calculator.Bindings) (Operation, error)

	// RemapQubits returns a copy of this operation with every qubit index
	// rewritten according to the given mapping.  The mapping must be total
	// over the involved-qubit set; a missing entry fails with a RemapError.
	RemapQubits(mapping QubitMapping) (Operation, error)

	// MinimumSupportedVersion returns the oldest core version able to
	// deserialize this operation.  For wrapper and control-flow variants
	// this recurses into the nested payload.
	MinimumSupportedVersion() Version
}

// GateOperation is implemented by every unitary gate variant, distinguishing
// real quantum gates from pragmas and definitions during device-compatibility
// checks.
type GateOperation interface {
	Operation

	// Unitary is a marker method; it carries no behaviour.
	Unitary()
}

// NoisePragmaOperation is implemented by noise pragmas with a well-defined
// error probability.
type NoisePragmaOperation interface {
	Operation

	// Probability returns the probability that the noise affects the qubit,
	// derived from the gate time and rate(s).  The result may itself be
	// symbolic when time or rate are.
	Probability() calculator.Value

	// Superoperator returns the 4x4 superoperator acting on the vectorised
	// density matrix.  It fails when time or rate are symbolic, or when they
	// put the analytic formula outside its domain (e.g. a negative
	// probability).
	Superoperator() (FloatMatrix, error)
}

// ModeOperation is implemented by variants touching bosonic modes.
type ModeOperation interface {
	Operation

	// InvolvedModes returns the exact set of bosonic mode indices touched.
	InvolvedModes() []uint64
}

// QubitMapping assigns new indices to qubits during remapping.  Remapping an
// operation requires the mapping to be total over its involved-qubit set.
type QubitMapping map[uint64]uint64

// Apply maps a single qubit index, failing if the index has no entry.
func (m QubitMapping) Apply(qubit uint64) (uint64, error) {
	if to, ok := m[qubit]; ok {
		return to, nil
	}
	//
	return 0, &RemapError{Qubit: qubit, Index: -1}
}

// applyAll maps a list of qubit indices, preserving order.
func (m QubitMapping) applyAll(qubits []uint64) ([]uint64, error) {
	remapped := make([]uint64, len(qubits))
	//
	for i, q := range qubits {
		to, err := m.Apply(q)
		if err != nil {
			return nil, err
		}
		//
		remapped[i] = to
	}
	//
	return remapped, nil
}

// apply2 maps a pair of qubit indices.
func (m QubitMapping) apply2(a, b uint64) (uint64, uint64, error) {
	ra, err := m.Apply(a)
	if err != nil {
		return 0, 0, err
	}
	//
	rb, err := m.Apply(b)
	//
	return ra, rb, err
}

// apply3 maps a triple of qubit indices.
func (m QubitMapping) apply3(a, b, c uint64) (uint64, uint64, uint64, error) {
	ra, rb, err := m.apply2(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	//
	rc, err := m.Apply(c)
	//
	return ra, rb, rc, err
}

// substituteAll resolves a list of calculator values in place order, failing
// on the first unbound symbol.
func substituteAll(bindings calculator.Bindings, values ...*calculator.Value) error {
	for _, v := range values {
		sub, err := v.Substitute(bindings)
		if err != nil {
			return &SubstitutionError{Cause: err, Index: -1}
		}
		//
		*v = sub
	}
	//
	return nil
}

// anySymbolic reports whether any of the given values is still symbolic.
func anySymbolic(values ...calculator.Value) bool {
	for _, v := range values {
		if v.IsSymbolic() {
			return true
		}
	}
	//
	return false
}

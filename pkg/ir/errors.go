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

import "fmt"

// SubstitutionError signals that parameter substitution referenced a symbol
// with no binding.  The underlying calculator error is preserved as Cause.
type SubstitutionError struct {
	// Cause is the underlying evaluation failure.
	Cause error
	// Index is the position of the failing operation when substitution was
	// applied across a circuit, and -1 otherwise.
	Index int
}

func (e *SubstitutionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("substituting parameters of operation %d: %v", e.Index, e.Cause)
	}
	//
	return fmt.Sprintf("substituting parameters: %v", e.Cause)
}

func (e *SubstitutionError) Unwrap() error {
	return e.Cause
}

// RemapError signals that a qubit mapping was not total over an operation's
// involved-qubit set.
type RemapError struct {
	// Qubit is the involved index missing from the mapping.
	Qubit uint64
	// Index is the position of the failing operation when remapping was
	// applied across a circuit, and -1 otherwise.
	Index int
}

func (e *RemapError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("remapping operation %d: qubit %d has no mapping entry", e.Index, e.Qubit)
	}
	//
	return fmt.Sprintf("qubit %d has no mapping entry", e.Qubit)
}

// SerializationError signals a malformed or truncated byte stream, or a
// discriminant tag unknown to this core version.  Decoding always aborts the
// whole structure; there is no partial reconstruction.
type SerializationError struct {
	// Reason describes the failure.
	Reason string
	// Cause is the underlying codec error, if any.
	Cause error
}

func (e *SerializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	//
	return e.Reason
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// VersionError signals a reference to an operation variant unknown to this
// core version.
type VersionError struct {
	// Name is the unrecognised hqslang name.
	Name string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("operation %q is not known to core version %s", e.Name, CurrentVersion)
}

// ShapeError signals a numeric payload with inconsistent dimensions, caught
// at construction time.
type ShapeError struct {
	// Expected describes the required shape.
	Expected string
	// Actual describes the offending shape.
	Actual string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("inconsistent shape: expected %s but got %s", e.Expected, e.Actual)
}

// DomainError signals numeric inputs outside the domain of an analytic
// formula (e.g. a noise rate and gate time combination producing a negative
// probability), or an attempt to evaluate such a formula symbolically.
type DomainError struct {
	// Reason describes the violation.
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

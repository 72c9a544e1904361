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
	"github.com/qirlab/go-qir/pkg/calculator"
)

// Definitions declare the classical registers measurement results are written
// into.  They involve no qubits, carry no symbolic parameters, and are inert
// under remapping and substitution.

// DefinitionBit declares a classical bit register.
type DefinitionBit struct {
	Name     string `json:"name"`
	Length   uint64 `json:"length"`
	IsOutput bool   `json:"is_output"`
}

func (p DefinitionBit) Tags() []string           { return tagsDefinition("DefinitionBit") }
func (p DefinitionBit) HqslangName() string      { return "DefinitionBit" }
func (p DefinitionBit) InvolvedQubits() QubitSet { return NoQubits() }
func (p DefinitionBit) IsParametrized() bool     { return false }

func (p DefinitionBit) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p DefinitionBit) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p DefinitionBit) MinimumSupportedVersion() Version { return introducedVersion("DefinitionBit") }

// DefinitionFloat declares a classical float register.
type DefinitionFloat struct {
	Name     string `json:"name"`
	Length   uint64 `json:"length"`
	IsOutput bool   `json:"is_output"`
}

func (p DefinitionFloat) Tags() []string           { return tagsDefinition("DefinitionFloat") }
func (p DefinitionFloat) HqslangName() string      { return "DefinitionFloat" }
func (p DefinitionFloat) InvolvedQubits() QubitSet { return NoQubits() }
func (p DefinitionFloat) IsParametrized() bool     { return false }

func (p DefinitionFloat) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p DefinitionFloat) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p DefinitionFloat) MinimumSupportedVersion() Version {
	return introducedVersion("DefinitionFloat")
}

// DefinitionComplex declares a classical complex register.
type DefinitionComplex struct {
	Name     string `json:"name"`
	Length   uint64 `json:"length"`
	IsOutput bool   `json:"is_output"`
}

func (p DefinitionComplex) Tags() []string           { return tagsDefinition("DefinitionComplex") }
func (p DefinitionComplex) HqslangName() string      { return "DefinitionComplex" }
func (p DefinitionComplex) InvolvedQubits() QubitSet { return NoQubits() }
func (p DefinitionComplex) IsParametrized() bool     { return false }

func (p DefinitionComplex) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p DefinitionComplex) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p DefinitionComplex) MinimumSupportedVersion() Version {
	return introducedVersion("DefinitionComplex")
}

// DefinitionUsize declares a classical unsigned integer register.
type DefinitionUsize struct {
	Name     string `json:"name"`
	Length   uint64 `json:"length"`
	IsOutput bool   `json:"is_output"`
}

func (p DefinitionUsize) Tags() []string           { return tagsDefinition("DefinitionUsize") }
func (p DefinitionUsize) HqslangName() string      { return "DefinitionUsize" }
func (p DefinitionUsize) InvolvedQubits() QubitSet { return NoQubits() }
func (p DefinitionUsize) IsParametrized() bool     { return false }

func (p DefinitionUsize) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p DefinitionUsize) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p DefinitionUsize) MinimumSupportedVersion() Version {
	return introducedVersion("DefinitionUsize")
}

// InputSymbolic declares a floating point input replacing a symbolic
// parameter of the same name.
type InputSymbolic struct {
	Name  string  `json:"name"`
	Input float64 `json:"input"`
}

func (p InputSymbolic) Tags() []string           { return tagsDefinition("InputSymbolic") }
func (p InputSymbolic) HqslangName() string      { return "InputSymbolic" }
func (p InputSymbolic) InvolvedQubits() QubitSet { return NoQubits() }
func (p InputSymbolic) IsParametrized() bool     { return false }

func (p InputSymbolic) SubstituteParameters(calculator.Bindings) (Operation, error) {
	return p, nil
}

func (p InputSymbolic) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p InputSymbolic) MinimumSupportedVersion() Version { return introducedVersion("InputSymbolic") }

// InputBit sets a single bit of an existing bit register to a fixed value.
type InputBit struct {
	Name  string `json:"name"`
	Index uint64 `json:"index"`
	Value bool   `json:"value"`
}

func (p InputBit) Tags() []string           { return tagsDefinition("InputBit") }
func (p InputBit) HqslangName() string      { return "InputBit" }
func (p InputBit) InvolvedQubits() QubitSet { return NoQubits() }
func (p InputBit) IsParametrized() bool     { return false }

func (p InputBit) SubstituteParameters(calculator.Bindings) (Operation, error) { return p, nil }

func (p InputBit) RemapQubits(QubitMapping) (Operation, error) { return p, nil }

func (p InputBit) MinimumSupportedVersion() Version { return introducedVersion("InputBit") }

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

// Tag hierarchies are fixed per variant and ordered coarse to fine.  Every
// hierarchy starts with "Operation"; the final entry is always the variant's
// hqslang name.  These helpers construct the chains for the standard
// categories.

func tagsSingleQubitGate(name string) []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", name}
}

func tagsRotation(name string) []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", name}
}

func tagsTwoQubitGate(name string) []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", name}
}

func tagsThreeQubitGate(name string) []string {
	return []string{"Operation", "GateOperation", "ThreeQubitGateOperation", name}
}

func tagsFourQubitGate(name string) []string {
	return []string{"Operation", "GateOperation", "FourQubitGateOperation", name}
}

func tagsMultiQubitGate(name string) []string {
	return []string{"Operation", "GateOperation", "MultiQubitGateOperation", name}
}

func tagsDefinition(name string) []string {
	return []string{"Operation", "Definition", name}
}

func tagsMeasurement(name string) []string {
	return []string{"Operation", "Measurement", name}
}

func tagsPragma(name string) []string {
	return []string{"Operation", "PragmaOperation", name}
}

func tagsNoisePragma(name string) []string {
	return []string{"Operation", "PragmaOperation", "PragmaNoiseOperation", name}
}

func tagsNoiseProbaPragma(name string) []string {
	return []string{"Operation", "PragmaOperation", "PragmaNoiseOperation", "PragmaNoiseProbaOperation", name}
}

func tagsSingleModeGate(name string) []string {
	return []string{"Operation", "ModeGateOperation", "SingleModeGateOperation", name}
}

func tagsTwoModeGate(name string) []string {
	return []string{"Operation", "ModeGateOperation", "TwoModeGateOperation", name}
}

func tagsSpinBosonGate(name string) []string {
	return []string{"Operation", "GateOperation", "SpinBosonGateOperation", name}
}

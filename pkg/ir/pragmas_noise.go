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
	"math"

	"github.com/qirlab/go-qir/pkg/calculator"
)

// noiseParams extracts gate time and rate as concrete floats, failing with a
// DomainError when either is still symbolic or negative.
func noiseParams(gateTime, rate calculator.Value) (t float64, r float64, err error) {
	if t, err = gateTime.Float64(); err != nil {
		return 0, 0, &DomainError{Reason: "noise gate time is symbolic"}
	}
	//
	if r, err = rate.Float64(); err != nil {
		return 0, 0, &DomainError{Reason: "noise rate is symbolic"}
	}
	//
	if t < 0 || r < 0 {
		return 0, 0, &DomainError{Reason: "noise gate time and rate must be non-negative"}
	}
	//
	return t, r, nil
}

// PragmaDamping applies amplitude damping noise to a qubit, modelling energy
// relaxation towards the ground state over the gate time.
type PragmaDamping struct {
	Qubit    uint64           `json:"qubit"`
	GateTime calculator.Value `json:"gate_time"`
	Rate     calculator.Value `json:"rate"`
}

func (p PragmaDamping) Tags() []string           { return tagsNoiseProbaPragma("PragmaDamping") }
func (p PragmaDamping) HqslangName() string      { return "PragmaDamping" }
func (p PragmaDamping) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PragmaDamping) IsParametrized() bool     { return anySymbolic(p.GateTime, p.Rate) }

func (p PragmaDamping) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.GateTime, &p.Rate); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaDamping) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaDamping) MinimumSupportedVersion() Version { return introducedVersion("PragmaDamping") }

// Probability returns the chance that the damping channel relaxes the qubit
// during the gate time.  With symbolic time or rate the result is the
// corresponding symbolic expression.
func (p PragmaDamping) Probability() calculator.Value {
	return calculator.Float(1).Sub(p.Rate.Mul(p.GateTime).Neg().Exp())
}

// Superoperator returns the 4x4 matrix acting on the vectorised density
// matrix (row-major vec(rho)).
func (p PragmaDamping) Superoperator() (FloatMatrix, error) {
	t, r, err := noiseParams(p.GateTime, p.Rate)
	if err != nil {
		return FloatMatrix{}, err
	}
	//
	prob := 1 - math.Exp(-r*t)
	sqrt := math.Sqrt(1 - prob)
	//
	return FloatMatrix{
		Rows: 4, Cols: 4,
		Data: []float64{
			1, 0, 0, prob,
			0, sqrt, 0, 0,
			0, 0, sqrt, 0,
			0, 0, 0, 1 - prob,
		},
	}, nil
}

// PragmaDepolarising applies symmetric depolarising noise to a qubit over
// the gate time.
type PragmaDepolarising struct {
	Qubit    uint64           `json:"qubit"`
	GateTime calculator.Value `json:"gate_time"`
	Rate     calculator.Value `json:"rate"`
}

func (p PragmaDepolarising) Tags() []string           { return tagsNoiseProbaPragma("PragmaDepolarising") }
func (p PragmaDepolarising) HqslangName() string      { return "PragmaDepolarising" }
func (p PragmaDepolarising) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PragmaDepolarising) IsParametrized() bool     { return anySymbolic(p.GateTime, p.Rate) }

func (p PragmaDepolarising) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.GateTime, &p.Rate); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaDepolarising) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaDepolarising) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaDepolarising")
}

// Probability returns the chance that any of the three Pauli errors occurs
// during the gate time.
func (p PragmaDepolarising) Probability() calculator.Value {
	return calculator.Float(0.75).Mul(calculator.Float(1).Sub(p.Rate.Mul(p.GateTime).Neg().Exp()))
}

// Superoperator returns the 4x4 matrix acting on the vectorised density
// matrix (row-major vec(rho)).
func (p PragmaDepolarising) Superoperator() (FloatMatrix, error) {
	t, r, err := noiseParams(p.GateTime, p.Rate)
	if err != nil {
		return FloatMatrix{}, err
	}
	//
	decay := math.Exp(-r * t)
	pop := 0.5 * (1 + decay)
	flip := 0.5 * (1 - decay)
	//
	return FloatMatrix{
		Rows: 4, Cols: 4,
		Data: []float64{
			pop, 0, 0, flip,
			0, decay, 0, 0,
			0, 0, decay, 0,
			flip, 0, 0, pop,
		},
	}, nil
}

// PragmaDephasing applies pure dephasing noise to a qubit over the gate
// time, decaying off-diagonal density matrix elements.
type PragmaDephasing struct {
	Qubit    uint64           `json:"qubit"`
	GateTime calculator.Value `json:"gate_time"`
	Rate     calculator.Value `json:"rate"`
}

func (p PragmaDephasing) Tags() []string           { return tagsNoiseProbaPragma("PragmaDephasing") }
func (p PragmaDephasing) HqslangName() string      { return "PragmaDephasing" }
func (p PragmaDephasing) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PragmaDephasing) IsParametrized() bool     { return anySymbolic(p.GateTime, p.Rate) }

func (p PragmaDephasing) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.GateTime, &p.Rate); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaDephasing) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaDephasing) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaDephasing")
}

// Probability returns the chance that a phase flip occurs during the gate
// time.
func (p PragmaDephasing) Probability() calculator.Value {
	decay := calculator.Float(2).Mul(p.Rate).Mul(p.GateTime).Neg().Exp()
	//
	return calculator.Float(0.5).Mul(calculator.Float(1).Sub(decay))
}

// Superoperator returns the 4x4 matrix acting on the vectorised density
// matrix (row-major vec(rho)).
func (p PragmaDephasing) Superoperator() (FloatMatrix, error) {
	t, r, err := noiseParams(p.GateTime, p.Rate)
	if err != nil {
		return FloatMatrix{}, err
	}
	//
	decay := math.Exp(-2 * r * t)
	//
	return FloatMatrix{
		Rows: 4, Cols: 4,
		Data: []float64{
			1, 0, 0, 0,
			0, decay, 0, 0,
			0, 0, decay, 0,
			0, 0, 0, 1,
		},
	}, nil
}

// PragmaRandomNoise applies stochastic Pauli noise to a qubit, combining
// independent depolarising and dephasing channels.
type PragmaRandomNoise struct {
	Qubit            uint64           `json:"qubit"`
	GateTime         calculator.Value `json:"gate_time"`
	DepolarisingRate calculator.Value `json:"depolarising_rate"`
	DephasingRate    calculator.Value `json:"dephasing_rate"`
}

func (p PragmaRandomNoise) Tags() []string           { return tagsNoiseProbaPragma("PragmaRandomNoise") }
func (p PragmaRandomNoise) HqslangName() string      { return "PragmaRandomNoise" }
func (p PragmaRandomNoise) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }

func (p PragmaRandomNoise) IsParametrized() bool {
	return anySymbolic(p.GateTime, p.DepolarisingRate, p.DephasingRate)
}

func (p PragmaRandomNoise) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.GateTime, &p.DepolarisingRate, &p.DephasingRate); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaRandomNoise) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaRandomNoise) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaRandomNoise")
}

// Probability returns the chance that any Pauli error occurs during the gate
// time, given the combined depolarising and dephasing rates.
func (p PragmaRandomNoise) Probability() calculator.Value {
	total := p.DepolarisingRate.Add(p.DephasingRate)
	//
	return calculator.Float(1).Sub(p.GateTime.Mul(total).Neg().Exp())
}

// Superoperator returns the 4x4 matrix acting on the vectorised density
// matrix (row-major vec(rho)), composing the depolarising and dephasing
// channels.
func (p PragmaRandomNoise) Superoperator() (FloatMatrix, error) {
	t, rDepol, err := noiseParams(p.GateTime, p.DepolarisingRate)
	if err != nil {
		return FloatMatrix{}, err
	}
	//
	rDeph, err := p.DephasingRate.Float64()
	if err != nil {
		return FloatMatrix{}, &DomainError{Reason: "noise rate is symbolic"}
	} else if rDeph < 0 {
		return FloatMatrix{}, &DomainError{Reason: "noise gate time and rate must be non-negative"}
	}
	//
	depol := math.Exp(-rDepol * t)
	pop := 0.5 * (1 + depol)
	flip := 0.5 * (1 - depol)
	coherence := depol * math.Exp(-2*rDeph*t)
	//
	return FloatMatrix{
		Rows: 4, Cols: 4,
		Data: []float64{
			pop, 0, 0, flip,
			0, coherence, 0, 0,
			0, 0, coherence, 0,
			flip, 0, 0, pop,
		},
	}, nil
}

// PragmaGeneralNoise applies a general single-qubit Lindblad noise channel,
// parameterised by a 3x3 rate matrix over the operator basis
// (sigma+, sigma-, sigma_z).
type PragmaGeneralNoise struct {
	Qubit    uint64           `json:"qubit"`
	GateTime calculator.Value `json:"gate_time"`
	Rates    FloatMatrix      `json:"rates"`
}

// NewPragmaGeneralNoise constructs a PragmaGeneralNoise, checking that the
// rate matrix is 3x3.
func NewPragmaGeneralNoise(qubit uint64, gateTime calculator.Value, rates FloatMatrix) (PragmaGeneralNoise, error) {
	if rates.Rows != 3 || rates.Cols != 3 {
		return PragmaGeneralNoise{}, &ShapeError{
			Expected: "3x3 rate matrix",
			Actual:   fmt.Sprintf("%dx%d", rates.Rows, rates.Cols),
		}
	}
	//
	return PragmaGeneralNoise{Qubit: qubit, GateTime: gateTime, Rates: rates}, nil
}

func (p PragmaGeneralNoise) Tags() []string           { return tagsNoisePragma("PragmaGeneralNoise") }
func (p PragmaGeneralNoise) HqslangName() string      { return "PragmaGeneralNoise" }
func (p PragmaGeneralNoise) InvolvedQubits() QubitSet { return QubitsOf(p.Qubit) }
func (p PragmaGeneralNoise) IsParametrized() bool     { return anySymbolic(p.GateTime) }

func (p PragmaGeneralNoise) SubstituteParameters(b calculator.Bindings) (Operation, error) {
	if err := substituteAll(b, &p.GateTime); err != nil {
		return nil, err
	}
	//
	return p, nil
}

func (p PragmaGeneralNoise) RemapQubits(m QubitMapping) (Operation, error) {
	q, err := m.Apply(p.Qubit)
	if err != nil {
		return nil, err
	}
	//
	p.Qubit = q
	//
	return p, nil
}

func (p PragmaGeneralNoise) MinimumSupportedVersion() Version {
	return introducedVersion("PragmaGeneralNoise")
}

// Superoperator returns the 4x4 first-order Lindblad generator scaled by the
// gate time, acting on the vectorised density matrix (row-major vec(rho)).
func (p PragmaGeneralNoise) Superoperator() (FloatMatrix, error) {
	t, err := p.GateTime.Float64()
	if err != nil {
		return FloatMatrix{}, &DomainError{Reason: "noise gate time is symbolic"}
	} else if t < 0 {
		return FloatMatrix{}, &DomainError{Reason: "noise gate time must be non-negative"}
	}
	//
	if p.Rates.Rows != 3 || p.Rates.Cols != 3 {
		return FloatMatrix{}, &ShapeError{
			Expected: "3x3 rate matrix",
			Actual:   fmt.Sprintf("%dx%d", p.Rates.Rows, p.Rates.Cols),
		}
	}
	// Rates over (sigma+, sigma-, sigma_z); off-diagonals of the rate
	// matrix do not contribute to the diagonal Lindblad generator terms
	// used here.
	rPlus := p.Rates.Data[0]
	rMinus := p.Rates.Data[4]
	rZ := p.Rates.Data[8]
	//
	total := rPlus + rMinus
	deco := 0.5*total + 2*rZ
	//
	return FloatMatrix{
		Rows: 4, Cols: 4,
		Data: []float64{
			-t * rMinus, 0, 0, t * rPlus,
			0, -t * deco, 0, 0,
			0, 0, -t * deco, 0,
			t * rMinus, 0, 0, -t * rPlus,
		},
	}, nil
}

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
	"math"
	"testing"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDampingProbability(t *testing.T) {
	op := PragmaDamping{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	prob, err := op.Probability().Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-0.2), prob, 1e-12)
	// Zero rate means no damping at all.
	op.Rate = calculator.Float(0)
	//
	prob, err = op.Probability().Float64()
	require.NoError(t, err)
	assert.Zero(t, prob)
}

func TestDampingSymbolicProbability(t *testing.T) {
	op := PragmaDamping{Qubit: 0, GateTime: calculator.Symbol("t"), Rate: calculator.Float(2)}
	//
	prob := op.Probability()
	require.True(t, prob.IsSymbolic())
	// Binding the gate time resolves the probability.
	resolved, err := prob.Substitute(calculator.Bindings{"t": 0.1})
	require.NoError(t, err)
	//
	f, err := resolved.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-0.2), f, 1e-12)
}

func TestDampingSuperoperator(t *testing.T) {
	op := PragmaDamping{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	superop, err := op.Superoperator()
	require.NoError(t, err)
	require.Equal(t, uint64(4), superop.Rows)
	require.Equal(t, uint64(4), superop.Cols)
	//
	prob := 1 - math.Exp(-0.2)
	//
	assert.InDelta(t, 1.0, superop.At(0, 0), 1e-12)
	assert.InDelta(t, prob, superop.At(0, 3), 1e-12)
	assert.InDelta(t, math.Sqrt(1-prob), superop.At(1, 1), 1e-12)
	assert.InDelta(t, 1-prob, superop.At(3, 3), 1e-12)
}

func TestDampingSuperoperatorRejectsSymbolic(t *testing.T) {
	op := PragmaDamping{Qubit: 0, GateTime: calculator.Symbol("t"), Rate: calculator.Float(2)}
	//
	_, err := op.Superoperator()
	//
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
}

func TestDampingSuperoperatorRejectsNegativeRate(t *testing.T) {
	op := PragmaDamping{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(-1)}
	//
	_, err := op.Superoperator()
	//
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
}

func TestDepolarisingProbability(t *testing.T) {
	op := PragmaDepolarising{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	prob, err := op.Probability().Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.75*(1-math.Exp(-0.2)), prob, 1e-12)
}

func TestDepolarisingSuperoperator(t *testing.T) {
	op := PragmaDepolarising{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	superop, err := op.Superoperator()
	require.NoError(t, err)
	//
	decay := math.Exp(-0.2)
	//
	assert.InDelta(t, 0.5*(1+decay), superop.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5*(1-decay), superop.At(0, 3), 1e-12)
	assert.InDelta(t, decay, superop.At(1, 1), 1e-12)
	assert.InDelta(t, 0.5*(1+decay), superop.At(3, 3), 1e-12)
	// Trace preservation: populations in each column sum to one.
	assert.InDelta(t, 1.0, superop.At(0, 0)+superop.At(3, 0), 1e-12)
	assert.InDelta(t, 1.0, superop.At(0, 3)+superop.At(3, 3), 1e-12)
}

func TestDephasingProbability(t *testing.T) {
	op := PragmaDephasing{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	prob, err := op.Probability().Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.5*(1-math.Exp(-0.4)), prob, 1e-12)
}

func TestDephasingSuperoperator(t *testing.T) {
	op := PragmaDephasing{Qubit: 0, GateTime: calculator.Float(0.1), Rate: calculator.Float(2)}
	//
	superop, err := op.Superoperator()
	require.NoError(t, err)
	// Pure dephasing never touches populations.
	assert.Equal(t, 1.0, superop.At(0, 0))
	assert.Equal(t, 1.0, superop.At(3, 3))
	assert.Zero(t, superop.At(0, 3))
	assert.InDelta(t, math.Exp(-0.4), superop.At(1, 1), 1e-12)
	assert.InDelta(t, math.Exp(-0.4), superop.At(2, 2), 1e-12)
}

func TestRandomNoiseProbability(t *testing.T) {
	op := PragmaRandomNoise{
		Qubit:            0,
		GateTime:         calculator.Float(0.1),
		DepolarisingRate: calculator.Float(2),
		DephasingRate:    calculator.Float(1),
	}
	//
	prob, err := op.Probability().Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-0.3), prob, 1e-12)
}

func TestRandomNoiseSuperoperator(t *testing.T) {
	op := PragmaRandomNoise{
		Qubit:            0,
		GateTime:         calculator.Float(0.1),
		DepolarisingRate: calculator.Float(2),
		DephasingRate:    calculator.Float(1),
	}
	//
	superop, err := op.Superoperator()
	require.NoError(t, err)
	// Coherences decay under both channels at once.
	assert.InDelta(t, math.Exp(-0.2)*math.Exp(-0.2), superop.At(1, 1), 1e-12)
	// Populations follow the depolarising channel alone.
	assert.InDelta(t, 0.5*(1+math.Exp(-0.2)), superop.At(0, 0), 1e-12)
}

func TestGeneralNoiseConstruction(t *testing.T) {
	rates, err := NewFloatMatrix([][]float64{
		{0.1, 0, 0},
		{0, 0.2, 0},
		{0, 0, 0.05},
	})
	require.NoError(t, err)
	//
	op, err := NewPragmaGeneralNoise(0, calculator.Float(0.1), rates)
	require.NoError(t, err)
	assert.Equal(t, "PragmaGeneralNoise", op.HqslangName())
	// Wrong shape is rejected up front.
	small, err := NewFloatMatrix([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	//
	_, err = NewPragmaGeneralNoise(0, calculator.Float(0.1), small)
	//
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestGeneralNoiseSuperoperator(t *testing.T) {
	rates, err := NewFloatMatrix([][]float64{
		{0.1, 0, 0},
		{0, 0.2, 0},
		{0, 0, 0.05},
	})
	require.NoError(t, err)
	//
	op, err := NewPragmaGeneralNoise(0, calculator.Float(2), rates)
	require.NoError(t, err)
	//
	superop, err := op.Superoperator()
	require.NoError(t, err)
	//
	deco := 0.5*(0.1+0.2) + 2*0.05
	//
	assert.InDelta(t, -2*0.2, superop.At(0, 0), 1e-12)
	assert.InDelta(t, 2*0.1, superop.At(0, 3), 1e-12)
	assert.InDelta(t, -2*deco, superop.At(1, 1), 1e-12)
	assert.InDelta(t, 2*0.2, superop.At(3, 0), 1e-12)
	// Generator columns sum to zero on the population subspace.
	assert.InDelta(t, 0.0, superop.At(0, 0)+superop.At(3, 0), 1e-12)
}

func TestNoiseProbaInterfaces(t *testing.T) {
	// The four probability-carrying noise pragmas implement the full noise
	// interface; the general channel only exposes a superoperator.
	for _, op := range []Operation{
		PragmaDamping{}, PragmaDepolarising{}, PragmaDephasing{}, PragmaRandomNoise{},
	} {
		_, ok := op.(NoisePragmaOperation)
		assert.True(t, ok, "%s should implement NoisePragmaOperation", op.HqslangName())
	}
	//
	_, ok := Operation(PragmaGeneralNoise{}).(NoisePragmaOperation)
	assert.False(t, ok, "PragmaGeneralNoise has no scalar probability")
}

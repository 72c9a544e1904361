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
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/segmentio/encoding/json"
)

// ComplexVector is a dense vector of complex amplitudes, used by
// state-injection pragmas.  Note that encoding/gob has no native support for
// complex numbers, hence the custom codec below; on the JSON side each entry
// is rendered as a [re, im] pair.
type ComplexVector []complex128

// ComplexMatrix is a dense, row-major, rectangular matrix of complex
// amplitudes.  Rectangularity is enforced at construction.
type ComplexMatrix struct {
	Rows uint64
	Cols uint64
	Data ComplexVector
}

// FloatMatrix is a dense, row-major, rectangular matrix of real values, used
// for noise rates and superoperators.
type FloatMatrix struct {
	Rows uint64
	Cols uint64
	Data []float64
}

// NewComplexMatrix constructs a matrix from a list of rows, failing with a
// ShapeError when rows have inconsistent lengths.
func NewComplexMatrix(rows [][]complex128) (ComplexMatrix, error) {
	var matrix ComplexMatrix
	//
	matrix.Rows = uint64(len(rows))
	//
	if len(rows) > 0 {
		matrix.Cols = uint64(len(rows[0]))
	}
	//
	for i, row := range rows {
		if uint64(len(row)) != matrix.Cols {
			return ComplexMatrix{}, &ShapeError{
				Expected: fmt.Sprintf("%d columns", matrix.Cols),
				Actual:   fmt.Sprintf("%d columns in row %d", len(row), i),
			}
		}
		//
		matrix.Data = append(matrix.Data, row...)
	}
	//
	return matrix, nil
}

// NewFloatMatrix constructs a matrix from a list of rows, failing with a
// ShapeError when rows have inconsistent lengths.
func NewFloatMatrix(rows [][]float64) (FloatMatrix, error) {
	var matrix FloatMatrix
	//
	matrix.Rows = uint64(len(rows))
	//
	if len(rows) > 0 {
		matrix.Cols = uint64(len(rows[0]))
	}
	//
	for i, row := range rows {
		if uint64(len(row)) != matrix.Cols {
			return FloatMatrix{}, &ShapeError{
				Expected: fmt.Sprintf("%d columns", matrix.Cols),
				Actual:   fmt.Sprintf("%d columns in row %d", len(row), i),
			}
		}
		//
		matrix.Data = append(matrix.Data, row...)
	}
	//
	return matrix, nil
}

// At returns the element at the given row and column.
func (p ComplexMatrix) At(row, col uint64) complex128 {
	return p.Data[row*p.Cols+col]
}

// IsSquare reports whether this matrix is square.
func (p ComplexMatrix) IsSquare() bool {
	return p.Rows == p.Cols
}

// At returns the element at the given row and column.
func (p FloatMatrix) At(row, col uint64) float64 {
	return p.Data[row*p.Cols+col]
}

// IsSquare reports whether this matrix is square.
func (p FloatMatrix) IsSquare() bool {
	return p.Rows == p.Cols
}

// ============================================================================
// Serialization
// ============================================================================

// GobEncode encodes the vector as a length prefix followed by interleaved
// IEEE754 real/imaginary pairs.
func (p ComplexVector) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	var length [8]byte
	//
	binary.BigEndian.PutUint64(length[:], uint64(len(p)))
	buffer.Write(length[:])
	//
	for _, c := range p {
		var entry [16]byte
		//
		binary.BigEndian.PutUint64(entry[:8], math.Float64bits(real(c)))
		binary.BigEndian.PutUint64(entry[8:], math.Float64bits(imag(c)))
		buffer.Write(entry[:])
	}
	//
	return buffer.Bytes(), nil
}

// GobDecode initialises this vector from the encoding produced by GobEncode.
func (p *ComplexVector) GobDecode(data []byte) error {
	if len(data) < 8 {
		return &SerializationError{Reason: "truncated complex vector"}
	}
	//
	n := binary.BigEndian.Uint64(data[:8])
	// Divide rather than multiply: 16*n wraps for a hostile length field.
	if n != uint64(len(data)-8)/16 || uint64(len(data)-8)%16 != 0 {
		return &SerializationError{Reason: "truncated complex vector"}
	}
	//
	vec := make(ComplexVector, n)
	//
	for i := uint64(0); i < n; i++ {
		re := math.Float64frombits(binary.BigEndian.Uint64(data[8+16*i:]))
		im := math.Float64frombits(binary.BigEndian.Uint64(data[16+16*i:]))
		vec[i] = complex(re, im)
	}
	//
	*p = vec
	//
	return nil
}

// MarshalJSON renders each amplitude as a [re, im] pair.
func (p ComplexVector) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, len(p))
	//
	for i, c := range p {
		pairs[i] = [2]float64{real(c), imag(c)}
	}
	//
	return json.Marshal(pairs)
}

// UnmarshalJSON accepts a list of [re, im] pairs.
func (p *ComplexVector) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	//
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	//
	vec := make(ComplexVector, len(pairs))
	//
	for i, pair := range pairs {
		vec[i] = complex(pair[0], pair[1])
	}
	//
	*p = vec
	//
	return nil
}

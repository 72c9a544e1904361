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
	"encoding/binary"
	"errors"
	"reflect"
	"testing"

	"github.com/segmentio/encoding/json"
)

func Test_ComplexMatrix_01(t *testing.T) {
	matrix, err := NewComplexMatrix([][]complex128{
		{1, 2i},
		{3, 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	//
	if matrix.Rows != 2 || matrix.Cols != 2 || !matrix.IsSquare() {
		t.Errorf("wrong shape %dx%d", matrix.Rows, matrix.Cols)
	}
	//
	if matrix.At(0, 1) != 2i || matrix.At(1, 0) != 3 {
		t.Error("row-major indexing broken")
	}
}

func Test_ComplexMatrix_02(t *testing.T) {
	// Ragged rows are rejected.
	_, err := NewComplexMatrix([][]complex128{
		{1, 2},
		{3},
	})
	//
	var serr *ShapeError
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func Test_ComplexMatrix_03(t *testing.T) {
	// Empty and rectangular matrices are both legal.
	empty, err := NewComplexMatrix(nil)
	if err != nil || empty.Rows != 0 || empty.Cols != 0 {
		t.Errorf("empty matrix: %+v %v", empty, err)
	}
	//
	rect, err := NewComplexMatrix([][]complex128{{1, 2, 3}})
	if err != nil || rect.IsSquare() {
		t.Errorf("1x3 matrix should not be square: %v", err)
	}
}

func Test_FloatMatrix_01(t *testing.T) {
	matrix, err := NewFloatMatrix([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	if err != nil {
		t.Fatal(err)
	}
	//
	if matrix.Rows != 3 || matrix.Cols != 2 || matrix.IsSquare() {
		t.Errorf("wrong shape %dx%d", matrix.Rows, matrix.Cols)
	}
	//
	if matrix.At(2, 1) != 6 {
		t.Errorf("At(2,1) = %v", matrix.At(2, 1))
	}
}

func Test_FloatMatrix_02(t *testing.T) {
	_, err := NewFloatMatrix([][]float64{{1}, {2, 3}})
	//
	var serr *ShapeError
	//
	if !errors.As(err, &serr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func Test_ComplexVector_Gob_01(t *testing.T) {
	vec := ComplexVector{1 + 2i, -0.5, 3i}
	//
	data, err := vec.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	// Length prefix plus two IEEE754 doubles per entry.
	if len(data) != 8+16*len(vec) {
		t.Errorf("unexpected encoding length %d", len(data))
	}
	//
	var decoded ComplexVector
	//
	if err := decoded.GobDecode(data); err != nil {
		t.Fatal(err)
	}
	//
	if !reflect.DeepEqual(vec, decoded) {
		t.Errorf("round trip changed vector: %v", decoded)
	}
}

func Test_ComplexVector_Gob_02(t *testing.T) {
	var vec ComplexVector
	// Too short for the length prefix.
	if err := vec.GobDecode([]byte{0, 1, 2}); err == nil {
		t.Error("truncated prefix should fail")
	}
	// Prefix announces more entries than the payload carries.
	if err := vec.GobDecode([]byte{0, 0, 0, 0, 0, 0, 0, 9}); err == nil {
		t.Error("truncated payload should fail")
	}
}

func Test_ComplexVector_Gob_03(t *testing.T) {
	// A hostile length field large enough to wrap 16*n must be rejected, not
	// handed to make.
	data := make([]byte, 24)
	//
	binary.BigEndian.PutUint64(data[:8], 1<<60+1)
	//
	var vec ComplexVector
	//
	var serr *SerializationError
	//
	if err := vec.GobDecode(data); !errors.As(err, &serr) {
		t.Errorf("expected SerializationError, got %v", err)
	}
}

func Test_ComplexVector_Json_01(t *testing.T) {
	vec := ComplexVector{1 + 2i, 3}
	//
	data, err := json.Marshal(vec)
	if err != nil {
		t.Fatal(err)
	}
	//
	if string(data) != `[[1,2],[3,0]]` {
		t.Errorf("unexpected encoding %s", string(data))
	}
	//
	var decoded ComplexVector
	//
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	//
	if !reflect.DeepEqual(vec, decoded) {
		t.Errorf("round trip changed vector: %v", decoded)
	}
}

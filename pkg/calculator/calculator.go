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
package calculator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/segmentio/encoding/json"
)

// Value is a scalar which is either a concrete float or a symbolic expression
// whose evaluation is deferred until substitution time.  Values are immutable;
// every arithmetic operation returns a fresh Value.  Arithmetic involving at
// least one symbolic operand produces a new symbolic expression.
type Value struct {
	num      float64
	expr     string
	symbolic bool
}

// Bindings maps symbolic variable names to concrete values for substitution.
type Bindings map[string]float64

// Float constructs a concrete numeric value.
func Float(f float64) Value {
	return Value{num: f}
}

// Symbol constructs a symbolic value referencing a single named variable.
func Symbol(name string) Value {
	return Value{expr: name, symbolic: true}
}

// Expression constructs a symbolic value from an arbitrary expression string.
// The expression is not parsed eagerly; malformed expressions surface as
// errors during substitution.
func Expression(expr string) Value {
	return Value{expr: expr, symbolic: true}
}

// FromString constructs a value from a string, yielding a concrete value when
// the string parses as a float and a symbolic expression otherwise.
func FromString(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	//
	return Expression(s)
}

// IsSymbolic reports whether this value still references unresolved symbols.
func (v Value) IsSymbolic() bool {
	return v.symbolic
}

// Float64 returns the concrete value, failing on symbolic values.
func (v Value) Float64() (float64, error) {
	if v.symbolic {
		return 0, &NotNumericError{Expr: v.expr}
	}
	//
	return v.num, nil
}

// String returns the expression for symbolic values and a minimal decimal
// rendering otherwise.
func (v Value) String() string {
	if v.symbolic {
		return v.expr
	}
	//
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Substitute resolves every symbol referenced by this value against the given
// bindings, producing a concrete value.  Concrete values are returned
// unchanged for any bindings.  Referencing a symbol absent from the bindings
// fails with an UnboundSymbolError.
func (v Value) Substitute(bindings Bindings) (Value, error) {
	if !v.symbolic {
		return v, nil
	}
	//
	f, err := evaluate(v.expr, bindings)
	if err != nil {
		return Value{}, err
	}
	//
	return Float(f), nil
}

// Add returns v + w.
func (v Value) Add(w Value) Value { return v.binop(w, '+', func(a, b float64) float64 { return a + b }) }

// Sub returns v - w.
func (v Value) Sub(w Value) Value { return v.binop(w, '-', func(a, b float64) float64 { return a - b }) }

// Mul returns v * w.
func (v Value) Mul(w Value) Value { return v.binop(w, '*', func(a, b float64) float64 { return a * b }) }

// Div returns v / w.  Division of two concrete values by concrete zero yields
// +/-Inf following float semantics; symbolic division is deferred.
func (v Value) Div(w Value) Value { return v.binop(w, '/', func(a, b float64) float64 { return a / b }) }

// Neg returns -v.
func (v Value) Neg() Value {
	if !v.symbolic {
		return Float(-v.num)
	}
	//
	return Expression(fmt.Sprintf("(-%s)", v.expr))
}

// Exp returns e**v, deferred when v is symbolic.
func (v Value) Exp() Value {
	if !v.symbolic {
		return Float(math.Exp(v.num))
	}
	//
	return Expression(fmt.Sprintf("exp(%s)", v.expr))
}

// Sqrt returns the square root of v, deferred when v is symbolic.
func (v Value) Sqrt() Value {
	if !v.symbolic {
		return Float(math.Sqrt(v.num))
	}
	//
	return Expression(fmt.Sprintf("sqrt(%s)", v.expr))
}

// IsZero reports whether this is the concrete value zero.
func (v Value) IsZero() bool {
	return !v.symbolic && v.num == 0
}

func (v Value) binop(w Value, op byte, apply func(float64, float64) float64) Value {
	if !v.symbolic && !w.symbolic {
		return Float(apply(v.num, w.num))
	}
	//
	return Expression(fmt.Sprintf("(%s %c %s)", v.String(), op, w.String()))
}

// ============================================================================
// Serialization
// ============================================================================

const (
	valueTagFloat    byte = 0
	valueTagSymbolic byte = 1
)

// GobEncode encodes this value as a one byte tag followed by either an IEEE754
// payload or the raw expression bytes.
func (v Value) GobEncode() ([]byte, error) {
	if v.symbolic {
		return append([]byte{valueTagSymbolic}, v.expr...), nil
	}
	//
	var buf [9]byte
	//
	buf[0] = valueTagFloat
	binary.BigEndian.PutUint64(buf[1:], math.Float64bits(v.num))
	//
	return buf[:], nil
}

// GobDecode initialises this value from the encoding produced by GobEncode.
func (v *Value) GobDecode(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("malformed calculator value (empty)")
	}
	//
	switch data[0] {
	case valueTagFloat:
		if len(data) != 9 {
			return fmt.Errorf("malformed calculator value (%d bytes)", len(data))
		}
		//
		*v = Float(math.Float64frombits(binary.BigEndian.Uint64(data[1:])))
	case valueTagSymbolic:
		*v = Expression(string(data[1:]))
	default:
		return fmt.Errorf("malformed calculator value (tag %d)", data[0])
	}
	//
	return nil
}

// MarshalJSON renders concrete values as JSON numbers and symbolic values as
// JSON strings, matching the historical wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.symbolic {
		return json.Marshal(v.expr)
	}
	// NaN / Inf are not representable as JSON numbers.
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return nil, fmt.Errorf("cannot marshal non-finite value %f", v.num)
	}
	//
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts either wire form (number or string).
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	//
	if len(data) > 0 && data[0] == '"' {
		var expr string
		if err := json.Unmarshal(data, &expr); err != nil {
			return err
		}
		//
		*v = FromString(expr)
		//
		return nil
	}
	//
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	//
	*v = Float(f)
	//
	return nil
}

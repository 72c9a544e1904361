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
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// UnboundSymbolError signals that substitution referenced a symbolic variable
// absent from the supplied bindings.
type UnboundSymbolError struct {
	// Symbol is the name of the unbound variable.
	Symbol string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("symbolic variable %q not bound during substitution", e.Symbol)
}

// NotNumericError signals an attempted numeric coercion of a value which still
// contains unresolved symbols.
type NotNumericError struct {
	// Expr is the offending expression.
	Expr string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("value %q is symbolic, not numeric", e.Expr)
}

// ParseError signals a malformed symbolic expression discovered during
// substitution.
type ParseError struct {
	Expr   string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed expression %q at offset %d: %s", e.Expr, e.Offset, e.Reason)
}

// evaluate parses and evaluates the given expression against a set of
// variable bindings.  The grammar accepts the usual arithmetic operators
// (with ** and ^ both meaning exponentiation), parentheses, float literals,
// named variables and a small set of builtin functions.
func evaluate(expr string, bindings Bindings) (float64, error) {
	p := &parser{expr: expr, bindings: bindings}
	//
	val, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	//
	p.skipSpace()
	// Ensure nothing trails the expression
	if p.pos != len(p.expr) {
		return 0, p.errorf("unexpected trailing input")
	}
	//
	return val, nil
}

type parser struct {
	expr     string
	pos      int
	bindings Bindings
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Expr: p.expr, Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.expr) && (p.expr[p.pos] == ' ' || p.expr[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.expr) {
		return p.expr[p.pos]
	}
	//
	return 0
}

// parseSum handles addition and subtraction (lowest precedence).
func (p *parser) parseSum() (float64, error) {
	lhs, err := p.parseProduct()
	//
	for err == nil {
		p.skipSpace()
		//
		switch p.peek() {
		case '+':
			p.pos++
			//
			var rhs float64
			if rhs, err = p.parseProduct(); err == nil {
				lhs += rhs
			}
		case '-':
			p.pos++
			//
			var rhs float64
			if rhs, err = p.parseProduct(); err == nil {
				lhs -= rhs
			}
		default:
			return lhs, nil
		}
	}
	//
	return lhs, err
}

// parseProduct handles multiplication and division.
func (p *parser) parseProduct() (float64, error) {
	lhs, err := p.parseUnary()
	//
	for err == nil {
		p.skipSpace()
		// Guard against consuming the first half of "**"
		if strings.HasPrefix(p.expr[p.pos:], "**") {
			return lhs, nil
		}
		//
		switch p.peek() {
		case '*':
			p.pos++
			//
			var rhs float64
			if rhs, err = p.parseUnary(); err == nil {
				lhs *= rhs
			}
		case '/':
			p.pos++
			//
			var rhs float64
			if rhs, err = p.parseUnary(); err == nil {
				lhs /= rhs
			}
		default:
			return lhs, nil
		}
	}
	//
	return lhs, err
}

// parseUnary handles prefix negation.
func (p *parser) parseUnary() (float64, error) {
	p.skipSpace()
	//
	switch p.peek() {
	case '-':
		p.pos++
		//
		val, err := p.parseUnary()
		//
		return -val, err
	case '+':
		p.pos++
		return p.parseUnary()
	}
	//
	return p.parsePower()
}

// parsePower handles right-associative exponentiation via "**" or "^".
func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	//
	p.skipSpace()
	//
	if strings.HasPrefix(p.expr[p.pos:], "**") {
		p.pos += 2
	} else if p.peek() == '^' {
		p.pos++
	} else {
		return base, nil
	}
	// Right associative, so recurse through unary
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	//
	return math.Pow(base, exp), nil
}

func (p *parser) parseAtom() (float64, error) {
	p.skipSpace()
	//
	if p.pos >= len(p.expr) {
		return 0, p.errorf("unexpected end of expression")
	}
	//
	c := p.expr[p.pos]
	//
	switch {
	case c == '(':
		p.pos++
		//
		val, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		//
		p.skipSpace()
		//
		if p.peek() != ')' {
			return 0, p.errorf("expected ')'")
		}
		//
		p.pos++
		//
		return val, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(rune(c)):
		return p.parseIdentifier()
	}
	//
	return 0, p.errorf("unexpected character %q", c)
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	//
	for p.pos < len(p.expr) {
		c := p.expr[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
		} else if c == 'e' || c == 'E' {
			// Exponent, optionally signed
			p.pos++
			if p.peek() == '+' || p.peek() == '-' {
				p.pos++
			}
		} else {
			break
		}
	}
	//
	val, err := strconv.ParseFloat(p.expr[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("invalid number %q", p.expr[start:p.pos])
	}
	//
	return val, nil
}

func (p *parser) parseIdentifier() (float64, error) {
	start := p.pos
	//
	for p.pos < len(p.expr) && isIdentPart(rune(p.expr[p.pos])) {
		p.pos++
	}
	//
	name := p.expr[start:p.pos]
	//
	p.skipSpace()
	// Function application?
	if p.peek() == '(' {
		return p.parseCall(name)
	}
	// Variable lookup first, so a user symbol shadows the builtin constants.
	if val, ok := p.bindings[name]; ok {
		return val, nil
	}
	// Builtin constants
	switch name {
	case "pi", "PI":
		return math.Pi, nil
	case "e", "E":
		return math.E, nil
	}
	//
	return 0, &UnboundSymbolError{Symbol: name}
}

func (p *parser) parseCall(name string) (float64, error) {
	// Consume '('
	p.pos++
	//
	args := []float64{}
	//
	p.skipSpace()
	//
	if p.peek() != ')' {
		for {
			arg, err := p.parseSum()
			if err != nil {
				return 0, err
			}
			//
			args = append(args, arg)
			//
			p.skipSpace()
			//
			if p.peek() != ',' {
				break
			}
			//
			p.pos++
		}
	}
	//
	if p.peek() != ')' {
		return 0, p.errorf("expected ')' closing call to %q", name)
	}
	//
	p.pos++
	//
	return applyFunction(p, name, args)
}

func applyFunction(p *parser, name string, args []float64) (float64, error) {
	unary := func(fn func(float64) float64) (float64, error) {
		if len(args) != 1 {
			return 0, p.errorf("%s expects 1 argument, got %d", name, len(args))
		}
		//
		return fn(args[0]), nil
	}
	//
	switch name {
	case "sin":
		return unary(math.Sin)
	case "cos":
		return unary(math.Cos)
	case "tan":
		return unary(math.Tan)
	case "asin":
		return unary(math.Asin)
	case "acos":
		return unary(math.Acos)
	case "atan":
		return unary(math.Atan)
	case "sinh":
		return unary(math.Sinh)
	case "cosh":
		return unary(math.Cosh)
	case "tanh":
		return unary(math.Tanh)
	case "exp":
		return unary(math.Exp)
	case "log", "ln":
		return unary(math.Log)
	case "sqrt":
		return unary(math.Sqrt)
	case "abs":
		return unary(math.Abs)
	case "sign":
		return unary(func(f float64) float64 {
			switch {
			case f > 0:
				return 1
			case f < 0:
				return -1
			}
			return 0
		})
	case "atan2":
		if len(args) != 2 {
			return 0, p.errorf("atan2 expects 2 arguments, got %d", len(args))
		}
		//
		return math.Atan2(args[0], args[1]), nil
	case "pow":
		if len(args) != 2 {
			return 0, p.errorf("pow expects 2 arguments, got %d", len(args))
		}
		//
		return math.Pow(args[0], args[1]), nil
	}
	//
	return 0, p.errorf("unknown function %q", name)
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

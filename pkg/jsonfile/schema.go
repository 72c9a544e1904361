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
package jsonfile

import (
	"reflect"
	"strings"

	"github.com/qirlab/go-qir/pkg/calculator"
	"github.com/qirlab/go-qir/pkg/ir"
)

// Schema is the validation document for one operation variant: its field
// names and JSON types as serialized, keyed by the variant name and the core
// version which introduced it.  Schemas are additive-only, mirroring the
// wire format.
type Schema struct {
	Name       string        `json:"name"`
	Category   string        `json:"category"`
	Introduced string        `json:"introduced"`
	Fields     []SchemaField `json:"fields"`
}

// SchemaField describes one serialized field.
type SchemaField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

var (
	valueType   = reflect.TypeOf(calculator.Value{})
	circuitType = reflect.TypeOf(ir.Circuit{})
)

// SchemaFor returns the validation document for the given variant, derived
// from its registered prototype.
func SchemaFor(hqslang string) (Schema, bool) {
	descriptor, ok := ir.Describe(hqslang)
	if !ok {
		return Schema{}, false
	}
	//
	proto, ok := ir.Prototype(hqslang)
	if !ok {
		return Schema{}, false
	}
	//
	return Schema{
		Name:       descriptor.Name,
		Category:   descriptor.Category,
		Introduced: descriptor.Introduced.String(),
		Fields:     fieldsOf(reflect.TypeOf(proto)),
	}, true
}

// Schemas returns validation documents for every variant known to this
// core, in alphabetical order.
func Schemas() []Schema {
	names := ir.AvailableOperations()
	schemas := make([]Schema, 0, len(names))
	//
	for _, name := range names {
		if s, ok := SchemaFor(name); ok {
			schemas = append(schemas, s)
		}
	}
	//
	return schemas
}

func fieldsOf(t reflect.Type) []SchemaField {
	fields := make([]SchemaField, 0, t.NumField())
	//
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		//
		if !field.IsExported() {
			continue
		}
		//
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" {
			name = field.Name
		}
		//
		fields = append(fields, SchemaField{Name: name, Type: jsonTypeOf(field.Type)})
	}
	//
	return fields
}

func jsonTypeOf(t reflect.Type) string {
	switch {
	case t == valueType:
		return "number|string"
	case t == circuitType:
		return "array<operation>"
	case t.Kind() == reflect.Pointer:
		return jsonTypeOf(t.Elem()) + "|null"
	}
	//
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return "base64"
		}
		//
		return "array<" + jsonTypeOf(t.Elem()) + ">"
	case reflect.Map:
		return "object<" + jsonTypeOf(t.Key()) + "," + jsonTypeOf(t.Elem()) + ">"
	case reflect.Complex64, reflect.Complex128:
		return "array<number>"
	case reflect.Interface:
		return "operation"
	default:
		return "object"
	}
}

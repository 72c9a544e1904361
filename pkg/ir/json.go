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
	"fmt"

	"github.com/segmentio/encoding/json"
)

// Operations cross the JSON boundary as externally-tagged objects: a single
// key holding the hqslang name, whose value carries the variant's fields.
// The tag set is append-only, so documents written by older cores always
// decode; documents using a tag unknown to this core fail with an explicit
// SerializationError instead of being misread.

// MarshalOperation encodes one operation as an externally-tagged JSON
// object, e.g. {"RotateZ":{"qubit":0,"theta":1.57}}.
func MarshalOperation(op Operation) ([]byte, error) {
	body, err := json.Marshal(op)
	if err != nil {
		return nil, &SerializationError{Reason: "encoding operation", Cause: err}
	}
	//
	var buffer bytes.Buffer
	//
	fmt.Fprintf(&buffer, "{%q:", op.HqslangName())
	buffer.Write(body)
	buffer.WriteByte('}')
	//
	return buffer.Bytes(), nil
}

// UnmarshalOperation decodes one externally-tagged JSON operation object.
func UnmarshalOperation(data []byte) (Operation, error) {
	var tagged map[string]json.RawMessage
	//
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, &SerializationError{Reason: "decoding operation", Cause: err}
	} else if len(tagged) != 1 {
		return nil, &SerializationError{
			Reason: fmt.Sprintf("operation object must have exactly one key, found %d", len(tagged)),
		}
	}
	//
	for name, body := range tagged {
		factory, ok := jsonFactories[name]
		//
		if !ok {
			return nil, &SerializationError{Reason: fmt.Sprintf("unknown operation variant %q", name)}
		}
		//
		return factory(body)
	}
	// unreachable
	return nil, nil
}

// decodeInto decodes an operation body into a fresh value of the concrete
// variant T.
func decodeInto[T Operation](data []byte) (Operation, error) {
	var op T
	//
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, &SerializationError{Reason: "decoding operation body", Cause: err}
	}
	//
	return op, nil
}

// splitJSONArray splits a JSON array into its raw elements.
func splitJSONArray(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	//
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &SerializationError{Reason: "decoding operation sequence", Cause: err}
	}
	//
	return items, nil
}

// MarshalJSON encodes the wrapped operation in externally-tagged form so the
// annotation survives round-trips against any registered variant.
func (p PragmaAnnotatedOp) MarshalJSON() ([]byte, error) {
	inner, err := MarshalOperation(p.Operation)
	if err != nil {
		return nil, err
	}
	//
	annotation, err := json.Marshal(p.Annotation)
	if err != nil {
		return nil, &SerializationError{Reason: "encoding annotation", Cause: err}
	}
	//
	var buffer bytes.Buffer
	//
	buffer.WriteString(`{"operation":`)
	buffer.Write(inner)
	buffer.WriteString(`,"annotation":`)
	buffer.Write(annotation)
	buffer.WriteByte('}')
	//
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes the body written by MarshalJSON.
func (p *PragmaAnnotatedOp) UnmarshalJSON(data []byte) error {
	var body struct {
		Operation  json.RawMessage `json:"operation"`
		Annotation string          `json:"annotation"`
	}
	//
	if err := json.Unmarshal(data, &body); err != nil {
		return &SerializationError{Reason: "decoding annotated operation", Cause: err}
	}
	//
	inner, err := UnmarshalOperation(body.Operation)
	if err != nil {
		return err
	}
	//
	p.Operation = inner
	p.Annotation = body.Annotation
	//
	return nil
}

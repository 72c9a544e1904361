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
package measurement

import (
	"bytes"
	"cmp"
	"encoding/gob"
	"slices"

	"github.com/qirlab/go-qir/pkg/calculator"
)

// Custom gob codec for the postprocessing input.  Gob serializes maps in
// randomized iteration order; program files must encode reproducibly, so the
// mask and expectation-value maps are emitted sorted by key.

type productMask struct {
	Index  uint64
	Qubits []uint64
}

type maskEntry struct {
	Readout  string
	Products []productMask
}

type coefficientEntry struct {
	Index       uint64
	Coefficient float64
}

type expValEntry struct {
	Name         string
	Symbolic     bool
	Coefficients []coefficientEntry
	Expression   calculator.Value
}

type pauliZProductInputSurface struct {
	Masks                 []maskEntry
	NumberQubits          uint64
	NumberPauliProducts   uint64
	ExpVals               []expValEntry
	UseFlippedMeasurement bool
}

// GobEncode encodes the input with all map entries in sorted-key order.
func (p PauliZProductInput) GobEncode() ([]byte, error) {
	surface := pauliZProductInputSurface{
		NumberQubits:          p.NumberQubits,
		NumberPauliProducts:   p.NumberPauliProducts,
		UseFlippedMeasurement: p.UseFlippedMeasurement,
	}
	//
	for readout, products := range p.Masks {
		entry := maskEntry{Readout: readout}
		//
		for index, qubits := range products {
			entry.Products = append(entry.Products, productMask{Index: index, Qubits: qubits})
		}
		//
		slices.SortFunc(entry.Products, func(a, b productMask) int {
			return cmp.Compare(a.Index, b.Index)
		})
		//
		surface.Masks = append(surface.Masks, entry)
	}
	//
	slices.SortFunc(surface.Masks, func(a, b maskEntry) int {
		return cmp.Compare(a.Readout, b.Readout)
	})
	//
	for name, expval := range p.ExpVals {
		entry := expValEntry{Name: name, Symbolic: expval.Symbolic, Expression: expval.Expression}
		//
		for index, coefficient := range expval.Coefficients {
			entry.Coefficients = append(entry.Coefficients, coefficientEntry{
				Index: index, Coefficient: coefficient,
			})
		}
		//
		slices.SortFunc(entry.Coefficients, func(a, b coefficientEntry) int {
			return cmp.Compare(a.Index, b.Index)
		})
		//
		surface.ExpVals = append(surface.ExpVals, entry)
	}
	//
	slices.SortFunc(surface.ExpVals, func(a, b expValEntry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	//
	var buffer bytes.Buffer
	//
	err := gob.NewEncoder(&buffer).Encode(surface)
	//
	return buffer.Bytes(), err
}

// GobDecode initialises this input from the encoding produced by GobEncode.
func (p *PauliZProductInput) GobDecode(data []byte) error {
	var surface pauliZProductInputSurface
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&surface); err != nil {
		return err
	}
	//
	p.Masks = make(map[string]map[uint64][]uint64, len(surface.Masks))
	p.NumberQubits = surface.NumberQubits
	p.NumberPauliProducts = surface.NumberPauliProducts
	p.ExpVals = make(map[string]ExpVal, len(surface.ExpVals))
	p.UseFlippedMeasurement = surface.UseFlippedMeasurement
	//
	for _, entry := range surface.Masks {
		products := make(map[uint64][]uint64, len(entry.Products))
		//
		for _, product := range entry.Products {
			products[product.Index] = product.Qubits
		}
		//
		p.Masks[entry.Readout] = products
	}
	//
	for _, entry := range surface.ExpVals {
		expval := ExpVal{Symbolic: entry.Symbolic, Expression: entry.Expression}
		//
		if len(entry.Coefficients) > 0 {
			expval.Coefficients = make(map[uint64]float64, len(entry.Coefficients))
			//
			for _, c := range entry.Coefficients {
				expval.Coefficients[c.Index] = c.Coefficient
			}
		}
		//
		p.ExpVals[entry.Name] = expval
	}
	//
	return nil
}

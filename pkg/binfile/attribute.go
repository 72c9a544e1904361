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
package binfile

import (
	"encoding/gob"
	"fmt"

	"github.com/qirlab/go-qir/pkg/devices"
	"github.com/qirlab/go-qir/pkg/util/collection/iter"
)

// Attribute allows arbitrary auxiliary data to be embedded alongside the
// program, for example provenance information about the tool which produced
// the file.
type Attribute interface {
	// AttributeName returns the name of this attribute.
	AttributeName() string

	// Entries returns the key-value pairs within this attribute.
	Entries() iter.Iterator[AttributeEntry]
}

// AttributeEntry is an individual key-value pair.
type AttributeEntry struct {
	Key   string
	Value string
}

// Provenance records which tool wrote the file, at which version.
type Provenance struct {
	Tool    string
	Version string
}

// AttributeName returns the name of this attribute.
func (p Provenance) AttributeName() string {
	return "Provenance"
}

// Entries returns the key-value pairs within this attribute.
func (p Provenance) Entries() iter.Iterator[AttributeEntry] {
	return iter.NewArrayIterator([]AttributeEntry{
		{Key: "tool", Value: p.Tool},
		{Key: "version", Value: p.Version},
	})
}

// TargetDevice records the device a program was compiled for, so a backend
// can refuse files built against a different topology.
type TargetDevice struct {
	Name   string
	Device devices.Device
}

// AttributeName returns the name of this attribute.
func (p TargetDevice) AttributeName() string {
	return "TargetDevice"
}

// Entries returns the key-value pairs within this attribute.
func (p TargetDevice) Entries() iter.Iterator[AttributeEntry] {
	entries := []AttributeEntry{{Key: "name", Value: p.Name}}
	//
	if p.Device != nil {
		entries = append(entries, AttributeEntry{
			Key: "qubits", Value: fmt.Sprintf("%d", p.Device.NumberQubits()),
		})
	}
	//
	return iter.NewArrayIterator(entries)
}

func init() {
	gob.Register(Provenance{})
	gob.Register(TargetDevice{})
	// Device implementations crossing the gob boundary inside TargetDevice.
	gob.Register(&devices.AllToAllDevice{})
	gob.Register(&devices.SquareLatticeDevice{})
}

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

// Package binfile defines the versioned binary container for circuits and
// quantum programs.  A file starts with a fixed identifier and a major/minor
// version pair; the payload is a gob stream whose operation variants are
// registered under their stable hqslang names.  Files written by older minor
// versions always decode; files from newer minors are rejected up front.
package binfile

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/measurement"
)

// BinaryFile is the programmatic representation of a stored quantum program.
type BinaryFile struct {
	// Header for the binary file
	Header Header
	// Attributes hold auxiliary information (e.g. provenance) alongside the
	// program.
	Attributes []Attribute
	// The program itself.
	Program measurement.QuantumProgram
}

// NewBinaryFile constructs a binary file around the given program.  The
// header's minor version records the oldest core able to read the payload,
// so a file containing only long-released variants stays readable by older
// cores.
func NewBinaryFile(metadata []byte, attributes []Attribute, program measurement.QuantumProgram) *BinaryFile {
	minor := uint16(program.MinimumSupportedVersion().Minor)
	//
	return &BinaryFile{
		Header{QIRBINARY, FORMAT_MAJOR_VERSION, minor, metadata},
		attributes,
		program,
	}
}

// GetAttribute returns the first instance of a given attribute type, or nil
// if none exists.
func GetAttribute[T Attribute](binf *BinaryFile) *T {
	for _, attr := range binf.Attributes {
		if a, ok := attr.(T); ok {
			return &a
		}
	}
	//
	return nil
}

// Header provides a structured header for the binary file format, supporting
// versioning and embedded (binary) metadata.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
	MetaData     []byte
}

// MarshalBinary converts the header into a sequence of bytes.  The header
// deliberately avoids gob so its layout is fixed across format versions.
func (p *Header) MarshalBinary() ([]byte, error) {
	var (
		buffer     bytes.Buffer
		majorBytes [2]byte
		minorBytes [2]byte
		metaLength [4]byte
	)
	//
	binary.BigEndian.PutUint16(majorBytes[:], p.MajorVersion)
	binary.BigEndian.PutUint16(minorBytes[:], p.MinorVersion)
	binary.BigEndian.PutUint32(metaLength[:], uint32(len(p.MetaData)))
	//
	buffer.Write(p.Identifier[:])
	buffer.Write(majorBytes[:])
	buffer.Write(minorBytes[:])
	buffer.Write(metaLength[:])
	buffer.Write(p.MetaData)
	//
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this header from a given buffer.  This matches
// exactly the encoding above.
func (p *Header) UnmarshalBinary(buffer *bytes.Buffer) error {
	var (
		majorBytes      [2]byte
		minorBytes      [2]byte
		metaLengthBytes [4]byte
	)
	//
	if n, err := buffer.Read(p.Identifier[:]); err != nil {
		return err
	} else if n != 8 {
		return errors.New("malformed binary file")
	}
	//
	if n, err := buffer.Read(majorBytes[:]); err != nil {
		return err
	} else if n != len(majorBytes) {
		return errors.New("malformed binary file")
	}
	//
	if n, err := buffer.Read(minorBytes[:]); err != nil {
		return err
	} else if n != len(minorBytes) {
		return errors.New("malformed binary file")
	}
	//
	if n, err := buffer.Read(metaLengthBytes[:]); err != nil {
		return err
	} else if n != len(metaLengthBytes) {
		return errors.New("malformed binary file")
	}
	//
	var (
		metaLength        = binary.BigEndian.Uint32(metaLengthBytes[:])
		metaBytes  []byte = make([]byte, metaLength)
	)
	//
	if metaLength > 0 {
		if n, err := buffer.Read(metaBytes[:]); err != nil {
			return err
		} else if n != len(metaBytes) {
			return errors.New("malformed binary file")
		}
	}
	//
	p.MajorVersion = binary.BigEndian.Uint16(majorBytes[:])
	p.MinorVersion = binary.BigEndian.Uint16(minorBytes[:])
	p.MetaData = metaBytes
	//
	return nil
}

// IsCompatible determines whether a file with this header can be decoded by
// the current core: same identifier and major version, and a minor version
// no newer than the current operation set.
func (p *Header) IsCompatible() bool {
	return p.Identifier == QIRBINARY &&
		p.MajorVersion == FORMAT_MAJOR_VERSION &&
		uint32(p.MinorVersion) <= ir.CurrentVersion.Minor
}

// FORMAT_MAJOR_VERSION gives the major version of the binary file format.
// Whatever the version, a file always begins with the QIRBINARY identifier;
// what follows the header is determined by the major version.
const FORMAT_MAJOR_VERSION uint16 = 1

// QIRBINARY is the file identifier for binary program files, distinguishing
// real program files from corrupted or foreign data.
var QIRBINARY [8]byte = [8]byte{'q', 'i', 'r', 'b', 'i', 'n', 'r', 'y'}

// IsBinaryFile checks whether the given data begins with the expected
// identifier.
func IsBinaryFile(data []byte) bool {
	var (
		identifier [8]byte
		buffer     *bytes.Buffer = bytes.NewBuffer(data)
	)
	//
	if _, err := buffer.Read(identifier[:]); err != nil {
		return false
	}
	//
	return identifier == QIRBINARY
}

// MarshalBinary converts the binary file into a sequence of bytes.
func (p *BinaryFile) MarshalBinary() ([]byte, error) {
	var (
		buffer     bytes.Buffer
		gobEncoder *gob.Encoder = gob.NewEncoder(&buffer)
	)
	//
	headerBytes, err := p.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	//
	buffer.Write(headerBytes)
	//
	if err := gobEncoder.Encode(p.Attributes); err != nil {
		return nil, &ir.SerializationError{Reason: "encoding attributes", Cause: err}
	}
	//
	if err := gobEncoder.Encode(&p.Program); err != nil {
		return nil, &ir.SerializationError{Reason: "encoding program", Cause: err}
	}
	//
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this binary file from a given set of data
// bytes.  This matches exactly the encoding above.
func (p *BinaryFile) UnmarshalBinary(data []byte) error {
	buffer := bytes.NewBuffer(data)
	//
	if err := p.Header.UnmarshalBinary(buffer); err != nil {
		return err
	}
	//
	if !p.Header.IsCompatible() {
		return fmt.Errorf("incompatible binary file (was v%d.%d, but expected v%d.%d or older)",
			p.Header.MajorVersion, p.Header.MinorVersion, FORMAT_MAJOR_VERSION, ir.CurrentVersion.Minor)
	}
	//
	decoder := gob.NewDecoder(buffer)
	//
	if err := decoder.Decode(&p.Attributes); err != nil {
		return &ir.SerializationError{Reason: "decoding attributes", Cause: err}
	}
	//
	if err := decoder.Decode(&p.Program); err != nil {
		return &ir.SerializationError{Reason: "decoding program", Cause: err}
	}
	//
	return nil
}

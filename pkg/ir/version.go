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

import "fmt"

// Version identifies a release of the core operation set.  Each operation
// variant records the version in which it was introduced; that version never
// changes once the variant has been released, and decoding a serialized
// value requires a core at least as new as the maximum over all contained
// variants.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// CurrentVersion is the operation-set version implemented by this core.
var CurrentVersion = Version{1, 20, 0}

// AtLeast reports whether this version is greater than or equal to the other
// under the usual semantic ordering.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	} else if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	//
	return v.Patch >= o.Patch
}

// Max returns the later of two versions.
func (v Version) Max(o Version) Version {
	if v.AtLeast(o) {
		return v
	}
	//
	return o
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IntroducedIn returns the version in which the variant with the given
// hqslang name was introduced, failing for unknown names.
func IntroducedIn(hqslang string) (Version, error) {
	if d, ok := descriptorsByName[hqslang]; ok {
		return d.Introduced, nil
	}
	//
	return Version{}, &VersionError{Name: hqslang}
}

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
package set

import (
	"cmp"
	"sort"
)

// SortedSet is an array of unique sorted values (i.e. no duplicates).
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns an empty sorted set.
func NewSortedSet[T cmp.Ordered]() *SortedSet[T] {
	return &SortedSet[T]{}
}

// SortedSetOf constructs a sorted set from an arbitrary (possibly duplicated,
// possibly unsorted) sequence of elements.
func SortedSetOf[T cmp.Ordered](elements ...T) *SortedSet[T] {
	s := NewSortedSet[T]()
	//
	for _, e := range elements {
		s.Insert(e)
	}
	//
	return s
}

// Contains returns true if a given element is in the set.
//
//nolint:revive
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set.
//
//nolint:revive
func (p *SortedSet[T]) Insert(element T) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != element {
		// No, item was not found
		ndata := make([]T, len(data)+1)
		copy(ndata, data[0:i])
		ndata[i] = element
		copy(ndata[i+1:], data[i:])
		*p = ndata
	}
}

// InsertAll inserts zero or more elements into this sorted set.
//
//nolint:revive
func (p *SortedSet[T]) InsertAll(elements ...T) {
	for _, e := range elements {
		p.Insert(e)
	}
}

// Union constructs a new sorted set containing the elements of both operands.
//
//nolint:revive
func (p *SortedSet[T]) Union(q *SortedSet[T]) *SortedSet[T] {
	r := NewSortedSet[T]()
	//
	r.InsertAll(*p...)
	r.InsertAll(*q...)
	//
	return r
}

// Iter ranges over the elements of this set in ascending order.
//
//nolint:revive
func (p *SortedSet[T]) Iter(fn func(T)) {
	for _, e := range *p {
		fn(e)
	}
}

// Len returns the cardinality of this set.
//
//nolint:revive
func (p *SortedSet[T]) Len() int {
	return len(*p)
}

// Slice returns the elements of this set in ascending order.  The returned
// slice is a copy and may be freely mutated.
//
//nolint:revive
func (p *SortedSet[T]) Slice() []T {
	data := make([]T, len(*p))
	copy(data, *p)
	//
	return data
}

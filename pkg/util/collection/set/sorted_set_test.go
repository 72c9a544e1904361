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
	"math/rand"
	"slices"
	"testing"
)

func Test_SortedSet_01(t *testing.T) {
	check_SortedSet_Insert(t, 5, 10)
}

func Test_SortedSet_02(t *testing.T) {
	// Really hammer it.
	for i := 0; i < 1000; i++ {
		check_SortedSet_Insert(t, 10, 32)
	}
}

func Test_SortedSet_03(t *testing.T) {
	check_SortedSet_Insert(t, 100, 256)
}

func Test_SortedSet_04(t *testing.T) {
	check_SortedSet_Insert(t, 10000, 1024)
}

func Test_SortedSet_05(t *testing.T) {
	s := SortedSetOf(3, 1, 2, 3, 1)
	//
	if s.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", s.Len())
	}
	//
	if !slices.Equal(s.Slice(), []int{1, 2, 3}) {
		t.Errorf("unexpected elements %v", s.Slice())
	}
}

func Test_SortedSet_06(t *testing.T) {
	l := SortedSetOf(1, 2, 3)
	r := SortedSetOf(3, 4, 5)
	u := l.Union(r)
	//
	if !slices.Equal(u.Slice(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("unexpected union %v", u.Slice())
	}
	// Operands untouched
	if l.Len() != 3 || r.Len() != 3 {
		t.Error("union should not modify its operands")
	}
}

func Test_SortedSet_07(t *testing.T) {
	s := SortedSetOf(2, 4, 6)
	//
	var visited []int
	//
	s.Iter(func(e int) { visited = append(visited, e) })
	//
	if !slices.Equal(visited, []int{2, 4, 6}) {
		t.Errorf("unexpected iteration order %v", visited)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SortedSet_Insert(t *testing.T, n uint, m uint) {
	set := NewSortedSet[uint]()
	items := make(map[uint]bool)
	//
	for i := uint(0); i < n; i++ {
		item := uint(rand.Intn(int(m)))
		items[item] = true
		set.Insert(item)
	}
	//
	if set.Len() != len(items) {
		t.Errorf("unexpected number of items (%d vs %d)", set.Len(), len(items))
	}
	//
	for i := uint(0); i < m; i++ {
		l := items[i]
		r := set.Contains(i)
		//
		if !l && r {
			t.Errorf("unexpected item %d", i)
		} else if l && !r {
			t.Errorf("missing item %d", i)
		}
	}
	// Check ordering
	if !slices.IsSorted(set.Slice()) {
		t.Errorf("items not sorted: %v", set.Slice())
	}
}

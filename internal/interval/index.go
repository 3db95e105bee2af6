// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Index maps disjoint closed intervals with endpoints in K to values of type
// V, and answers which interval contains a given point.
//
// A zero value is ready to use.
type Index[K Endpoint, V any] struct {
	// Keys in this tree are the ends of intervals.
	tree btree.Map[K, *Entry[K, V]]
}

// Entry is an interval in an [Index].
type Entry[K Endpoint, V any] struct {
	Start, End K // The interval range, inclusive.
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Get looks up the interval which contains point, if one exists.
func (m *Index[K, V]) Get(point K) (Entry[K, V], bool) {
	iter := m.tree.Iter()
	if !iter.Seek(point) || point < iter.Value().Start {
		// It is implicit already that point <= end.
		return Entry[K, V]{}, false
	}
	return *iter.Value(), true
}

// Insert adds [start, end] to the index. It returns false, leaving the index
// unchanged, if the new interval would overlap an existing one.
func (m *Index[K, V]) Insert(start, end K, value V) bool {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// The least interval whose end is at least start is the only one that
	// could overlap [start, end]: every later interval ends after it, and
	// they are disjoint.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().Start <= end {
		return false
	}

	m.tree.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
	return true
}

// Len returns the number of intervals in the index.
func (m *Index[K, V]) Len() int {
	return m.tree.Len()
}

// Entries returns an iterator over the intervals in this index, in order.
func (m *Index[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		m.tree.Scan(func(_ K, e *Entry[K, V]) bool {
			return yield(*e)
		})
	}
}

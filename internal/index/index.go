// Copyright 2025 Ian Lewis
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

package index

import (
	"slices"
	"sort"
)

// Index is a generic sorted array index. Values are ordered by the string key
// returned by the key function.
type Index[V any] struct {
	// items is sorted by key.
	items []V

	key func(V) string
	cmp func(string, string) int
}

// New creates an index from the given slice, key function, and comparison
// function. cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b or a and b are incomparable in the
// sense of a strict weak ordering. The sort is stable so values with equal
// keys keep their relative order.
func New[V any](items []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	sorted := make([]V, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(key(a), key(b))
	})

	return &Index[V]{
		items: sorted,
		key:   key,
		cmp:   cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// All returns all values in sorted order. The returned slice must not be
// modified.
func (idx *Index[V]) All() []V {
	return idx.items
}

// Search performs a binary search over the index and returns matching values.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return idx.cmp(query, idx.key(idx.items[i]))
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.items) && idx.cmp(query, idx.key(idx.items[j])) == 0; j++ {
	}
	return idx.items[i:j]
}

// Window returns at most take values starting after the first skip values.
// The window is empty when skip is at or past the end of the index.
func (idx *Index[V]) Window(skip, take int) []V {
	if skip < 0 || take <= 0 || skip >= len(idx.items) {
		return nil
	}
	end := len(idx.items)
	if take < end-skip {
		end = skip + take
	}
	return idx.items[skip:end]
}

// Drop returns a new index without its first n values.
func (idx *Index[V]) Drop(n int) *Index[V] {
	n = max(0, min(n, len(idx.items)))
	return &Index[V]{
		items: idx.items[n:],
		key:   idx.key,
		cmp:   idx.cmp,
	}
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "cmp"

// Search looks for the node with the given key in the tree.
// It returns the value if found, and a boolean indicating whether the key was found.
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	if n := tree.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (tree *Tree[K, V]) Contains(key K) bool {
	return tree.find(key) != nil
}

// Update calls fn with a pointer to the value stored under key so it can be
// changed in place. The key and the shape of the tree are left alone. It
// returns false, without calling fn, when key is absent.
func (tree *Tree[K, V]) Update(key K, fn func(value *V)) bool {
	n := tree.find(key)
	if n == nil {
		return false
	}
	fn(&n.value)
	return true
}

func (tree *Tree[K, V]) find(key K) *node[K, V] {
	n := tree.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the entry with the lowest key.
func (tree *Tree[K, V]) Min() (key K, value V, ok bool) {
	if n := tree.root.first(); n != nil {
		return n.key, n.value, true
	}
	return key, value, false
}

// Max returns the entry with the highest key.
func (tree *Tree[K, V]) Max() (key K, value V, ok bool) {
	if n := tree.root.last(); n != nil {
		return n.key, n.value, true
	}
	return key, value, false
}

// Ascend returns, in ascending order, every entry whose key satisfies
// low <= key < high.
func (tree *Tree[K, V]) Ascend(low, high K) []Entry[K, V] {
	var results []Entry[K, V]
	rangeSearch(tree.root, low, high, &results)
	return results
}

func rangeSearch[K cmp.Ordered, V any](n *node[K, V], low, high K, results *[]Entry[K, V]) {
	if n == nil {
		return
	}

	// Smaller keys can only be in range while n.key is above low.
	if n.key > low {
		rangeSearch(n.left, low, high, results)
	}

	if n.key >= low && n.key < high {
		*results = append(*results, n.entry())
	}

	if n.key < high {
		rangeSearch(n.right, low, high, results)
	}
}

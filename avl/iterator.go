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

import (
	"cmp"
	"iter"
)

// InOrder returns every entry in ascending key order. Each call builds a new
// slice; the tree is not modified.
func (tree *Tree[K, V]) InOrder() []Entry[K, V] {
	result := make([]Entry[K, V], 0, tree.size)
	for k, v := range tree.All() {
		result = append(result, Entry[K, V]{Key: k, Value: v})
	}
	return result
}

// Keys returns every key in ascending order.
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.size)
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// All yields every key and value in ascending key order. The tree must not
// be modified while the sequence is being consumed.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inOrderTraversal(tree.root, yield)
	}
}

// inOrderTraversal recurses to a depth bounded by the tree height and
// reports false once yield asks to stop.
func inOrderTraversal[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return inOrderTraversal(n.left, yield) &&
		yield(n.key, n.value) &&
		inOrderTraversal(n.right, yield)
}

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

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int // a leaf is 0
	left   *node[K, V]
	right  *node[K, V]
}

// Entry is a key and the value stored under it.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

func newLeaf[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, height: 0}
}

func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// first returns the lowest node of the subtree rooted at n.
func (n *node[K, V]) first() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the highest node of the subtree rooted at n.
func (n *node[K, V]) last() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

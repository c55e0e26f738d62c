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

// Tree is an AVL tree keyed by K holding one V per key.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{root: nil}
}

// Len returns the number of distinct keys in the tree.
func (tree *Tree[K, V]) Len() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, or -1 for an empty tree.
func (tree *Tree[K, V]) Height() int {
	return tree.getHeight(tree.root)
}

// Clear drops every node.
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}

func (tree *Tree[K, V]) getHeight(n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (tree *Tree[K, V]) updateHeight(n *node[K, V]) {
	n.height = 1 + max(tree.getHeight(n.left), tree.getHeight(n.right))
}

func (tree *Tree[K, V]) getBalanceFactor(n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return tree.getHeight(n.left) - tree.getHeight(n.right)
}

// rotateRight promotes pivot.left into pivot's place. The old pivot's height
// is recomputed before the promoted node's, which depends on it.
func (tree *Tree[K, V]) rotateRight(pivot *node[K, V]) *node[K, V] {
	top := pivot.left
	pivot.left = top.right
	top.right = pivot

	tree.updateHeight(pivot)
	tree.updateHeight(top)

	return top
}

// rotateLeft is the mirror of rotateRight.
func (tree *Tree[K, V]) rotateLeft(pivot *node[K, V]) *node[K, V] {
	top := pivot.right
	pivot.right = top.left
	top.left = pivot

	tree.updateHeight(pivot)
	tree.updateHeight(top)

	return top
}

// Insert stores value under key and reports whether the key was new. An
// existing key keeps its current value.
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	var added bool
	tree.root, added = tree.insertRecursive(tree.root, key, value)
	if added {
		tree.size++
	}
	return added
}

func (tree *Tree[K, V]) insertRecursive(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return newLeaf(key, value), true
	}

	var added bool
	switch {
	case key < n.key:
		n.left, added = tree.insertRecursive(n.left, key, value)
	case key > n.key:
		n.right, added = tree.insertRecursive(n.right, key, value)
	default:
		return n, false
	}
	if !added {
		return n, false
	}

	tree.updateHeight(n)

	balanceFactor := tree.getBalanceFactor(n)
	switch {
	case balanceFactor > 1 && key < n.left.key:
		return tree.rotateRight(n), true
	case balanceFactor < -1 && key > n.right.key:
		return tree.rotateLeft(n), true
	case balanceFactor > 1 && key > n.left.key:
		// Left-Right case
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n), true
	case balanceFactor < -1 && key < n.right.key:
		// Right-Left case
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n), true
	}

	return n, true
}

// Delete removes key and reports whether it was present.
func (tree *Tree[K, V]) Delete(key K) bool {
	var removed bool
	tree.root, removed = tree.deleteRecursive(tree.root, key)
	return removed
}

func (tree *Tree[K, V]) deleteRecursive(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = tree.deleteRecursive(n.left, key)
	case key > n.key:
		n.right, removed = tree.deleteRecursive(n.right, key)
	default:
		if n.left == nil || n.right == nil {
			tree.size--
			if n.left == nil {
				return n.right, true
			}
			return n.left, true
		}
		// Two children: take over the successor's entry and delete the
		// successor from the right subtree, which decrements size once.
		successor := n.right.first()
		n.key = successor.key
		n.value = successor.value
		n.right, removed = tree.deleteRecursive(n.right, successor.key)
	}
	if !removed {
		return n, false
	}

	tree.updateHeight(n)
	return tree.rebalance(n), true
}

// rebalance restores the height invariant at n after a deletion below it.
func (tree *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	balanceFactor := tree.getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(n.left) >= 0 {
			return tree.rotateRight(n)
		}
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(n.right) <= 0 {
			return tree.rotateLeft(n)
		}
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

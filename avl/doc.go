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

// Package avl is a height-balanced binary search tree mapping unique ordered
// keys to opaque values.
//
// Each node caches the height of the subtree rooted at it. An absent subtree
// has height -1, so a leaf has height 0. After every Insert and Delete the
// tree is a valid search tree and, for every node, the heights of its two
// subtrees differ by at most one. Search, Insert and Delete are O(log n).
//
// Insert is first-write-wins: inserting a key that is already present leaves
// the stored value untouched and reports false. Use Update to change the value
// stored under an existing key.
//
// A Tree is not safe for concurrent use. Guard the whole tree with a single
// mutex if it is shared between goroutines.
package avl

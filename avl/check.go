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

	"github.com/pkg/errors"
)

// Validate walks the whole tree and returns an error describing the first
// broken invariant: key ordering, balance, cached heights or the key count.
func (tree *Tree[K, V]) Validate() error {
	_, count, err := checkNode(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return errors.Errorf("size is %d but the tree holds %d nodes", tree.size, count)
	}
	return nil
}

// checkNode returns the real height and node count of the subtree rooted at
// n. Every key must lie strictly between lower and upper when they are set.
func checkNode[K cmp.Ordered, V any](n *node[K, V], lower, upper *K) (int, int, error) {
	if n == nil {
		return -1, 0, nil
	}
	if lower != nil && n.key <= *lower {
		return 0, 0, errors.Errorf("key %v is not above %v", n.key, *lower)
	}
	if upper != nil && n.key >= *upper {
		return 0, 0, errors.Errorf("key %v is not below %v", n.key, *upper)
	}

	lh, lc, err := checkNode(n.left, lower, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := checkNode(n.right, &n.key, upper)
	if err != nil {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, errors.Errorf("key %v caches height %d, actual %d", n.key, n.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, errors.Errorf("key %v has balance factor %d", n.key, bf)
	}
	return h, lc + rc + 1, nil
}

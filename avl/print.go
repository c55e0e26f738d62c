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
	"fmt"
	"io"
	"strings"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII drawing of the tree to w, right subtrees above their
// parent, each node annotated with its cached height and balance factor.
func (tree *Tree[K, V]) Fprint(w io.Writer) error {
	if tree.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return tree.printNode(w, tree.root, "", rootBranch)
}

// String returns the drawing produced by Fprint.
func (tree *Tree[K, V]) String() string {
	var b strings.Builder
	_ = tree.Fprint(&b)
	return b.String()
}

func (tree *Tree[K, V]) printNode(w io.Writer, n *node[K, V], prefix string, br branch) error {
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := tree.printNode(w, n.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v h=%d %+d\n", prefix, edge, n.key, n.height, tree.getBalanceFactor(n)); err != nil {
		return err
	}

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		return tree.printNode(w, n.left, prefix+pad, leftBranch)
	}
	return nil
}

var _ fmt.Stringer = (*Tree[int, struct{}])(nil)

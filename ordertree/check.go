// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"fmt"
)

// CheckUp - check the up links for consistency
func (tree *Tree) CheckUp() bool {
	return tree.checkup(tree.root, nilNode)
}

// internal: consistency checker
func (tree *Tree) checkup(p int32, up int32) bool {
	if nilNode == p {
		return true
	}
	if tree.nodes[p].up != up {
		fmt.Printf("fail at node: %d  actual: %d  expected: %d\n", tree.nodes[p].key, tree.nodes[p].up, up)
		return false
	}
	if !tree.checkup(tree.nodes[p].left, p) {
		return false
	}
	return tree.checkup(tree.nodes[p].right, p)
}

// CheckCounts - check the subtree node counters for consistency
func (tree *Tree) CheckCounts() bool {
	n, ok := tree.checkCounts(tree.root)
	return ok && n == tree.Count()
}

// internal: recount a sub-tree and compare against the stored counters
func (tree *Tree) checkCounts(p int32) (int, bool) {
	if nilNode == p {
		return 0, true
	}
	nl, okl := tree.checkCounts(tree.nodes[p].left)
	nr, okr := tree.checkCounts(tree.nodes[p].right)
	if !okl || !okr {
		return 0, false
	}
	if nl != tree.nodes[p].leftNodes || nr != tree.nodes[p].rightNodes {
		fmt.Printf("fail at node: %d  actual: (%d,%d)  expected: (%d,%d)\n",
			tree.nodes[p].key, tree.nodes[p].leftNodes, tree.nodes[p].rightNodes, nl, nr)
		return 0, false
	}
	return nl + nr + 1, true
}

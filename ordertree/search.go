// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// Exists - true if a node with this exact wealth value is present
func (tree *Tree) Exists(key uint64) bool {
	p, _ := tree.search(key)
	return nilNode != p
}

// Search - find the node for a wealth value
// also returns the zero-based in-order index of the node
func (tree *Tree) Search(key uint64) (Node, int, bool) {
	p, index := tree.search(key)
	return Node{tree: tree, ix: p}, index, nilNode != p
}

// Rank - one-based position of a wealth value among the distinct
// values currently present, counting only values less than or equal
// to it; zero if the value is absent
func (tree *Tree) Rank(key uint64) int {
	p, index := tree.search(key)
	if nilNode == p {
		return 0
	}
	return index + 1
}

// internal: locate a key, accumulating the in-order index on the way
// down
func (tree *Tree) search(key uint64) (int32, int) {
	p := tree.root
	index := 0
	for nilNode != p {
		switch {
		case tree.nodes[p].key > key:
			p = tree.nodes[p].left
		case tree.nodes[p].key < key:
			index += tree.nodes[p].leftNodes + 1
			p = tree.nodes[p].right
		default:
			return p, index + tree.nodes[p].leftNodes
		}
	}
	return nilNode, -1
}

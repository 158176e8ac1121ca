// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// Get - node at a zero-based in-order index
func (tree *Tree) Get(index int) (Node, bool) {
	if index < 0 || index >= tree.Count() {
		return Node{}, false
	}
	p := tree.root
	for nilNode != p {
		nl := tree.nodes[p].leftNodes
		switch {
		case index < nl:
			p = tree.nodes[p].left
		case index > nl:
			// skip left nodes + 1 for this node
			index -= nl + 1
			p = tree.nodes[p].right
		default:
			return Node{tree: tree, ix: p}, true
		}
	}
	return Node{}, false
}

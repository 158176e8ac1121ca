// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// Insert - add one identifier at a wealth value
//
// a new node is created only when the value is not already present,
// otherwise the identifier is attached to the existing node; the
// population always increases by one
//
// returns true if a new node was created
func (tree *Tree) Insert(key uint64, identifier uint32) bool {
	if p, _ := tree.search(key); nilNode != p {
		tree.nodes[p].identifiers = append(tree.nodes[p].identifiers, identifier)
		tree.population += 1
		return false
	}

	// allocate before descending so the arena cannot move
	// underneath the recursion
	n := tree.newNode(key, identifier)

	tree.root, _ = tree.insert(n, tree.root)
	tree.nodes[tree.root].up = nilNode
	tree.population += 1
	return true
}

// internal routine for insert
// n is always a freshly allocated node with a key not yet in the tree
func (tree *Tree) insert(n int32, p int32) (int32, bool) {
	if nilNode == p { // attach new node
		return n, true
	}

	h := false
	if tree.nodes[p].key > tree.nodes[n].key {
		var l int32
		l, h = tree.insert(n, tree.nodes[p].left)
		tree.nodes[p].left = l
		tree.nodes[p].leftNodes += 1
		if h {
			if nilNode != l {
				tree.nodes[l].up = p
			}

			// left branch has grown
			if 1 == tree.nodes[p].balance {
				tree.nodes[p].balance = 0
				h = false
			} else if 0 == tree.nodes[p].balance {
				tree.nodes[p].balance = -1
			} else { // balance == -1, rebalance
				p1 := tree.nodes[p].left
				if -1 == tree.nodes[p1].balance {
					// single LL rotation
					tree.nodes[p].left = tree.nodes[p1].right
					tree.nodes[p1].right = p

					tree.nodes[p].balance = 0

					nn := 1 + tree.nodes[p1].rightNodes + tree.nodes[p].rightNodes
					tree.nodes[p].leftNodes = tree.nodes[p1].rightNodes
					tree.nodes[p1].rightNodes = nn

					tree.nodes[p1].up = tree.nodes[p].up
					tree.nodes[p].up = p1
					if nilNode != tree.nodes[p].left {
						tree.nodes[tree.nodes[p].left].up = p
					}

					p = p1
				} else {
					// double LR rotation
					p2 := tree.nodes[p1].right
					tree.nodes[p1].right = tree.nodes[p2].left
					tree.nodes[p2].left = p1
					tree.nodes[p].left = tree.nodes[p2].right
					tree.nodes[p2].right = p
					if -1 == tree.nodes[p2].balance {
						tree.nodes[p].balance = 1
					} else {
						tree.nodes[p].balance = 0
					}
					if 1 == tree.nodes[p2].balance {
						tree.nodes[p1].balance = -1
					} else {
						tree.nodes[p1].balance = 0
					}

					nl := 1 + tree.nodes[p1].leftNodes + tree.nodes[p2].leftNodes
					nr := 1 + tree.nodes[p2].rightNodes + tree.nodes[p].rightNodes

					tree.nodes[p1].rightNodes = tree.nodes[p2].leftNodes
					tree.nodes[p].leftNodes = tree.nodes[p2].rightNodes

					tree.nodes[p2].leftNodes = nl
					tree.nodes[p2].rightNodes = nr

					if nilNode != tree.nodes[p].left {
						tree.nodes[tree.nodes[p].left].up = p
					}
					if nilNode != tree.nodes[p1].right {
						tree.nodes[tree.nodes[p1].right].up = p1
					}
					tree.nodes[p2].up = tree.nodes[p].up
					tree.nodes[p].up = p2
					tree.nodes[p1].up = p2

					p = p2
				}
				tree.nodes[p].balance = 0
				h = false
			}
		}
	} else {
		var r int32
		r, h = tree.insert(n, tree.nodes[p].right)
		tree.nodes[p].right = r
		tree.nodes[p].rightNodes += 1
		if h {
			if nilNode != r {
				tree.nodes[r].up = p
			}

			// right branch has grown
			if -1 == tree.nodes[p].balance {
				tree.nodes[p].balance = 0
				h = false
			} else if 0 == tree.nodes[p].balance {
				tree.nodes[p].balance = 1
			} else { // balance == +1, rebalance
				p1 := tree.nodes[p].right
				if 1 == tree.nodes[p1].balance {
					// single RR rotation
					tree.nodes[p].right = tree.nodes[p1].left
					tree.nodes[p1].left = p

					tree.nodes[p].balance = 0

					nn := 1 + tree.nodes[p].leftNodes + tree.nodes[p1].leftNodes
					tree.nodes[p].rightNodes = tree.nodes[p1].leftNodes
					tree.nodes[p1].leftNodes = nn

					tree.nodes[p1].up = tree.nodes[p].up
					tree.nodes[p].up = p1
					if nilNode != tree.nodes[p].right {
						tree.nodes[tree.nodes[p].right].up = p
					}

					p = p1
				} else {
					// double RL rotation
					p2 := tree.nodes[p1].left
					tree.nodes[p1].left = tree.nodes[p2].right
					tree.nodes[p2].right = p1
					tree.nodes[p].right = tree.nodes[p2].left
					tree.nodes[p2].left = p
					if 1 == tree.nodes[p2].balance {
						tree.nodes[p].balance = -1
					} else {
						tree.nodes[p].balance = 0
					}
					if -1 == tree.nodes[p2].balance {
						tree.nodes[p1].balance = 1
					} else {
						tree.nodes[p1].balance = 0
					}

					nl := 1 + tree.nodes[p].leftNodes + tree.nodes[p2].leftNodes
					nr := 1 + tree.nodes[p2].rightNodes + tree.nodes[p1].rightNodes

					tree.nodes[p].rightNodes = tree.nodes[p2].leftNodes
					tree.nodes[p1].leftNodes = tree.nodes[p2].rightNodes

					tree.nodes[p2].leftNodes = nl
					tree.nodes[p2].rightNodes = nr

					if nilNode != tree.nodes[p].right {
						tree.nodes[tree.nodes[p].right].up = p
					}
					if nilNode != tree.nodes[p1].left {
						tree.nodes[tree.nodes[p1].left].up = p1
					}
					tree.nodes[p2].up = tree.nodes[p].up
					tree.nodes[p].up = p2
					tree.nodes[p1].up = p2

					p = p2
				}
				tree.nodes[p].balance = 0
				h = false
			}
		}
	}
	return p, h
}

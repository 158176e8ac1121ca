// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// First - the node with the lowest wealth value
func (tree *Tree) First() (Node, bool) {
	return Node{tree: tree, ix: tree.first(tree.root)}.valid()
}

// internal: lowest node in a sub-tree
func (tree *Tree) first(p int32) int32 {
	if nilNode == p {
		return nilNode
	}
	for nilNode != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// Last - the node with the highest wealth value
func (tree *Tree) Last() (Node, bool) {
	return Node{tree: tree, ix: tree.last(tree.root)}.valid()
}

// internal: highest node in a sub-tree
func (tree *Tree) last(p int32) int32 {
	if nilNode == p {
		return nilNode
	}
	for nilNode != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}

// Next - the node with the next highest wealth value, false at the
// end of the tree
func (p Node) Next() (Node, bool) {
	tree := p.tree
	ix := p.ix
	if nilNode != tree.nodes[ix].right {
		return Node{tree: tree, ix: tree.first(tree.nodes[ix].right)}.valid()
	}
	key := tree.nodes[ix].key
	for {
		ix = tree.nodes[ix].up
		if nilNode == ix {
			return Node{}, false
		}
		if tree.nodes[ix].key > key {
			return Node{tree: tree, ix: ix}.valid()
		}
	}
}

// Prev - the node with the next lowest wealth value, false at the
// start of the tree
func (p Node) Prev() (Node, bool) {
	tree := p.tree
	ix := p.ix
	if nilNode != tree.nodes[ix].left {
		return Node{tree: tree, ix: tree.last(tree.nodes[ix].left)}.valid()
	}
	key := tree.nodes[ix].key
	for {
		ix = tree.nodes[ix].up
		if nilNode == ix {
			return Node{}, false
		}
		if tree.nodes[ix].key < key {
			return Node{tree: tree, ix: ix}.valid()
		}
	}
}

// internal: fold a possibly missing node into the (Node, bool) form
func (p Node) valid() (Node, bool) {
	return p, nilNode != p.ix && nil != p.tree
}

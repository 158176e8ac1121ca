// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// marker for a missing child/parent link
const nilNode = int32(-1)

// a node in the arena
type node struct {
	left        int32    // left sub-tree
	right       int32    // right sub-tree
	up          int32    // parent node
	leftNodes   int      // nodes in left sub-tree
	rightNodes  int      // nodes in right sub-tree
	balance     int8     // -1, 0, +1
	key         uint64   // wealth value for ordering
	identifiers []uint32 // identifiers issued at this exact value
}

// Tree - type to hold the root node of a tree
type Tree struct {
	nodes      []node
	root       int32
	population int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: nil,
		root:  nilNode,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nilNode == tree.root
}

// Count - number of distinct wealth values currently in the tree
func (tree *Tree) Count() int {
	return len(tree.nodes)
}

// Population - total identifiers held across all nodes
func (tree *Tree) Population() int {
	return tree.population
}

// allocate a new node in the arena
func (tree *Tree) newNode(key uint64, identifier uint32) int32 {
	n := int32(len(tree.nodes))
	tree.nodes = append(tree.nodes, node{
		left:        nilNode,
		right:       nilNode,
		up:          nilNode,
		balance:     0,
		key:         key,
		identifiers: []uint32{identifier},
	})
	return n
}

// Node - a stable handle onto one tree node
type Node struct {
	tree *Tree
	ix   int32
}

// Key - read the wealth value from a node
func (p Node) Key() uint64 {
	return p.tree.nodes[p.ix].key
}

// Identifiers - all identifiers issued at this node's wealth value
func (p Node) Identifiers() []uint32 {
	return p.tree.nodes[p.ix].identifiers
}

// Parent - parent node, false at the root
func (p Node) Parent() (Node, bool) {
	up := p.tree.nodes[p.ix].up
	return Node{tree: p.tree, ix: up}, nilNode != up
}

// Root - return the root node of the tree
func (tree *Tree) Root() (Node, bool) {
	return Node{tree: tree, ix: tree.root}, nilNode != tree.root
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordertree - an AVL balanced tree over wealth values,
// augmented with subtree node counts so that the in-order rank of any
// key is available in O(log n)
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Nodes live in a growing arena and link to each other by stable
// integer indices; rotations rewrite indices in place.  The tree is
// insert-only: identities are never withdrawn, so there is no delete
// and the arena never shrinks.  Repeated insertion of the same wealth
// value attaches the new identifier to the existing node, so the node
// count tracks distinct values while the population tracks elements.
package ordertree

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree_test

import (
	"crypto/rand"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/rankmint/rankmintd/ordertree"
)

func TestListShort(t *testing.T) {
	addList := []uint64{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []uint64{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doTraverse(t, addList)
	doGet(t, addList)

	tree := ordertree.New()
	for i, key := range addList {
		tree.Insert(key, uint32(i+1))
	}
	if tree.Population() != len(addList) {
		t.Fatalf("population: actual: %d  expected: %d", tree.Population(), len(addList))
	}
	node, _, ok := tree.Search(1042)
	if !ok {
		t.Fatal("search: 1042 not found")
	}
	if len(node.Identifiers()) != 17 {
		t.Fatalf("identifiers at 1042: actual: %d  expected: 17", len(node.Identifiers()))
	}
}

func TestListLong(t *testing.T) {
	addList := []uint64{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
		8579, 1012, 5935, 8278, 5761,
		1871, 6257, 2649, 8643, 1239,
	}
	doTraverse(t, addList)
	doGet(t, addList)
}

// a large random insertion sequence to exercise all rotation cases
func TestListRandom(t *testing.T) {
	tree := ordertree.New()

	inserted := make(map[uint64]struct{})
	buffer := make([]byte, 2)
	for i := 0; i < 5000; i += 1 {
		_, err := rand.Read(buffer)
		if nil != err {
			t.Fatalf("rand.Read error: %s", err)
		}
		key := uint64(binary.BigEndian.Uint16(buffer))
		added := tree.Insert(key, uint32(i+1))

		_, exists := inserted[key]
		if added == exists {
			t.Fatalf("insert: %d  added: %v  expected: %v", key, added, !exists)
		}
		inserted[key] = struct{}{}

		if tree.Population() != i+1 {
			t.Fatalf("population: actual: %d  expected: %d", tree.Population(), i+1)
		}
		if tree.Count() != len(inserted) {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(inserted))
		}
	}

	if !tree.CheckUp() {
		t.Fatal("tree CheckUp failed")
	}
	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
}

// rank of a lower wealth value is always below the rank of a higher
// one
func TestRankMonotonic(t *testing.T) {
	addList := []uint64{
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
	}
	tree := ordertree.New()
	for i, key := range addList {
		tree.Insert(key, uint32(i+1))
	}

	sorted := append([]uint64{}, addList...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i, key := range sorted {
		if tree.Rank(key) != i+1 {
			t.Fatalf("rank: %d  actual: %d  expected: %d", key, tree.Rank(key), i+1)
		}
	}
	for i := 1; i < len(sorted); i += 1 {
		if tree.Rank(sorted[i-1]) >= tree.Rank(sorted[i]) {
			t.Fatalf("rank order violated: %d ≥ %d", sorted[i-1], sorted[i])
		}
	}

	if tree.Rank(3) != 0 {
		t.Fatalf("rank of absent key: actual: %d  expected: 0", tree.Rank(3))
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []uint64) {

	unique := make(map[uint64]struct{})
	tree := ordertree.New()
	for i, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, uint32(i+1))
	}

	expected := make([]uint64, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	p, ok := tree.First()
	if !ok {
		t.Fatal("no first item")
	}

	n := 0
	for i := 0; ok; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p, ok = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p, ok = tree.Last()
	if !ok {
		t.Fatal("no last item")
	}

	n = 0
	for i := len(expected) - 1; ok; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p, ok = p.Prev()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
	if !tree.CheckUp() {
		t.Fatal("tree CheckUp failed")
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []uint64) {

	unique := make(map[uint64]struct{})
	tree := ordertree.New()
	for i, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, uint32(i+1))
	}

	expected := make([]uint64, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node, ok := tree.Get(index)
		if !ok {
			t.Fatalf("[%d] key: %d not in tree", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %d but found: %d", index, key, node.Key())
		}
		_, index1, ok := tree.Search(key)
		if !ok {
			t.Fatalf("[%d]: search: %d not found", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %d index: %d expected: %d", index, key, index1, index)
		}
		if tree.Rank(key) != index+1 {
			t.Errorf("[%d]: rank: %d actual: %d expected: %d", index, key, tree.Rank(key), index+1)
		}
	}

	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
}

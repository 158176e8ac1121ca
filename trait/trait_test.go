// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trait_test

import (
	"testing"

	"github.com/rankmint/rankmintd/trait"
)

func TestBucket(t *testing.T) {
	testCases := []struct {
		rank       int
		population int
		expected   int
	}{
		{rank: 1, population: 1, expected: 11},  // sole participant
		{rank: 1, population: 2, expected: 1},   // poorest of two
		{rank: 2, population: 2, expected: 11},  // richest of two
		{rank: 1, population: 101, expected: 1}, // 0th percentile
		{rank: 51, population: 101, expected: 6},
		{rank: 101, population: 101, expected: 11}, // 100th percentile
		{rank: 6, population: 11, expected: 6},
		{rank: 10, population: 11, expected: 10},
		{rank: 3, population: 8, expected: 3}, // floor(200/7) = 28 → bucket 3
	}

	for i, testCase := range testCases {
		bucket := trait.Bucket(testCase.rank, testCase.population)
		if bucket != testCase.expected {
			t.Errorf("%d: Bucket(%d, %d): actual: %d  expected: %d",
				i, testCase.rank, testCase.population, bucket, testCase.expected)
		}
	}
}

// every valid (rank, population) pair must land inside [1, 11]
func TestBucketBounds(t *testing.T) {
	for population := 1; population <= 300; population += 1 {
		for rank := 1; rank <= population; rank += 1 {
			bucket := trait.Bucket(rank, population)
			if bucket < trait.MinimumBucket || bucket > trait.MaximumBucket {
				t.Fatalf("Bucket(%d, %d) out of range: %d", rank, population, bucket)
			}
		}
	}
}

func TestName(t *testing.T) {
	if trait.Name(123, 7) != "7/123" {
		t.Fatalf("name: actual: %q  expected: %q", trait.Name(123, 7), "7/123")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trait - derive the rarity bucket for an identity
//
// The bucket is a pure function of the wealth value's rank and the
// index population at the moment of issuance; later growth of the
// index never changes an already resolved bucket.
package trait

import (
	"fmt"
)

// bucket range
const (
	MinimumBucket = 1
	MaximumBucket = 11 // only when the percentile rounds to 100
)

// Bucket - resolve the rarity bucket from a one-based rank and the
// total element population of the index
//
// the caller's own entry is excluded from the population for scale
// normalisation, so a sole participant lands in the top bucket
func Bucket(rank int, population int) int {
	others := population - 1
	percentile := 100
	if others > 0 {
		percentile = 100 * (rank - 1) / others
	}
	return (percentile-percentile%10)/10 + 1
}

// Name - deterministic metadata name for an identity
func Name(identifier uint32, bucket int) string {
	return fmt.Sprintf("%d/%d", bucket, identifier)
}

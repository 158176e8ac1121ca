// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 100)
	assert.NoError(t, ratelimit.Limit(limiter), "single request")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 100)

	assert.NoError(t, ratelimit.LimitN(limiter, 5, 10), "batch request")

	// an out-of-range count is still throttled, then rejected
	err := ratelimit.LimitN(limiter, 0, 10)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	err = ratelimit.LimitN(limiter, 11, 10)
	assert.Equal(t, fault.InvalidCount, err, "oversize count")
	assert.True(t, fault.IsErrInvalid(err), "error class")
}

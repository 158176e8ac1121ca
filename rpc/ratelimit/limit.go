// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/rankmint/rankmintd/fault"
)

// Limit - throttle one request against a per-service limiter
//
// the caller blocks until the limiter grants a slot; a reservation
// that can never be satisfied rejects the request outright
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - throttle a batch request weighted by its item count
//
// a count outside 1..maximumCount still costs one slot, so malformed
// requests cannot bypass the throttle, then reports the bad count
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter.ReserveN(time.Now(), count))
}

func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

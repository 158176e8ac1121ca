// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer

import (
	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
)

// Claim - pay out accrued royalties to a matching payout address
//
// callable by anyone; only entries whose payout address equals the
// caller are drained
func (issuer *globalDataType) Claim(caller address.Address) (uint64, []error) {
	issuer.Lock()
	defer issuer.Unlock()

	if !issuer.initialised {
		return 0, []error{fault.NotInitialised}
	}
	if err := caller.Validate(); nil != err {
		return 0, []error{err}
	}

	paid, errs := issuer.handles.Registry.Claim(caller, issuer.handles.Transfer)
	if paid > 0 {
		issuer.log.Infof("claimed: %d  by: %s", paid, caller)
	}
	for _, err := range errs {
		issuer.log.Warnf("claim by %s: %s", caller, err)
	}
	return paid, errs
}

// WealthOf - read-only balance oracle passthrough
func (issuer *globalDataType) WealthOf(owner address.Address) (uint64, error) {
	issuer.RLock()
	defer issuer.RUnlock()

	if !issuer.initialised {
		return 0, fault.NotInitialised
	}
	return issuer.handles.Wealth.BalanceOf(owner)
}

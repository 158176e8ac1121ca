// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer

import (
	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/allowlist"
	"github.com/rankmint/rankmintd/fault"
)

// SetSale - open or close the public sale
func (issuer *globalDataType) SetSale(caller address.Address, active bool) error {
	issuer.Lock()
	defer issuer.Unlock()

	if !issuer.initialised {
		return fault.NotInitialised
	}
	if !issuer.handles.IsAdministrator(caller) {
		return fault.NotAdministrator
	}

	issuer.settings.PublicSaleActive = active
	issuer.log.Infof("public sale active: %v", active)
	return nil
}

// SetFee - adjust the fee computation
//
// a change that would leave the fee dividing by zero is rejected
func (issuer *globalDataType) SetFee(caller address.Address, waived bool, divisor uint64, minimum uint64) error {
	issuer.Lock()
	defer issuer.Unlock()

	if !issuer.initialised {
		return fault.NotInitialised
	}
	if !issuer.handles.IsAdministrator(caller) {
		return fault.NotAdministrator
	}
	if !waived && 0 == divisor {
		return fault.DivisorIsZero
	}

	issuer.settings.FeeWaived = waived
	issuer.settings.FeeDivisor = divisor
	issuer.settings.MinimumFee = minimum
	issuer.log.Infof("fee: waived: %v  divisor: %d  minimum: %d", waived, divisor, minimum)
	return nil
}

// Register - add one allowlist entry
func (issuer *globalDataType) Register(caller address.Address, royaltyPercent uint64, supplyCap int, minEligibleBalance uint64, oracle allowlist.BalanceOracle, payout address.Address) error {
	issuer.Lock()
	defer issuer.Unlock()

	if !issuer.initialised {
		return fault.NotInitialised
	}
	if !issuer.handles.IsAdministrator(caller) {
		return fault.NotAdministrator
	}

	err := issuer.handles.Registry.Register(royaltyPercent, supplyCap, minEligibleBalance, oracle, payout)
	if nil != err {
		return err
	}
	issuer.log.Infof("registered allowlist entry: %d  royalty: %d%%  cap: %d",
		issuer.handles.Registry.Count()-1, royaltyPercent, supplyCap)
	return nil
}

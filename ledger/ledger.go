// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accrued fee balances awaiting disbursement
//
// Balances only ever grow through Accrue and drain through Send,
// which zeroes the balance before attempting delivery and restores it
// exactly on failure.  A destination can therefore never observe a
// balance that is also still available for a later payout.
package ledger

import (
	"github.com/rankmint/rankmintd/address"
)

// TransferFunc - host settlement call
//
// an error return means the destination rejected the payout; the
// caller's balance is restored and the payout is retried at the next
// eligible trigger
type TransferFunc func(to address.Address, amount uint64) error

// Ledger - undisbursed balances for the two fixed parties
type Ledger struct {
	teamAccrued     uint64
	donationAccrued uint64
	team            address.Address
	donation        address.Address
}

// New - create an empty ledger with its two fixed destinations
func New(team address.Address, donation address.Address) *Ledger {
	return &Ledger{
		team:     team,
		donation: donation,
	}
}

// Accrue - add one issuance's splits to the undisbursed balances
func (ledger *Ledger) Accrue(team uint64, donation uint64) {
	ledger.teamAccrued += team
	ledger.donationAccrued += donation
}

// TeamAccrued - undisbursed team balance
func (ledger *Ledger) TeamAccrued() uint64 {
	return ledger.teamAccrued
}

// DonationAccrued - undisbursed donation balance
func (ledger *Ledger) DonationAccrued() uint64 {
	return ledger.donationAccrued
}

// Disburse - drain both balances to their destinations
//
// each failed transfer restores its own originating balance and is
// reported, but never affects the other balance or the issuance that
// triggered the drain
func (ledger *Ledger) Disburse(transfer TransferFunc) []error {
	errs := []error(nil)
	if err := Send(&ledger.teamAccrued, ledger.team, transfer); nil != err {
		errs = append(errs, err)
	}
	if err := Send(&ledger.donationAccrued, ledger.donation, transfer); nil != err {
		errs = append(errs, err)
	}
	return errs
}

// Send - zero a balance, attempt delivery, restore on failure
//
// the shared payout primitive for disbursement and royalty claims; a
// zero balance is a successful no-op
func Send(balance *uint64, to address.Address, transfer TransferFunc) error {
	amount := *balance
	if 0 == amount {
		return nil
	}
	*balance = 0
	if err := transfer(to, amount); nil != err {
		*balance = amount
		return err
	}
	return nil
}

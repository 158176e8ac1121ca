// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - host settlement backing
//
// Keeps the host balance view used for wealth and eligibility checks
// and a journal of every completed payout.  A payout credits the
// destination's balance, so drained fees stay visible to later wealth
// queries.
package payment

import (
	"encoding/binary"
	"sync"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/storage"
)

// next free journal sequence number
var sequenceKey = []byte("N")

// PayoutRecord - one completed payout
type PayoutRecord struct {
	Sequence uint64          `json:"sequence"`
	To       address.Address `json:"to"`
	Amount   uint64          `json:"amount"`
}

// Payment - interface for settlement
type Payment interface {
	BalanceOf(owner address.Address) (uint64, error)
	Credit(owner address.Address, amount uint64) error
	Transfer(to address.Address, amount uint64) error
	Payouts() []PayoutRecord
}

// the mutex serializes every read-modify-write on the pools: credits
// arrive straight from RPC goroutines while disbursements run under
// the issuer lock, and the two must not interleave on one balance
type payment struct {
	sync.Mutex
	poolBalances storage.Handle
	poolPayouts  storage.Handle
}

var data payment

// Initialise - attach the storage pools
func Initialise(balances storage.Handle, payouts storage.Handle) {
	data = payment{
		poolBalances: balances,
		poolPayouts:  payouts,
	}
}

// Get - return the payment interface
func Get() Payment {
	return &data
}

// BalanceOf - current host balance of an address
func (p *payment) BalanceOf(owner address.Address) (uint64, error) {
	if err := owner.Validate(); nil != err {
		return 0, err
	}
	p.Lock()
	defer p.Unlock()
	balance, _ := p.poolBalances.GetN([]byte(owner))
	return balance, nil
}

// Credit - add to an address's host balance
func (p *payment) Credit(owner address.Address, amount uint64) error {
	if err := owner.Validate(); nil != err {
		return err
	}
	p.Lock()
	defer p.Unlock()
	p.credit(owner, amount)
	return nil
}

// internal: credit with the lock already held
func (p *payment) credit(owner address.Address, amount uint64) {
	balance, _ := p.poolBalances.GetN([]byte(owner))
	p.poolBalances.PutN([]byte(owner), balance+amount)
}

// Transfer - deliver a payout and journal it
//
// an invalid destination is a rejection: the caller restores the
// originating balance and retries later
func (p *payment) Transfer(to address.Address, amount uint64) error {
	if err := to.Validate(); nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()

	sequence, _ := p.poolPayouts.GetN(sequenceKey)

	key := make([]byte, 9)
	key[0] = 'R'
	binary.BigEndian.PutUint64(key[1:], sequence)

	value := make([]byte, 8, 8+len(to))
	binary.BigEndian.PutUint64(value, amount)
	value = append(value, to...)

	p.poolPayouts.Put(key, value)
	p.poolPayouts.PutN(sequenceKey, sequence+1)

	p.credit(to, amount)
	return nil
}

// Payouts - the journal of completed payouts in sequence order
func (p *payment) Payouts() []PayoutRecord {
	p.Lock()
	defer p.Unlock()
	records := []PayoutRecord(nil)
	p.poolPayouts.Scan(func(key []byte, value []byte) bool {
		if 9 != len(key) || 'R' != key[0] {
			return true
		}
		records = append(records, PayoutRecord{
			Sequence: binary.BigEndian.Uint64(key[1:]),
			To:       address.Address(value[8:]),
			Amount:   binary.BigEndian.Uint64(value[:8]),
		})
		return true
	})
	return records
}

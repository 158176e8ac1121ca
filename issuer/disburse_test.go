// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/ownership"
)

// every 50th identifier drains the fee ledger to the two fixed
// destinations
func TestDisburseAtInterval(t *testing.T) {
	f := setup(t, publicSale)
	defer teardown()

	// each issue: wealth 1000 → fee 10 → team 5, donation 3
	for i := 1; i <= 49; i += 1 {
		_, err := issuer.Get().Issue(caller(i), 1000)
		assert.NoError(t, err, "issue")
	}

	assert.Equal(t, uint64(5*49), f.ledger.TeamAccrued(), "team accrual before the boundary")
	assert.Equal(t, uint64(3*49), f.ledger.DonationAccrued(), "donation accrual before the boundary")
	assert.Zero(t, f.host.received[teamAddress], "no payout before the boundary")

	_, err := issuer.Get().Issue(caller(50), 1000)
	assert.NoError(t, err, "50th issue")

	assert.Zero(t, f.ledger.TeamAccrued(), "team balance drained")
	assert.Zero(t, f.ledger.DonationAccrued(), "donation balance drained")
	assert.Equal(t, uint64(5*50), f.host.received[teamAddress], "team payout")
	assert.Equal(t, uint64(3*50), f.host.received[donationAddress], "donation payout")
}

// a rejected payout keeps the balance for the next boundary and never
// fails the issuance itself
func TestDisburseFailureRetained(t *testing.T) {
	f := setup(t, publicSale)
	defer teardown()

	f.host.reject[teamAddress] = true
	f.host.reject[donationAddress] = true

	for i := 1; i <= 50; i += 1 {
		_, err := issuer.Get().Issue(caller(i), 1000)
		assert.NoError(t, err, "issue")
	}

	// both transfers failed: balances retained in full
	assert.Equal(t, uint64(5*50), f.ledger.TeamAccrued(), "team balance retained")
	assert.Equal(t, uint64(3*50), f.ledger.DonationAccrued(), "donation balance retained")
	assert.Zero(t, f.host.received[teamAddress], "no team payout")

	// destination recovers: the next boundary drains everything
	f.host.reject[teamAddress] = false
	f.host.reject[donationAddress] = false

	for i := 51; i <= 100; i += 1 {
		_, err := issuer.Get().Issue(caller(i), 1000)
		assert.NoError(t, err, "issue")
	}

	assert.Zero(t, f.ledger.TeamAccrued(), "team balance drained on retry")
	assert.Equal(t, uint64(5*100), f.host.received[teamAddress], "team payout includes the retained balance")
	assert.Equal(t, uint64(3*100), f.host.received[donationAddress], "donation payout includes the retained balance")
}

// royalty claims drain matching entries only
func TestClaim(t *testing.T) {
	f := setup(t, publicSale)
	defer teardown()

	err := issuer.Get().Register(administrator, 10, 100, 1000000, oracle{}, holderPayout)
	assert.NoError(t, err, "register")

	// fee 10 → royalty 1 per issue
	for i := 1; i <= 5; i += 1 {
		_, err := issuer.Get().Issue(caller(i), 1000)
		assert.NoError(t, err, "issue")
	}

	paid, errs := issuer.Get().Claim(holderPayout)
	assert.Empty(t, errs, "claim errors")
	assert.Equal(t, uint64(5), paid, "claimed royalty")
	assert.Equal(t, uint64(5), f.host.received[holderPayout], "received royalty")

	// nothing left for a second claim
	paid, errs = issuer.Get().Claim(holderPayout)
	assert.Empty(t, errs, "second claim errors")
	assert.Zero(t, paid, "second claim")

	// unrelated callers claim nothing
	paid, _ = issuer.Get().Claim(caller(1))
	assert.Zero(t, paid, "unrelated claim")
}

// a replayed journal restores the index, counter, and supply ceiling
func TestJournalReplay(t *testing.T) {
	f := setup(t, publicSale)
	defer teardown()

	wealths := []uint64{500, 100, 900}
	for i, w := range wealths {
		_, err := issuer.Get().Issue(caller(i+1), w)
		assert.NoError(t, err, "issue")
	}
	teardown()

	// restart with the same journal
	err := issuer.Initialise(publicSale, issuer.Handles{
		Ownership:    ownership.Get(),
		Wealth:       f.host,
		Transfer:     f.host.transfer,
		Registry:     f.registry,
		Ledger:       f.ledger,
		IndexJournal: f.journal,
		IsAdministrator: func(caller address.Address) bool {
			return administrator == caller
		},
	})
	assert.NoError(t, err, "reinitialise")

	assert.Equal(t, 3, issuer.Get().Issued(), "issued counter after replay")
	assert.Equal(t, 3, issuer.Get().Population(), "population after replay")
	assert.Equal(t, 3, issuer.Get().Distinct(), "distinct after replay")

	// the next identifier continues the sequence
	info, err := issuer.Get().Issue(caller(9), 1000)
	assert.NoError(t, err, "issue after replay")
	assert.Equal(t, uint32(4), info.Identifier, "identifier after replay")
}

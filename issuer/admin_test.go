// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/allowlist"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/ledger"
	"github.com/rankmint/rankmintd/ownership"
)

func TestSetSale(t *testing.T) {
	setup(t, issuer.Settings{
		PublicSaleActive: false,
		FeeWaived:        true,
	})
	defer teardown()

	// only the administrator can open the sale
	err := issuer.Get().SetSale(caller(1), true)
	assert.Equal(t, fault.NotAdministrator, err, "non-admin set sale")
	assert.False(t, issuer.Get().Settings().PublicSaleActive, "sale still locked")

	err = issuer.Get().SetSale(administrator, true)
	assert.NoError(t, err, "admin set sale")
	assert.True(t, issuer.Get().Settings().PublicSaleActive, "sale open")

	// a locked sale rejects ordinary callers again
	err = issuer.Get().SetSale(administrator, false)
	assert.NoError(t, err, "admin lock sale")
	_, err = issuer.Get().Issue(caller(1), 1000)
	assert.Equal(t, fault.SaleNotActive, err, "issue while locked")
}

func TestSetFee(t *testing.T) {
	setup(t, publicSale)
	defer teardown()

	err := issuer.Get().SetFee(caller(1), false, 50, 5)
	assert.Equal(t, fault.NotAdministrator, err, "non-admin set fee")

	// a divisor of zero with the waiver off would break fee
	// computation
	err = issuer.Get().SetFee(administrator, false, 0, 5)
	assert.Equal(t, fault.DivisorIsZero, err, "zero divisor")
	assert.Equal(t, uint64(100), issuer.Get().Settings().FeeDivisor, "divisor unchanged")

	// zero divisor is fine while the fee is waived
	err = issuer.Get().SetFee(administrator, true, 0, 0)
	assert.NoError(t, err, "waived zero divisor")

	info, err := issuer.Get().Issue(caller(1), 0)
	assert.NoError(t, err, "waived issue")
	assert.Zero(t, info.Fee, "waived fee")

	err = issuer.Get().SetFee(administrator, false, 50, 5)
	assert.NoError(t, err, "admin set fee")

	info, err = issuer.Get().Issue(caller(2), 1000)
	assert.NoError(t, err, "issue after set fee")
	assert.Equal(t, uint64(20), info.Fee, "fee with new divisor")
}

func TestRegisterGate(t *testing.T) {
	f := setup(t, publicSale)
	defer teardown()

	err := issuer.Get().Register(caller(1), 5, 10, 1, oracle{}, holderPayout)
	assert.Equal(t, fault.NotAdministrator, err, "non-admin register")
	assert.Zero(t, f.registry.Count(), "registry unchanged")

	err = issuer.Get().Register(administrator, 21, 10, 1, oracle{}, holderPayout)
	assert.Equal(t, fault.RoyaltyPoolExhausted, err, "over-pool register")

	err = issuer.Get().Register(administrator, 20, 10, 1, oracle{}, holderPayout)
	assert.NoError(t, err, "admin register")
	assert.Equal(t, 1, f.registry.Count(), "registry count")
	assert.Zero(t, f.registry.PoolRemaining(), "pool drained")
}

// the supply ceiling is enforced before any mutation
func TestSupplyExhausted(t *testing.T) {
	ownership.Initialise(memoryPool{}, memoryPool{})

	// a journal already at the ceiling
	journal := memoryPool{}
	journal.PutN([]byte{0x00, 0x00, 0x27, 0x10}, 12345) // identifier 10000

	h := newHost()
	err := issuer.Initialise(publicSale, issuer.Handles{
		Ownership:    ownership.Get(),
		Wealth:       h,
		Transfer:     h.transfer,
		Registry:     allowlist.New(),
		Ledger:       ledger.New(teamAddress, donationAddress),
		IndexJournal: journal,
		IsAdministrator: func(a address.Address) bool {
			return administrator == a
		},
	})
	assert.NoError(t, err, "initialise")
	defer teardown()

	assert.Equal(t, issuer.MaximumIdentities, issuer.Get().Issued(), "issued at ceiling")

	_, err = issuer.Get().Issue(caller(1), 1000)
	assert.Equal(t, fault.SupplyExhausted, err, "issue past the ceiling")
	assert.False(t, ownership.Get().OwnsAny(caller(1)), "no mutation")
}

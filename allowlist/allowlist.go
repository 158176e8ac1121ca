// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allowlist - registry of collaborator communities
//
// Each registered entry grants pre-sale eligibility to holders of
// some third party asset, verified through that entry's balance
// oracle, and carries a royalty share of every issuance fee.  Entries
// are append-only: once registered only the two issuance-owned
// counters (minted, accrued royalty) ever change.
package allowlist

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/ledger"
)

// PoolCeiling - total royalty percent available across all entries
const PoolCeiling = 20

// oracle balance cache tuning
const (
	balanceCacheExpiry = 30 * time.Second
	balanceCacheSweep  = 5 * time.Minute
)

// BalanceOracle - read-only view of a third party ledger
type BalanceOracle interface {
	BalanceOf(owner address.Address) (uint64, error)
}

// Entry - one registered community
type Entry struct {
	royaltyPercent     uint64
	supplyCap          int
	minEligibleBalance uint64
	mintedSoFar        int
	accruedRoyalty     uint64
	oracle             BalanceOracle
	payout             address.Address
}

// RoyaltyPercent - the entry's share of each issuance fee
func (entry *Entry) RoyaltyPercent() uint64 { return entry.royaltyPercent }

// SupplyCap - maximum issuances this entry may claim
func (entry *Entry) SupplyCap() int { return entry.supplyCap }

// Minted - issuances already claimed through this entry
func (entry *Entry) Minted() int { return entry.mintedSoFar }

// AccruedRoyalty - undisbursed royalty balance
func (entry *Entry) AccruedRoyalty() uint64 { return entry.accruedRoyalty }

// Payout - address allowed to claim the accrued royalty
func (entry *Entry) Payout() address.Address { return entry.payout }

// Registry - ordered, append-only list of entries
type Registry struct {
	entries       []*Entry
	poolRemaining uint64
	balances      *gocache.Cache
}

// New - create an empty registry with a full royalty pool
func New() *Registry {
	return &Registry{
		poolRemaining: PoolCeiling,
		balances:      gocache.New(balanceCacheExpiry, balanceCacheSweep),
	}
}

// Count - number of registered entries
func (registry *Registry) Count() int {
	return len(registry.entries)
}

// PoolRemaining - royalty percent still available for registration
func (registry *Registry) PoolRemaining() uint64 {
	return registry.poolRemaining
}

// Entry - access a registered entry by priority position
func (registry *Registry) Entry(position int) (*Entry, bool) {
	if position < 0 || position >= len(registry.entries) {
		return nil, false
	}
	return registry.entries[position], true
}

// Register - append a new entry
//
// administrator gating is the caller's responsibility; this only
// enforces the royalty pool and parameter validity
func (registry *Registry) Register(royaltyPercent uint64, supplyCap int, minEligibleBalance uint64, oracle BalanceOracle, payout address.Address) error {
	if royaltyPercent > 100 {
		return fault.InvalidRoyaltyPercent
	}
	if royaltyPercent > registry.poolRemaining {
		return fault.RoyaltyPoolExhausted
	}
	if supplyCap <= 0 {
		return fault.InvalidSupplyCap
	}
	if nil == oracle {
		return fault.MissingParameters
	}
	if err := payout.Validate(); nil != err {
		return err
	}

	registry.poolRemaining -= royaltyPercent
	registry.entries = append(registry.entries, &Entry{
		royaltyPercent:     royaltyPercent,
		supplyCap:          supplyCap,
		minEligibleBalance: minEligibleBalance,
		oracle:             oracle,
		payout:             payout,
	})
	return nil
}

// Eligible - first entry, in priority order, whose oracle grants the
// caller pre-sale access and whose supply cap is not yet reached
//
// an oracle failure only skips its own entry
func (registry *Registry) Eligible(caller address.Address) (int, bool) {
	for position, entry := range registry.entries {
		if entry.mintedSoFar >= entry.supplyCap {
			continue
		}
		balance, err := registry.balanceOf(position, entry, caller)
		if nil != err {
			continue
		}
		if balance >= entry.minEligibleBalance {
			return position, true
		}
	}
	return 0, false
}

// MarkMinted - count one issuance against an entry's supply cap
func (registry *Registry) MarkMinted(position int) {
	entry := registry.entries[position]
	if entry.mintedSoFar >= entry.supplyCap {
		// unreachable: Eligible requires a free slot
		panic(fmt.Sprintf("allowlist: supply cap overrun for entry: %d", position))
	}
	entry.mintedSoFar += 1
}

// AccrueRoyalties - add every entry's share of one issuance fee
// returns the total amount accrued
func (registry *Registry) AccrueRoyalties(fee uint64) uint64 {
	total := uint64(0)
	for _, entry := range registry.entries {
		share := fee * entry.royaltyPercent / 100
		entry.accruedRoyalty += share
		total += share
	}
	return total
}

// Claim - pay out every entry whose payout address matches the caller
//
// all entries are scanned even after a match so one address may
// control several entries; a failed transfer restores that entry's
// balance and the scan continues
func (registry *Registry) Claim(caller address.Address, transfer ledger.TransferFunc) (uint64, []error) {
	paid := uint64(0)
	errs := []error(nil)
	for _, entry := range registry.entries {
		if entry.payout != caller {
			continue
		}
		amount := entry.accruedRoyalty
		if err := ledger.Send(&entry.accruedRoyalty, caller, transfer); nil != err {
			errs = append(errs, err)
			continue
		}
		paid += amount
	}
	return paid, errs
}

// internal: oracle lookup with a short lived cache
func (registry *Registry) balanceOf(position int, entry *Entry, caller address.Address) (uint64, error) {
	key := fmt.Sprintf("%d:%s", position, caller)
	if cached, ok := registry.balances.Get(key); ok {
		return cached.(uint64), nil
	}
	balance, err := entry.oracle.BalanceOf(caller)
	if nil != err {
		return 0, err
	}
	registry.balances.Set(key, balance, gocache.DefaultExpiration)
	return balance, nil
}

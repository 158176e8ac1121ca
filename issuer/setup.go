// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issuer - the sequential issuance state machine
//
// One issuance call runs to completion under a single lock: validate,
// charge, mint, index, resolve, accrue, disburse.  Every validation
// failure aborts before any mutation; only the periodic disbursement
// is allowed to fail without rolling the call back.
package issuer

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/allowlist"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/ledger"
	"github.com/rankmint/rankmintd/ordertree"
	"github.com/rankmint/rankmintd/ownership"
	"github.com/rankmint/rankmintd/storage"
)

// issuance limits
const (
	MaximumIdentities = 10000 // hard ceiling on issued identifiers
	disburseInterval  = 50    // drain the fee ledger on identifiers divisible by this
)

// fee split percentages; together with the allowlist royalty pool
// ceiling of 20 the splits can never exceed the fee
const (
	teamSharePercent     = 50
	donationSharePercent = 30
)

// Settings - the administrator controlled issuance parameters
type Settings struct {
	PublicSaleActive bool
	FeeWaived        bool
	FeeDivisor       uint64
	MinimumFee       uint64
}

// WealthOracle - host balance view used for the fee base
type WealthOracle interface {
	BalanceOf(owner address.Address) (uint64, error)
}

// Handles - the collaborators the state machine drives
type Handles struct {
	Ownership       ownership.Ownership
	Wealth          WealthOracle
	Transfer        ledger.TransferFunc
	Registry        *allowlist.Registry
	Ledger          *ledger.Ledger
	IndexJournal    storage.Handle // optional: persists the rank index across restarts
	IsAdministrator func(caller address.Address) bool
}

// IssueInfo - result of one successful issuance
type IssueInfo struct {
	Identifier uint32
	Rank       int
	Bucket     int
	Name       string
	Fee        uint64
}

// Issuer - the operations served to the RPC layer
type Issuer interface {
	Issue(caller address.Address, paid uint64) (IssueInfo, error)
	Claim(caller address.Address) (uint64, []error)
	WealthOf(owner address.Address) (uint64, error)
	Settings() Settings
	SetSale(caller address.Address, active bool) error
	SetFee(caller address.Address, waived bool, divisor uint64, minimum uint64) error
	Register(caller address.Address, royaltyPercent uint64, supplyCap int, minEligibleBalance uint64, oracle allowlist.BalanceOracle, payout address.Address) error
	Issued() int
	Population() int
	Distinct() int
}

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	settings    Settings
	tree        *ordertree.Tree
	issued      uint32 // identifiers handed out so far
	handles     Handles
	initialised bool
}

var globalData globalDataType

// Initialise - set up the issuance state machine
//
// replays the index journal, if one is attached, so the rank index
// and issuance counter survive a restart
func Initialise(settings Settings, handles Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if !settings.FeeWaived && 0 == settings.FeeDivisor {
		return fault.DivisorIsZero
	}
	if nil == handles.Ownership || nil == handles.Wealth ||
		nil == handles.Transfer || nil == handles.Registry ||
		nil == handles.Ledger || nil == handles.IsAdministrator {
		return fault.MissingParameters
	}

	globalData.log = logger.New("issuer")
	globalData.log.Info("starting…")

	globalData.settings = settings
	globalData.handles = handles
	globalData.tree = ordertree.New()
	globalData.issued = 0

	if nil != handles.IndexJournal {
		replayed := 0
		handles.IndexJournal.Scan(func(key []byte, value []byte) bool {
			identifier := identifierFromKey(key)
			wealth, ok := handles.IndexJournal.GetN(key)
			if !ok {
				logger.Panicf("issuer: journal record %x is truncated", key)
			}
			globalData.tree.Insert(wealth, identifier)
			if identifier > globalData.issued {
				globalData.issued = identifier
			}
			replayed += 1
			return true
		})
		if replayed > 0 {
			globalData.log.Infof("replayed: %d journal records  next identifier: %d", replayed, globalData.issued+1)
		}
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the state machine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	globalData.tree = nil
	return nil
}

// Get - return the issuer interface
func Get() Issuer {
	return &globalData
}

// Issued - identifiers handed out so far
func (issuer *globalDataType) Issued() int {
	issuer.RLock()
	defer issuer.RUnlock()
	return int(issuer.issued)
}

// Population - elements in the rank index
func (issuer *globalDataType) Population() int {
	issuer.RLock()
	defer issuer.RUnlock()
	if nil == issuer.tree {
		return 0
	}
	return issuer.tree.Population()
}

// Distinct - distinct wealth values in the rank index
func (issuer *globalDataType) Distinct() int {
	issuer.RLock()
	defer issuer.RUnlock()
	if nil == issuer.tree {
		return 0
	}
	return issuer.tree.Count()
}

// Settings - a copy of the current settings
func (issuer *globalDataType) Settings() Settings {
	issuer.RLock()
	defer issuer.RUnlock()
	return issuer.settings
}

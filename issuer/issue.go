// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/trait"
)

// Issue - run one complete issuance for a caller
//
// paid is the amount attached to the call; the fee base is the
// caller's pre-existing balance plus this payment
func (issuer *globalDataType) Issue(caller address.Address, paid uint64) (IssueInfo, error) {
	issuer.Lock()
	defer issuer.Unlock()

	info := IssueInfo{}

	if !issuer.initialised {
		return info, fault.NotInitialised
	}

	log := issuer.log
	handles := issuer.handles

	// Validating
	if err := caller.Validate(); nil != err {
		return info, err
	}

	position, eligible := handles.Registry.Eligible(caller)
	if !issuer.settings.PublicSaleActive && !eligible {
		return info, fault.SaleNotActive
	}
	if issuer.issued >= MaximumIdentities {
		return info, fault.SupplyExhausted
	}
	if handles.Ownership.OwnsAny(caller) {
		return info, fault.AlreadyOwnsIdentity
	}

	// Charging: allowlisted callers issue free of charge
	balance, err := handles.Wealth.BalanceOf(caller)
	if nil != err {
		return info, err
	}
	wealth := balance + paid

	fee := uint64(0)
	if !issuer.settings.FeeWaived && !eligible {
		if 0 == issuer.settings.FeeDivisor {
			// unreachable: guarded at Initialise and SetFee
			logger.Panicf("issuer: fee divisor is zero")
		}
		fee = wealth / issuer.settings.FeeDivisor
		if fee < issuer.settings.MinimumFee {
			fee = issuer.settings.MinimumFee
		}
		if paid < fee {
			return info, fault.InsufficientPayment
		}
	}

	// Minting: the first mutation; a failure here aborts the call
	// with nothing changed
	identifier := issuer.issued + 1
	if err := handles.Ownership.Mint(caller, identifier); nil != err {
		return info, err
	}

	// Indexing
	issuer.tree.Insert(wealth, identifier)
	if nil != handles.IndexJournal {
		handles.IndexJournal.PutN(identifierKey(identifier), wealth)
	}

	// Resolving
	rank := issuer.tree.Rank(wealth)
	bucket := trait.Bucket(rank, issuer.tree.Population())
	name, err := handles.Ownership.AssignName(identifier, bucket)
	if nil != err {
		// unreachable: the identity was minted in this call
		logger.Panicf("issuer: naming freshly minted identity %d failed: %s", identifier, err)
	}
	issuer.issued = identifier

	// Accruing
	if fee > 0 {
		team := fee * teamSharePercent / 100
		donation := fee * donationSharePercent / 100
		handles.Ledger.Accrue(team, donation)
		royalties := handles.Registry.AccrueRoyalties(fee)
		log.Debugf("issue: %d  fee: %d  split: %d/%d/%d", identifier, fee, team, donation, royalties)
	}
	if eligible {
		handles.Registry.MarkMinted(position)
	}

	// Disbursing: contained failures, retried at the next interval
	if 0 == identifier%disburseInterval {
		for _, err := range handles.Ledger.Disburse(handles.Transfer) {
			log.Warnf("disburse after issue %d: %s", identifier, err)
		}
	}

	log.Infof("issued: %d  owner: %s  rank: %d  bucket: %d", identifier, caller, rank, bucket)

	info.Identifier = identifier
	info.Rank = rank
	info.Bucket = bucket
	info.Name = name
	info.Fee = fee
	return info, nil
}

// internal: big endian identifier key for the index journal
func identifierKey(identifier uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, identifier)
	return key
}

// internal: inverse of identifierKey
func identifierFromKey(key []byte) uint32 {
	if 4 != len(key) {
		logger.Panicf("issuer: journal key %x has invalid length", key)
	}
	return binary.BigEndian.Uint32(key)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/ownership"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitIdentity = 200
	rateBurstIdentity = 100
)

// Identity - type for the RPC
type Identity struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ownership ownership.Ownership
}

// GetArguments - arguments to fetch one identity record
type GetArguments struct {
	Identifier uint32 `json:"identifier"`
}

// GetReply - one issued identity
type GetReply struct {
	Record ownership.Record `json:"record"`
}

// OwnedArguments - arguments to look up an address's identity
type OwnedArguments struct {
	Owner string `json:"owner"`
}

func New(log *logger.L, os ownership.Ownership) *Identity {
	return &Identity{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitIdentity, rateBurstIdentity),
		Ownership: os,
	}
}

// Get - fetch the record for an issued identifier
func (identity *Identity) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(identity.Limiter); nil != err {
		return err
	}

	record, err := identity.Ownership.Fetch(arguments.Identifier)
	if nil != err {
		return err
	}
	reply.Record = record

	return nil
}

// Owned - fetch the record for the identity held by an address
func (identity *Identity) Owned(arguments *OwnedArguments, reply *GetReply) error {

	if err := ratelimit.Limit(identity.Limiter); nil != err {
		return err
	}

	identifier, ok := identity.Ownership.Owned(address.Address(arguments.Owner))
	if !ok {
		return fault.IdentityNotFound
	}

	record, err := identity.Ownership.Fetch(identifier)
	if nil != err {
		return err
	}
	reply.Record = record

	return nil
}

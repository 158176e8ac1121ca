// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wealth

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitWealth = 200
	rateBurstWealth = 100
)

// Wealth - type for the RPC
type Wealth struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Issuer  issuer.Issuer
}

// ReadArguments - arguments for a balance read
type ReadArguments struct {
	Owner string `json:"owner"`
}

// ReadReply - result of a balance read
type ReadReply struct {
	Balance uint64 `json:"balance,string"`
}

func New(log *logger.L, is issuer.Issuer) *Wealth {
	return &Wealth{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitWealth, rateBurstWealth),
		Issuer:  is,
	}
}

// Read - current host balance for an address
func (wealth *Wealth) Read(arguments *ReadArguments, reply *ReadReply) error {

	if err := ratelimit.Limit(wealth.Limiter); nil != err {
		return err
	}

	balance, err := wealth.Issuer.WealthOf(address.Address(arguments.Owner))
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}

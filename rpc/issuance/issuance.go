// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitIssuance = 200
	rateBurstIssuance = 100
)

// Issuance - type for the RPC
type Issuance struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Issuer  issuer.Issuer
}

// RequestArguments - arguments for an issuance
type RequestArguments struct {
	Owner string `json:"owner"`
	Paid  uint64 `json:"paid,string"`
}

// RequestReply - result of a successful issuance
type RequestReply struct {
	Identifier uint32 `json:"identifier"`
	Rank       int    `json:"rank"`
	Bucket     int    `json:"bucket"`
	Name       string `json:"name"`
	Fee        uint64 `json:"fee,string"`
}

func New(log *logger.L, is issuer.Issuer) *Issuance {
	return &Issuance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitIssuance, rateBurstIssuance),
		Issuer:  is,
	}
}

// Request - issue the next identity to the caller
func (issuance *Issuance) Request(arguments *RequestArguments, reply *RequestReply) error {

	if err := ratelimit.Limit(issuance.Limiter); nil != err {
		return err
	}

	log := issuance.Log
	log.Infof("Issuance.Request: %+v", arguments)

	info, err := issuance.Issuer.Issue(address.Address(arguments.Owner), arguments.Paid)
	if nil != err {
		return err
	}

	reply.Identifier = info.Identifier
	reply.Rank = info.Rank
	reply.Bucket = info.Bucket
	reply.Name = info.Name
	reply.Fee = info.Fee

	return nil
}

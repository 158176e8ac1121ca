// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package royalty

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitRoyalty = 100
	rateBurstRoyalty = 50
)

// Royalty - type for the RPC
type Royalty struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Issuer  issuer.Issuer
}

// ClaimArguments - arguments for a royalty claim
type ClaimArguments struct {
	Owner string `json:"owner"`
}

// ClaimReply - result of a royalty claim
//
// failed transfers are reported but leave their accruals intact so
// the claim can be retried
type ClaimReply struct {
	Claimed  uint64   `json:"claimed,string"`
	Failures []string `json:"failures,omitempty"`
}

func New(log *logger.L, is issuer.Issuer) *Royalty {
	return &Royalty{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRoyalty, rateBurstRoyalty),
		Issuer:  is,
	}
}

// Claim - pay out accrued royalties for the caller's allowlist entries
func (royalty *Royalty) Claim(arguments *ClaimArguments, reply *ClaimReply) error {

	if err := ratelimit.Limit(royalty.Limiter); nil != err {
		return err
	}

	log := royalty.Log
	log.Infof("Royalty.Claim: %+v", arguments)

	claimed, failures := royalty.Issuer.Claim(address.Address(arguments.Owner))

	reply.Claimed = claimed
	for _, err := range failures {
		reply.Failures = append(reply.Failures, err.Error())
	}

	return nil
}

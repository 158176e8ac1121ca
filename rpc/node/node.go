// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/counter"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/payment"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for payout listing
const maximumPayoutList = 100

// Node - type for the RPC
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Issuer  issuer.Issuer
	Payment payment.Payment
	counter *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Issued           int    `json:"issued"`
	Population       int    `json:"population"`
	Distinct         int    `json:"distinct"`
	PublicSaleActive bool   `json:"publicSaleActive"`
	FeeWaived        bool   `json:"feeWaived"`
	RPCs             uint64 `json:"rpcs"`
	Version          string `json:"Version"`
	Uptime           string `json:"uptime"`
}

// PayoutsArguments - arguments for payout listing
type PayoutsArguments struct {
	Start uint64 `json:"Start,string"`
	Count int    `json:"count"`
}

// PayoutsReply - a page of the payout journal
type PayoutsReply struct {
	Payouts   []payment.PayoutRecord `json:"payouts"`
	NextStart uint64                 `json:"nextStart,string"`
}

func New(log *logger.L, is issuer.Issuer, pay payment.Payment, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Issuer:  is,
		Payment: pay,
		counter: counter,
	}
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	settings := node.Issuer.Settings()

	reply.Issued = node.Issuer.Issued()
	reply.Population = node.Issuer.Population()
	reply.Distinct = node.Issuer.Distinct()
	reply.PublicSaleActive = settings.PublicSaleActive
	reply.FeeWaived = settings.FeeWaived
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}

// Payouts - list a page of the completed payout journal
func (node *Node) Payouts(arguments *PayoutsArguments, reply *PayoutsReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumPayoutList); nil != err {
		return err
	}

	records := node.Payment.Payouts()

	for _, record := range records {
		if record.Sequence < arguments.Start {
			continue
		}
		if len(reply.Payouts) >= arguments.Count {
			break
		}
		reply.Payouts = append(reply.Payouts, record)
		reply.NextStart = record.Sequence + 1
	}

	return nil
}

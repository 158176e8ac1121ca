// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/allowlist"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/payment"
	"github.com/rankmint/rankmintd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 20
	rateBurstAdmin = 10
)

// Admin - type for the RPC
//
// every operation is gated on the administrator address; the gate for
// sale and fee changes lives in the issuer, the rest are checked here
type Admin struct {
	Log             *logger.L
	Limiter         *rate.Limiter
	Issuer          issuer.Issuer
	Payment         payment.Payment
	Oracle          allowlist.BalanceOracle
	IsAdministrator func(caller address.Address) bool
}

// SetSaleArguments - arguments to open or close the public sale
type SetSaleArguments struct {
	Caller string `json:"caller"`
	Active bool   `json:"active"`
}

// SetFeeArguments - arguments to change the fee parameters
type SetFeeArguments struct {
	Caller     string `json:"caller"`
	FeeWaived  bool   `json:"fee_waived"`
	FeeDivisor uint64 `json:"fee_divisor,string"`
	MinimumFee uint64 `json:"minimum_fee,string"`
}

// RegisterArguments - arguments to add an allowlist entry
type RegisterArguments struct {
	Caller         string `json:"caller"`
	RoyaltyPercent uint64 `json:"royalty_percent,string"`
	SupplyCap      int    `json:"supply_cap"`
	MinimumBalance uint64 `json:"minimum_balance,string"`
	Payout         string `json:"payout"`
}

// CreditArguments - arguments to credit a host balance
type CreditArguments struct {
	Caller string `json:"caller"`
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount,string"`
}

// Reply - generic acknowledgement
type Reply struct {
	OK bool `json:"ok"`
}

func New(
	log *logger.L,
	is issuer.Issuer,
	pay payment.Payment,
	oracle allowlist.BalanceOracle,
	isAdministrator func(caller address.Address) bool,
) *Admin {
	return &Admin{
		Log:             log,
		Limiter:         rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Issuer:          is,
		Payment:         pay,
		Oracle:          oracle,
		IsAdministrator: isAdministrator,
	}
}

// SetSale - open or close the public sale
func (admin *Admin) SetSale(arguments *SetSaleArguments, reply *Reply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.SetSale: %+v", arguments)

	err := admin.Issuer.SetSale(address.Address(arguments.Caller), arguments.Active)
	if nil != err {
		return err
	}
	reply.OK = true

	return nil
}

// SetFee - change the fee divisor, minimum and waiver
func (admin *Admin) SetFee(arguments *SetFeeArguments, reply *Reply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.SetFee: %+v", arguments)

	err := admin.Issuer.SetFee(
		address.Address(arguments.Caller),
		arguments.FeeWaived,
		arguments.FeeDivisor,
		arguments.MinimumFee,
	)
	if nil != err {
		return err
	}
	reply.OK = true

	return nil
}

// Register - add an allowlist entry with a royalty share
func (admin *Admin) Register(arguments *RegisterArguments, reply *Reply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.Register: %+v", arguments)

	err := admin.Issuer.Register(
		address.Address(arguments.Caller),
		arguments.RoyaltyPercent,
		arguments.SupplyCap,
		arguments.MinimumBalance,
		admin.Oracle,
		address.Address(arguments.Payout),
	)
	if nil != err {
		return err
	}
	reply.OK = true

	return nil
}

// Credit - credit an address's host balance
func (admin *Admin) Credit(arguments *CreditArguments, reply *Reply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.Credit: %+v", arguments)

	if !admin.IsAdministrator(address.Address(arguments.Caller)) {
		return fault.NotAdministrator
	}

	err := admin.Payment.Credit(address.Address(arguments.Owner), arguments.Amount)
	if nil != err {
		return err
	}
	reply.OK = true

	return nil
}

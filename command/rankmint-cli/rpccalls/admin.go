// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/rankmint/rankmintd/rpc/admin"
)

// SetSaleData - parameters for opening or closing the sale
type SetSaleData struct {
	Caller string
	Active bool
}

// SetFeeData - parameters for a fee change
type SetFeeData struct {
	Caller     string
	FeeWaived  bool
	FeeDivisor uint64
	MinimumFee uint64
}

// RegisterData - parameters for a new allowlist entry
type RegisterData struct {
	Caller         string
	RoyaltyPercent uint64
	SupplyCap      int
	MinimumBalance uint64
	Payout         string
}

// CreditData - parameters for a balance credit
type CreditData struct {
	Caller string
	Owner  string
	Amount uint64
}

// SetSale - open or close the public sale
func (client *Client) SetSale(saleConfig *SetSaleData) (*admin.Reply, error) {

	arguments := admin.SetSaleArguments{
		Caller: saleConfig.Caller,
		Active: saleConfig.Active,
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "set sale request: %+v\n", arguments)
	}

	var reply admin.Reply
	if err := client.client.Call("Admin.SetSale", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// SetFee - change the fee divisor, minimum and waiver
func (client *Client) SetFee(feeConfig *SetFeeData) (*admin.Reply, error) {

	arguments := admin.SetFeeArguments{
		Caller:     feeConfig.Caller,
		FeeWaived:  feeConfig.FeeWaived,
		FeeDivisor: feeConfig.FeeDivisor,
		MinimumFee: feeConfig.MinimumFee,
	}

	var reply admin.Reply
	if err := client.client.Call("Admin.SetFee", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Register - add an allowlist entry with a royalty share
func (client *Client) Register(registerConfig *RegisterData) (*admin.Reply, error) {

	arguments := admin.RegisterArguments{
		Caller:         registerConfig.Caller,
		RoyaltyPercent: registerConfig.RoyaltyPercent,
		SupplyCap:      registerConfig.SupplyCap,
		MinimumBalance: registerConfig.MinimumBalance,
		Payout:         registerConfig.Payout,
	}

	var reply admin.Reply
	if err := client.client.Call("Admin.Register", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Credit - credit an address's host balance
func (client *Client) Credit(creditConfig *CreditData) (*admin.Reply, error) {

	arguments := admin.CreditArguments{
		Caller: creditConfig.Caller,
		Owner:  creditConfig.Owner,
		Amount: creditConfig.Amount,
	}

	var reply admin.Reply
	if err := client.client.Call("Admin.Credit", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

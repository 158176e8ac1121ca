// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/rankmint/rankmintd/rpc/node"
)

// GetInfo - request status from rankmintd
func (client *Client) GetInfo() (*node.InfoReply, error) {

	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetPayouts - list a page of the completed payout journal
func (client *Client) GetPayouts(start uint64, count int) (*node.PayoutsReply, error) {

	arguments := node.PayoutsArguments{
		Start: start,
		Count: count,
	}

	var reply node.PayoutsReply
	if err := client.client.Call("Node.Payouts", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

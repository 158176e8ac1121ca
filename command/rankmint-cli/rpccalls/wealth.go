// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/rankmint/rankmintd/rpc/identity"
	"github.com/rankmint/rankmintd/rpc/wealth"
)

// Wealth - current host balance of an address
func (client *Client) Wealth(owner string) (*wealth.ReadReply, error) {

	arguments := wealth.ReadArguments{
		Owner: owner,
	}

	var reply wealth.ReadReply
	if err := client.client.Call("Wealth.Read", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Identity - fetch the record for an issued identifier
func (client *Client) Identity(identifier uint32) (*identity.GetReply, error) {

	arguments := identity.GetArguments{
		Identifier: identifier,
	}

	var reply identity.GetReply
	if err := client.client.Call("Identity.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Owned - fetch the record for the identity held by an address
func (client *Client) Owned(owner string) (*identity.GetReply, error) {

	arguments := identity.OwnedArguments{
		Owner: owner,
	}

	var reply identity.GetReply
	if err := client.client.Call("Identity.Owned", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/rankmint/rankmintd/rpc/royalty"
)

// Claim - pay out accrued royalties for the caller
func (client *Client) Claim(owner string) (*royalty.ClaimReply, error) {

	arguments := royalty.ClaimArguments{
		Owner: owner,
	}

	var reply royalty.ClaimReply
	if err := client.client.Call("Royalty.Claim", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

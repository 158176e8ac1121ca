// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/rankmint/rankmintd/rpc/issuance"
)

// IssueData - parameters for an issuance request
type IssueData struct {
	Owner string
	Paid  uint64
}

// Issue - request the next identity
func (client *Client) Issue(issueConfig *IssueData) (*issuance.RequestReply, error) {

	arguments := issuance.RequestArguments{
		Owner: issueConfig.Owner,
		Paid:  issueConfig.Paid,
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "issue request: %+v\n", arguments)
	}

	var reply issuance.RequestReply
	if err := client.client.Call("Issuance.Request", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

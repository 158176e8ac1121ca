// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rankmint/rankmintd/command/rankmint-cli/rpccalls"
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		return fmt.Errorf("missing owner address")
	}

	paid := c.Uint64("paid")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "paid: %d\n", paid)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Issue(&rpccalls.IssueData{
		Owner: owner,
		Paid:  paid,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

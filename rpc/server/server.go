// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/counter"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/ownership"
	"github.com/rankmint/rankmintd/payment"
	"github.com/rankmint/rankmintd/rpc/admin"
	"github.com/rankmint/rankmintd/rpc/identity"
	"github.com/rankmint/rankmintd/rpc/issuance"
	"github.com/rankmint/rankmintd/rpc/node"
	"github.com/rankmint/rankmintd/rpc/royalty"
	"github.com/rankmint/rankmintd/rpc/wealth"
)

// Create - register all services onto a fresh RPC server
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	isAdministrator func(caller address.Address) bool,
) *rpc.Server {

	start := time.Now().UTC()

	is := issuer.Get()
	os := ownership.Get()
	pay := payment.Get()

	server := rpc.NewServer()

	_ = server.Register(issuance.New(log, is))
	_ = server.Register(royalty.New(log, is))
	_ = server.Register(wealth.New(log, is))
	_ = server.Register(identity.New(log, os))
	_ = server.Register(admin.New(log, is, pay, pay, isAdministrator))
	_ = server.Register(node.New(log, is, pay, start, version, rpcCount))

	return server
}

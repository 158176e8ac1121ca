// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the daemon's Lua configuration file
package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
)

// RPCType - configuration file data for the client RPC
type RPCType struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
}

// IssuanceType - initial issuance settings
type IssuanceType struct {
	PublicSaleActive bool   `gluamapper:"public_sale_active" json:"public_sale_active"`
	FeeWaived        bool   `gluamapper:"fee_waived" json:"fee_waived"`
	FeeDivisor       uint64 `gluamapper:"fee_divisor" json:"fee_divisor"`
	MinimumFee       uint64 `gluamapper:"minimum_fee" json:"minimum_fee"`
}

// AllowlistType - one allowlist entry registered at start up
//
// the eligibility oracle for configured entries is the daemon's own
// host balance view
type AllowlistType struct {
	RoyaltyPercent uint64 `gluamapper:"royalty_percent" json:"royalty_percent"`
	SupplyCap      int    `gluamapper:"supply_cap" json:"supply_cap"`
	MinimumBalance uint64 `gluamapper:"minimum_balance" json:"minimum_balance"`
	Payout         string `gluamapper:"payout" json:"payout"`
}

// Configuration - the daemon's configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Administrator string               `gluamapper:"administrator" json:"administrator"`
	Team          string               `gluamapper:"team" json:"team"`
	Donation      string               `gluamapper:"donation" json:"donation"`
	ClientRPC     RPCType              `gluamapper:"client_rpc" json:"client_rpc"`
	Issuance      IssuanceType         `gluamapper:"issuance" json:"issuance"`
	Allowlist     []AllowlistType      `gluamapper:"allowlist" json:"allowlist"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read and validate a configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory: filepath.Dir(fileName),
		Issuance: IssuanceType{
			FeeDivisor: 100,
		},
		ClientRPC: RPCType{
			MaximumConnections: 100,
		},
		Logging: logger.Configuration{
			Size:  1048576,
			Count: 10,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	// all relative paths are relative to the data directory
	if !filepath.IsAbs(options.DataDirectory) {
		options.DataDirectory = filepath.Join(filepath.Dir(fileName), options.DataDirectory)
	}
	if info, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !info.IsDir() {
		return nil, fault.ProcessError("data directory is not a directory")
	}
	if "" == options.Logging.Directory {
		options.Logging.Directory = options.DataDirectory
	}
	if "" == options.Logging.File {
		options.Logging.File = "rankmintd.log"
	}

	if err := address.Address(options.Administrator).Validate(); nil != err {
		return nil, fault.InvalidAddress
	}
	if err := address.Address(options.Team).Validate(); nil != err {
		return nil, fault.InvalidAddress
	}
	if err := address.Address(options.Donation).Validate(); nil != err {
		return nil, fault.InvalidAddress
	}

	if !options.Issuance.FeeWaived && 0 == options.Issuance.FeeDivisor {
		return nil, fault.DivisorIsZero
	}

	if 0 == len(options.ClientRPC.Listen) {
		return nil, fault.InvalidListenAddress
	}

	return options, nil
}

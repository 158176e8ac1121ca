// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankmint/rankmintd/configuration"
)

const testingDirName = "testing-configuration"

const sampleConfiguration = `
local M = {}

M.data_directory = "."

M.administrator = "admin.example"
M.team = "team.example"
M.donation = "donate.example"

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2150",
    },
}

M.issuance = {
    public_sale_active = true,
    fee_waived = false,
    fee_divisor = 100,
    minimum_fee = 10,
}

M.allowlist = {
    {
        royalty_percent = 5,
        supply_cap = 100,
        minimum_balance = 3,
        payout = "community.example",
    },
}

M.logging = {
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func setup(t *testing.T, content string) (string, func()) {
	removeFiles()
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("cannot create directory: %s", err)
	}
	fileName := filepath.Join(testingDirName, "rankmintd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("cannot write configuration: %s", err)
	}
	return fileName, removeFiles
}

func removeFiles() {
	dirPath, _ := filepath.Abs(testingDirName)
	_ = os.RemoveAll(dirPath)
}

func TestGetConfiguration(t *testing.T) {
	fileName, teardown := setup(t, sampleConfiguration)
	defer teardown()

	options, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "read configuration")

	assert.Equal(t, "admin.example", options.Administrator, "administrator")
	assert.Equal(t, "team.example", options.Team, "team")
	assert.Equal(t, "donate.example", options.Donation, "donation")

	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2150"}, options.ClientRPC.Listen, "rpc listen")

	assert.True(t, options.Issuance.PublicSaleActive, "sale flag")
	assert.Equal(t, uint64(100), options.Issuance.FeeDivisor, "fee divisor")
	assert.Equal(t, uint64(10), options.Issuance.MinimumFee, "minimum fee")

	assert.Len(t, options.Allowlist, 1, "allowlist length")
	assert.Equal(t, uint64(5), options.Allowlist[0].RoyaltyPercent, "allowlist royalty")
	assert.Equal(t, "community.example", options.Allowlist[0].Payout, "allowlist payout")

	// the relative data directory resolves against the
	// configuration file location
	expectedDir, _ := filepath.Abs(testingDirName)
	assert.Equal(t, expectedDir, options.DataDirectory, "data directory")
	assert.Equal(t, expectedDir, options.Logging.Directory, "logging directory")
	assert.Equal(t, "rankmintd.log", options.Logging.File, "logging file")
}

func TestGetConfigurationRejectsZeroDivisor(t *testing.T) {
	fileName, teardown := setup(t, `
local M = {}
M.administrator = "admin.example"
M.team = "team.example"
M.donation = "donate.example"
M.client_rpc = { listen = { "127.0.0.1:2150" } }
M.issuance = { fee_waived = false, fee_divisor = 0 }
return M
`)
	defer teardown()

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err, "zero divisor accepted")
}

func TestGetConfigurationRejectsMissingAddresses(t *testing.T) {
	fileName, teardown := setup(t, `
local M = {}
M.client_rpc = { listen = { "127.0.0.1:2150" } }
return M
`)
	defer teardown()

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err, "missing addresses accepted")
}

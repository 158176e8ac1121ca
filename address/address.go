// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - host level account addresses
//
// Addresses are opaque strings assigned by the host environment.
// This system only compares them for equality and hands them back to
// the host for settlement, so no cryptographic structure is imposed
// beyond a basic well-formedness check.
package address

import (
	"github.com/rankmint/rankmintd/fault"
)

// length limits for a well formed address
const (
	minimumLength = 3
	maximumLength = 128
)

// Address - an account address in the host environment
type Address string

// Validate - basic well-formedness check
func (address Address) Validate() error {
	if len(address) < minimumLength || len(address) > maximumLength {
		return fault.InvalidAddress
	}
	for _, c := range address {
		if c <= ' ' || c > '~' {
			return fault.InvalidAddress
		}
	}
	return nil
}

// String - the address in displayable form
func (address Address) String() string {
	return string(address)
}

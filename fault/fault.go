// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TransferError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ProcessError("already initialised")
	AlreadyOwnsIdentity   = ExistsError("caller already owns an identity")
	DivisorIsZero         = InvalidError("fee divisor cannot be zero")
	IdentityNotFound      = NotFoundError("identity not found")
	InsufficientPayment   = InvalidError("payment is below the required fee")
	InvalidAddress        = InvalidError("address is invalid")
	InvalidCount          = InvalidError("count is invalid")
	InvalidListenAddress  = InvalidError("listen address is invalid")
	InvalidRoyaltyPercent = InvalidError("royalty percent is invalid")
	InvalidSupplyCap      = InvalidError("supply cap is invalid")
	MissingParameters     = InvalidError("missing parameters")
	NotAdministrator      = InvalidError("caller is not the administrator")
	NotInitialised        = ProcessError("not initialised")
	RateLimiting          = ProcessError("rate limiting")
	RoyaltyPoolExhausted  = InvalidError("royalty pool has insufficient remainder")
	SaleNotActive         = InvalidError("public sale is not active and caller is not allowlisted")
	SupplyExhausted       = InvalidError("identity supply is exhausted")
	TransferRejected      = TransferError("destination rejected the transfer")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e TransferError) Error() string { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is in the invalid class
// these are precondition failures: surfaced to the caller, no state change
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrTransfer - determine if an error is in the transfer class
// these are contained: the originating balance is restored for retry
func IsErrTransfer(e error) bool { _, ok := e.(TransferError); return ok }

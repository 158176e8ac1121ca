// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who holds which identity
//
// Backed by two storage pools: the owner index enforcing the
// one-identity-per-address rule and the identity records carrying the
// resolved trait metadata.
package ownership

import (
	"encoding/binary"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/storage"
	"github.com/rankmint/rankmintd/trait"
)

// Ownership - interface for ownership
type Ownership interface {
	Mint(owner address.Address, identifier uint32) error
	OwnsAny(owner address.Address) bool
	BalanceOf(owner address.Address) uint64
	AssignName(identifier uint32, bucket int) (string, error)
	Fetch(identifier uint32) (Record, error)
	Owned(owner address.Address) (uint32, bool)
}

// Record - one issued identity
type Record struct {
	Identifier uint32          `json:"identifier"`
	Owner      address.Address `json:"owner"`
	Bucket     int             `json:"bucket"`
	Name       string          `json:"name"`
}

type ownership struct {
	poolOwners     storage.Handle
	poolIdentities storage.Handle
}

var data ownership

// Initialise - attach the storage pools
func Initialise(owners storage.Handle, identities storage.Handle) {
	data = ownership{
		poolOwners:     owners,
		poolIdentities: identities,
	}
}

// Get - return the ownership interface
func Get() Ownership {
	return &data
}

// Mint - record a brand new identity for an owner
func (o *ownership) Mint(owner address.Address, identifier uint32) error {
	ownerKey := []byte(owner)
	if o.poolOwners.Has(ownerKey) {
		return fault.AlreadyOwnsIdentity
	}
	o.poolOwners.PutN(ownerKey, uint64(identifier))
	o.poolIdentities.Put(identifierKey(identifier), packRecord(owner, 0, ""))
	return nil
}

// OwnsAny - true if the address already holds an identity
func (o *ownership) OwnsAny(owner address.Address) bool {
	return o.poolOwners.Has([]byte(owner))
}

// BalanceOf - number of identities held, always 0 or 1
func (o *ownership) BalanceOf(owner address.Address) uint64 {
	if o.poolOwners.Has([]byte(owner)) {
		return 1
	}
	return 0
}

// Owned - the identifier held by an address
func (o *ownership) Owned(owner address.Address) (uint32, bool) {
	n, ok := o.poolOwners.GetN([]byte(owner))
	return uint32(n), ok
}

// AssignName - resolve and store the trait name for an identity
// returns the opaque name handle
func (o *ownership) AssignName(identifier uint32, bucket int) (string, error) {
	key := identifierKey(identifier)
	buffer := o.poolIdentities.Get(key)
	if nil == buffer {
		return "", fault.IdentityNotFound
	}
	owner, _, _ := unpackRecord(buffer)
	name := trait.Name(identifier, bucket)
	o.poolIdentities.Put(key, packRecord(owner, bucket, name))
	return name, nil
}

// Fetch - read one identity record
func (o *ownership) Fetch(identifier uint32) (Record, error) {
	buffer := o.poolIdentities.Get(identifierKey(identifier))
	if nil == buffer {
		return Record{}, fault.IdentityNotFound
	}
	owner, bucket, name := unpackRecord(buffer)
	return Record{
		Identifier: identifier,
		Owner:      owner,
		Bucket:     bucket,
		Name:       name,
	}, nil
}

// internal: big endian identifier key
func identifierKey(identifier uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, identifier)
	return key
}

// record layout: owner length, owner, bucket, name
func packRecord(owner address.Address, bucket int, name string) []byte {
	buffer := make([]byte, 0, 2+len(owner)+len(name))
	buffer = append(buffer, byte(len(owner)))
	buffer = append(buffer, owner...)
	buffer = append(buffer, byte(bucket))
	buffer = append(buffer, name...)
	return buffer
}

func unpackRecord(buffer []byte) (address.Address, int, string) {
	ownerLength := int(buffer[0])
	owner := address.Address(buffer[1 : 1+ownerLength])
	bucket := int(buffer[1+ownerLength])
	name := string(buffer[2+ownerLength:])
	return owner, bucket, name
}

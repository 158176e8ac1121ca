// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/fault"
	"github.com/rankmint/rankmintd/ownership"
)

const (
	alice = address.Address("alice.example")
	bob   = address.Address("bob.example")
)

// in-memory pool standing in for a storage handle
type memoryPool map[string][]byte

func (m memoryPool) Put(key []byte, value []byte) {
	m[string(key)] = append([]byte{}, value...)
}

func (m memoryPool) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	m.Put(key, buffer)
}

func (m memoryPool) Get(key []byte) []byte {
	return m[string(key)]
}

func (m memoryPool) GetN(key []byte) (uint64, bool) {
	buffer, ok := m[string(key)]
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer), true
}

func (m memoryPool) Has(key []byte) bool {
	_, ok := m[string(key)]
	return ok
}

func (m memoryPool) Scan(f func(key []byte, value []byte) bool) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !f([]byte(key), m[key]) {
			return
		}
	}
}

func setup() ownership.Ownership {
	ownership.Initialise(memoryPool{}, memoryPool{})
	return ownership.Get()
}

func TestMint(t *testing.T) {
	o := setup()

	assert.False(t, o.OwnsAny(alice), "fresh owner")
	assert.Zero(t, o.BalanceOf(alice), "fresh balance")

	err := o.Mint(alice, 1)
	assert.NoError(t, err, "mint")

	assert.True(t, o.OwnsAny(alice), "owner after mint")
	assert.Equal(t, uint64(1), o.BalanceOf(alice), "balance after mint")

	identifier, ok := o.Owned(alice)
	assert.True(t, ok, "owned lookup")
	assert.Equal(t, uint32(1), identifier, "owned identifier")

	// one identity per address
	err = o.Mint(alice, 2)
	assert.Equal(t, fault.AlreadyOwnsIdentity, err, "second mint")
	assert.True(t, fault.IsErrExists(err), "error class")

	err = o.Mint(bob, 2)
	assert.NoError(t, err, "other owner mint")
}

func TestAssignName(t *testing.T) {
	o := setup()

	_ = o.Mint(alice, 7)

	record, err := o.Fetch(7)
	assert.NoError(t, err, "fetch before naming")
	assert.Equal(t, alice, record.Owner, "record owner")
	assert.Zero(t, record.Bucket, "record bucket before naming")
	assert.Empty(t, record.Name, "record name before naming")

	name, err := o.AssignName(7, 11)
	assert.NoError(t, err, "assign name")
	assert.Equal(t, "11/7", name, "name handle")

	record, err = o.Fetch(7)
	assert.NoError(t, err, "fetch after naming")
	assert.Equal(t, alice, record.Owner, "owner preserved")
	assert.Equal(t, 11, record.Bucket, "record bucket")
	assert.Equal(t, "11/7", record.Name, "record name")

	_, err = o.AssignName(8, 3)
	assert.Equal(t, fault.IdentityNotFound, err, "naming a missing identity")

	_, err = o.Fetch(8)
	assert.Equal(t, fault.IdentityNotFound, err, "fetching a missing identity")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

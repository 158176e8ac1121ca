// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Identities *PoolHandle `prefix:"I"`
	Owners     *PoolHandle `prefix:"O"`
	Wealth     *PoolHandle `prefix:"W"`
	Balances   *PoolHandle `prefix:"B"`
	Payouts    *PoolHandle `prefix:"P"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db  *leveldb.DB
	log *logger.L
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	log := logger.New("storage")
	poolData.log = log
	log.Info("starting…")

	db, err := leveldb.OpenFile(database+".leveldb", nil)
	if nil != err {
		log.Criticalf("cannot open database: %s  error: %s", database, err)
		return err
	}

	// check or stamp the version
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint64(buffer, currentDBVersion)
		err = db.Put(versionKey, buffer, nil)
		if nil != err {
			_ = db.Close()
			return err
		}
	} else if nil != err {
		_ = db.Close()
		return err
	} else {
		version := binary.BigEndian.Uint64(versionValue)
		if version > currentDBVersion {
			log.Criticalf("database version: %d  this daemon handles: %d", version, currentDBVersion)
			_ = db.Close()
			return fault.ProcessError("database version is too new")
		}
	}

	poolData.db = db

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			logger.Panicf("storage: pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		handle := &PoolHandle{
			prefix:   prefixTag[0],
			database: db,
		}
		newPool := reflect.ValueOf(handle)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.log.Info("shutting down…")

	_ = poolData.db.Close()
	poolData.db = nil
	Pool = pools{}

	poolData.log.Info("finished")
	poolData.log.Flush()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/educhain-vn/eduledgerd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Credentials  *PoolHandle `prefix:"C"`
	Tokens       *PoolHandle `prefix:"N"`
	Schools      *PoolHandle `prefix:"S"`
	DIDDocuments *PoolHandle `prefix:"D"`
	DIDHashes    *PoolHandle `prefix:"H"`
	Seats        *PoolHandle `prefix:"A"`
	Scores       *PoolHandle `prefix:"W"`
	Results      *PoolHandle `prefix:"R"`
	HashRecords  *PoolHandle `prefix:"F"`
	Bounties     *PoolHandle `prefix:"B"`
	Courses      *PoolHandle `prefix:"M"`
	Certificates *PoolHandle `prefix:"G"`
	Degrees      *PoolHandle `prefix:"U"`
	Requirements *PoolHandle `prefix:"Q"`
	Progressions *PoolHandle `prefix:"P"`
	Escrows      *PoolHandle `prefix:"E"`
	Transactions *PoolHandle `prefix:"X"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// KeySeparator - separates the parts of a composite key
//
// identifiers are addresses and ids that never contain NUL, so the
// separator cannot occur inside a key part and composite keys cannot
// collide
const KeySeparator = 0x00

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	trx   Transaction
	batch *leveldb.Batch
	cache Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if version > currentDBVersion {
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return fmt.Errorf("database: %q is empty", database)
		}
		// database was empty so tag as current version
		err = putVersion(poolData.db, currentDBVersion)
		if nil != err {
			return err
		}
	} else if version < currentDBVersion {
		return fmt.Errorf("database version: %d < current version: %d  migration required", version, currentDBVersion)
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	poolData.batch = new(leveldb.Batch)
	poolData.cache = newCache()
	dataAccess := newDA(poolData.db, poolData.batch, poolData.cache)
	poolData.trx = newTransaction(dataAccess)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - begin a transaction for one execute operation
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

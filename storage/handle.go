// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/educhain-vn/eduledgerd/fault"
)

// Handle - a single pool of the ledger store
//
// mutations made through a Handle are staged in the current
// transaction and only become visible to other readers on Commit
type Handle interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Get(key []byte) []byte
	Has(key []byte) bool
	Map(f func(key []byte, value []byte) error) error
	ReverseFetch(count int) ([]Element, error)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - the standard Handle implementation over one prefix
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary key/value pair from a scan, prefix stripped
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - stage a key/value pair for the pool
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.Put nil dataAccess")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Delete - stage removal of a key from the pool
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		logger.Panic("pool.Delete nil dataAccess")
		return
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// returns nil if the key is not present; staged writes of the
// current transaction are visible
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// Map - run a function over the whole pool in ascending key order
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	return p.NewFetchCursor().Map(f)
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := p.keyRange()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return Element{}, false
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}

// ReverseFetch - return up to count elements in descending key order
// starting from the end of the pool
func (p *PoolHandle) ReverseFetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	maxRange := p.keyRange()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil, nil
	}

	iter := p.dataAccess.Iterator(&maxRange)

	results := make([]Element, 0, count)
	n := 0
	for ok := iter.Last(); ok; ok = iter.Prev() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Prev
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break
		}
	}
	iter.Release()
	err := iter.Error()
	return results, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - shared pieces of the rpc argument surface
//
// Signature verification happens upstream; the rpc arguments carry
// the already validated caller and any attached funds, and the block
// time is the wall clock at execution.
package request

import (
	"sync"
	"time"

	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// the store has a single staging transaction; transitions hold the
// write side so concurrent executes queue, and queries hold the read
// side so staged writes are never observed before Commit
var storeLock sync.RWMutex

// Access - caller identity and funds, embedded by execute arguments
type Access struct {
	Caller string        `json:"caller"`
	Funds  []ledger.Coin `json:"funds,omitempty"`
}

// Context - build the transition context for one call
func (a Access) Context() ledger.Context {
	return ledger.Context{
		Caller: a.Caller,
		Now:    time.Now().UTC(),
		Funds:  a.Funds,
	}
}

// Reply - uniform execute reply, embedded by execute replies
type Reply struct {
	Attributes []ledger.Attribute `json:"attributes"`
	Transfers  []ledger.Transfer  `json:"transfers,omitempty"`
}

// Set - copy a transition result into the reply
func (r *Reply) Set(result *ledger.Result) {
	r.Attributes = result.Attributes
	r.Transfers = result.Transfers
}

// Transact - run one transition inside its own store transaction
//
// transitions are serialised; a call made while another transition is
// staging waits its turn. a failed transition aborts and leaves no
// trace; commit publishes all staged writes atomically
func Transact(f func() (*ledger.Result, error)) (*ledger.Result, error) {
	storeLock.Lock()
	defer storeLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	result, err := f()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Query - run one read outside any staging window
//
// waits for an in-progress transition to commit or abort, so a read
// only ever sees committed records
func Query(f func() error) error {
	storeLock.RLock()
	defer storeLock.RUnlock()

	return f()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - all-or-nothing staging of pool mutations
//
// every execute operation stages its writes inside one transaction;
// either Commit applies every staged mutation or Abort discards them
// all, so a failed transition leaves no partial writes behind
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

type TransactionData struct {
	sync.Mutex
	dataAccess DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &TransactionData{
		dataAccess: access,
	}
}

// Begin - mark the transaction as in use
//
// returns an error if a transaction is already in progress
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	return t.dataAccess.Begin()
}

// Commit - write all staged mutations to the database
//
// the batch and staged-read cache are reset whether or not the write
// succeeds, so a failed commit does not wedge later transactions
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	err := t.dataAccess.Commit()
	t.dataAccess.Abort() // reset the batch and staged-read cache
	return err
}

// Abort - discard all staged mutations
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.dataAccess.Abort()
}

// InUse - check if a transaction is in progress
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.dataAccess.InUse()
}

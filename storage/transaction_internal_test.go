// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// a DataAccess whose batch write always fails
type failingAccess struct {
	commitError error
	aborted     bool
}

func (f *failingAccess) Abort()                     { f.aborted = true }
func (f *failingAccess) Begin() error               { return nil }
func (f *failingAccess) Commit() error              { return f.commitError }
func (f *failingAccess) Delete([]byte)              {}
func (f *failingAccess) DumpTx() []byte             { return nil }
func (f *failingAccess) Get([]byte) ([]byte, error) { return nil, nil }
func (f *failingAccess) Has([]byte) (bool, error)   { return false, nil }
func (f *failingAccess) InUse() bool                { return false }
func (f *failingAccess) Put([]byte, []byte)         {}

func (f *failingAccess) Iterator(*ldb_util.Range) iterator.Iterator {
	return nil
}

// a failed commit must still reset the batch so the next transaction
// can begin
func TestTransactionCommitFailureResets(t *testing.T) {
	access := &failingAccess{commitError: errors.New("write failed")}
	trx := newTransaction(access)

	err := trx.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	err = trx.Commit()
	if nil == err {
		t.Fatal("commit did not fail")
	}
	if !access.aborted {
		t.Error("failed commit left the transaction in use")
	}
}

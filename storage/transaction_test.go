// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/educhain-vn/eduledgerd/storage"
)

// staged writes must be visible to reads inside the transaction
func TestTransactionStagedVisibility(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	p.Put([]byte("staged"), []byte("value"))

	if value := p.Get([]byte("staged")); !bytes.Equal(value, []byte("value")) {
		t.Errorf("staged read: %q  expected: %q", value, "value")
	}
	if !p.Has([]byte("staged")) {
		t.Error("staged key not visible")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if value := p.Get([]byte("staged")); !bytes.Equal(value, []byte("value")) {
		t.Errorf("committed read: %q  expected: %q", value, "value")
	}
}

// abort must discard every staged mutation
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	mustStore(t, p, []stringElement{{"keep", "original"}})

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	p.Put([]byte("keep"), []byte("modified"))
	p.Put([]byte("discard"), []byte("never written"))
	p.Delete([]byte("keep"))

	trx.Abort()

	if value := p.Get([]byte("keep")); !bytes.Equal(value, []byte("original")) {
		t.Errorf("after abort: %q  expected: %q", value, "original")
	}
	if p.Has([]byte("discard")) {
		t.Error("aborted key was written")
	}
}

// a second begin before commit must fail
func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	_, err = storage.NewDBTransaction()
	if nil == err {
		t.Fatal("second begin succeeded")
	}

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin after abort error: %s", err)
	}
	trx.Abort()
}

// a staged delete must read as not found inside the transaction
func TestTransactionStagedDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	mustStore(t, p, []stringElement{{"gone", "soon"}})

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	p.Delete([]byte("gone"))

	if p.Has([]byte("gone")) {
		t.Error("staged delete still visible")
	}
	if value := p.Get([]byte("gone")); nil != value && 0 != len(value) {
		t.Errorf("staged delete read: %q  expected: not found", value)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if p.Has([]byte("gone")) {
		t.Error("deleted key still present after commit")
	}
}

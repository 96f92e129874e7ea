// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/educhain-vn/eduledgerd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// store a set of key/value pairs in one committed transaction
func mustStore(t *testing.T, p storage.Handle, items []stringElement) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	for _, item := range items {
		p.Put([]byte(item.key), []byte(item.value))
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

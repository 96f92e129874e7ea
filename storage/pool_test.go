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

// this is the expected ascending key order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-three"), []byte("data-three"))
	p.Put([]byte("key-four"), []byte("data-four"))
	p.Put([]byte("key-delete-this"), []byte("to be deleted"))
	p.Put([]byte("key-five"), []byte("data-five"))
	p.Put([]byte("key-six"), []byte("data-six"))
	p.Delete([]byte("key-delete-this"))
	p.Put([]byte("key-seven"), []byte("data-seven"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)")) // duplicate

	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	// ensure that data is correct
	checkResults(t, p)

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	checkResults(t, storage.Pool.TestData)
}

func checkResults(t *testing.T, p storage.Handle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			break
		}
		e := expectedElements[i]
		if !bytes.Equal(a.Key, e.Key) {
			t.Errorf("%d: key mismatch, got: %q  expected: %q", i, a.Key, e.Key)
		}
		if !bytes.Equal(a.Value, e.Value) {
			t.Errorf("%d: data mismatch, got: %q  expected: %q", i, a.Value, e.Value)
		}
	}

	// individual access
	if value := p.Get([]byte("key-two")); !bytes.Equal(value, []byte("data-two")) {
		t.Errorf("Get: %q  expected: %q", value, "data-two")
	}
	if !p.Has([]byte("key-six")) {
		t.Error("missing key-six")
	}
	if p.Has([]byte("key-remove-me")) {
		t.Error("deleted key-remove-me still present")
	}
	if value := p.Get([]byte("/nonexistent")); nil != value {
		t.Errorf("Get on missing key: %q  expected: nil", value)
	}
}

// paged cursor fetch must resume after the last returned key
func TestPoolCursorPaging(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	mustStore(t, p, []stringElement{
		{"aa", "1"},
		{"bb", "2"},
		{"cc", "3"},
		{"dd", "4"},
		{"ee", "5"},
	})

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(2)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(first) || !bytes.Equal(first[0].Key, []byte("aa")) || !bytes.Equal(first[1].Key, []byte("bb")) {
		t.Fatalf("first page wrong: %v", first)
	}

	second, err := cursor.Fetch(2)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(second) || !bytes.Equal(second[0].Key, []byte("cc")) || !bytes.Equal(second[1].Key, []byte("dd")) {
		t.Fatalf("second page wrong: %v", second)
	}

	third, err := cursor.Fetch(2)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 1 != len(third) || !bytes.Equal(third[0].Key, []byte("ee")) {
		t.Fatalf("third page wrong: %v", third)
	}
}

// reverse fetch must return elements in descending key order
func TestPoolReverseFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	mustStore(t, p, []stringElement{
		{"aa", "1"},
		{"bb", "2"},
		{"cc", "3"},
	})

	data, err := p.ReverseFetch(2)
	if nil != err {
		t.Fatalf("reverse fetch error: %s", err)
	}
	if 2 != len(data) {
		t.Fatalf("length: %d  expected: 2", len(data))
	}
	if !bytes.Equal(data[0].Key, []byte("cc")) || !bytes.Equal(data[1].Key, []byte("bb")) {
		t.Fatalf("reverse order wrong: %q %q", data[0].Key, data[1].Key)
	}

	// empty pool is not an error
	empty, err := storage.Pool.Transactions.ReverseFetch(10)
	if nil != err {
		t.Fatalf("reverse fetch error: %s", err)
	}
	if 0 != len(empty) {
		t.Fatalf("expected empty result, got: %d", len(empty))
	}
}

// separate pools must not leak into each other during scans
func TestPoolNamespaceIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	mustStore(t, storage.Pool.Seats, []stringElement{{"seat-1", "a"}})
	mustStore(t, storage.Pool.Scores, []stringElement{{"cand-1", "b"}})

	n := 0
	err := storage.Pool.Seats.Map(func(key []byte, value []byte) error {
		n += 1
		if !bytes.Equal(key, []byte("seat-1")) {
			t.Errorf("unexpected key: %q", key)
		}
		return nil
	})
	if nil != err {
		t.Fatalf("map error: %s", err)
	}
	if 1 != n {
		t.Errorf("scan count: %d  expected: 1", n)
	}
}

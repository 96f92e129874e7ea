// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package audit_test

import (
	"os"
	"testing"
	"time"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

const databaseFileName = "audit-test.leveldb"

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	audit.Initialise(storage.Pool.Transactions)
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func record(t *testing.T, actor string, action string, seconds int64) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	ctx := ledger.Context{
		Caller: actor,
		Now:    time.Unix(seconds, 0).UTC(),
	}
	audit.Get().Record(ctx, action, "detail for "+action)
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// entries come back most recent first, bounded by the limit
func TestHistoryOrdering(t *testing.T) {
	setup(t)
	defer teardown(t)

	record(t, "school-1", "first", 1000)
	record(t, "school-1", "second", 1001)
	record(t, "student-1", "third", 1002)
	record(t, "school-2", "fourth", 1003)

	entries, err := audit.Get().History(3)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	if 3 != len(entries) {
		t.Fatalf("length: %d  expected: 3", len(entries))
	}

	expected := []string{"fourth", "third", "second"}
	for i, e := range entries {
		if e.Action != expected[i] {
			t.Errorf("%d: action: %q  expected: %q", i, e.Action, expected[i])
		}
	}

	// no limit selects the default and returns everything present
	all, err := audit.Get().History(0)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	if 4 != len(all) {
		t.Fatalf("length: %d  expected: 4", len(all))
	}
	if all[0].Action != "fourth" || all[3].Action != "first" {
		t.Errorf("default limit ordering wrong: %v", all)
	}
}

// an empty log yields an empty sequence, not an error
func TestHistoryEmpty(t *testing.T) {
	setup(t)
	defer teardown(t)

	entries, err := audit.Get().History(10)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	if 0 != len(entries) {
		t.Fatalf("length: %d  expected: 0", len(entries))
	}
}

// same actor in the same second overwrites the earlier entry
func TestSameSecondSameActorOverwrite(t *testing.T) {
	setup(t)
	defer teardown(t)

	record(t, "school-1", "first", 2000)
	record(t, "school-1", "second", 2000)

	entries, err := audit.Get().History(10)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	if 1 != len(entries) {
		t.Fatalf("length: %d  expected: 1", len(entries))
	}
	if entries[0].Action != "second" {
		t.Errorf("action: %q  expected: %q", entries[0].Action, "second")
	}

	// different actors in the same second keep separate entries
	record(t, "school-2", "third", 2000)
	entries, err = audit.Get().History(10)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	if 2 != len(entries) {
		t.Fatalf("length: %d  expected: 2", len(entries))
	}
}

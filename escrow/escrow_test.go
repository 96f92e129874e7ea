// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"os"
	"testing"
	"time"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/escrow"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

const databaseFileName = "escrow-test.leveldb"

const (
	payer  = "edu1payer0000000000000000000000000000001"
	school = "edu1school000000000000000000000000000001"
	other  = "edu1other0000000000000000000000000000001"
)

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	audit.Initialise(storage.Pool.Transactions)
	escrow.Initialise(storage.Pool.Escrows)
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func at(caller string, seconds int64, funds ...ledger.Coin) ledger.Context {
	return ledger.Context{
		Caller: caller,
		Now:    time.Unix(seconds, 0).UTC(),
		Funds:  funds,
	}
}

func execute(t *testing.T, f func() (*ledger.Result, error)) (*ledger.Result, error) {
	t.Helper()
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	result, err := f()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return result, nil
}

func create(t *testing.T, seconds int64, amount uint64, sent uint64) string {
	t.Helper()
	_, err := execute(t, func() (*ledger.Result, error) {
		ctx := at(payer, seconds, ledger.Coin{Denom: currency.EVND, Amount: sent})
		return escrow.Get().CreateEscrow(ctx, school, amount, currency.EVND)
	})
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return payer + "-" + school + "-" + "6000"
}

func TestCreateEscrow(t *testing.T) {
	setup(t)
	defer teardown(t)

	// underfunded create is rejected
	_, err := execute(t, func() (*ledger.Result, error) {
		ctx := at(payer, 6000, ledger.Coin{Denom: currency.EVND, Amount: 99})
		return escrow.Get().CreateEscrow(ctx, school, 100, currency.EVND)
	})
	if fault.InsufficientFunds != err {
		t.Fatalf("error: %s  expected: %s", err, fault.InsufficientFunds)
	}

	// funds in the wrong denomination do not count
	_, err = execute(t, func() (*ledger.Result, error) {
		ctx := at(payer, 6000, ledger.Coin{Denom: currency.Research, Amount: 100})
		return escrow.Get().CreateEscrow(ctx, school, 100, currency.EVND)
	})
	if fault.InsufficientFunds != err {
		t.Fatalf("error: %s  expected: %s", err, fault.InsufficientFunds)
	}

	escrowID := create(t, 6000, 100, 100)

	record, err := escrow.Get().GetEscrow(escrowID)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if record.Payer != payer || record.School != school || 100 != record.Amount {
		t.Errorf("unexpected escrow: %+v", record)
	}
	if record.Released || record.ProofOfEnrollment {
		t.Errorf("flags set on create: %+v", record)
	}

	// same payer, school and second collides
	_, err = execute(t, func() (*ledger.Result, error) {
		ctx := at(payer, 6000, ledger.Coin{Denom: currency.EVND, Amount: 100})
		return escrow.Get().CreateEscrow(ctx, school, 100, currency.EVND)
	})
	if fault.EscrowAlreadyExists != err {
		t.Fatalf("error: %s  expected: %s", err, fault.EscrowAlreadyExists)
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	escrowID := create(t, 6000, 100, 100)

	// release before proof is rejected
	_, err := execute(t, func() (*ledger.Result, error) {
		return escrow.Get().Release(at(payer, 6001), escrowID)
	})
	if fault.ProofOfEnrollmentMissing != err {
		t.Fatalf("error: %s  expected: %s", err, fault.ProofOfEnrollmentMissing)
	}

	// only the school attests enrollment
	_, err = execute(t, func() (*ledger.Result, error) {
		return escrow.Get().SetProofOfEnrollment(at(payer, 6002), escrowID)
	})
	if !fault.IsErrUnauthorized(err) {
		t.Fatalf("error class: %T %s", err, err)
	}
	_, err = execute(t, func() (*ledger.Result, error) {
		return escrow.Get().SetProofOfEnrollment(at(school, 6003), escrowID)
	})
	if nil != err {
		t.Fatalf("set proof error: %s", err)
	}

	// a stranger cannot release
	_, err = execute(t, func() (*ledger.Result, error) {
		return escrow.Get().Release(at(other, 6004), escrowID)
	})
	if !fault.IsErrUnauthorized(err) {
		t.Fatalf("error class: %T %s", err, err)
	}

	result, err := execute(t, func() (*ledger.Result, error) {
		return escrow.Get().Release(at(payer, 6005), escrowID)
	})
	if nil != err {
		t.Fatalf("release error: %s", err)
	}
	if 1 != len(result.Transfers) {
		t.Fatalf("transfers: %d  expected: 1", len(result.Transfers))
	}
	transfer := result.Transfers[0]
	if transfer.To != school || 100 != transfer.Amount || currency.EVND != transfer.Denom {
		t.Errorf("unexpected transfer: %+v", transfer)
	}

	record, err := escrow.Get().GetEscrow(escrowID)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if !record.Released {
		t.Error("expected released")
	}

	// release pays at most once
	_, err = execute(t, func() (*ledger.Result, error) {
		return escrow.Get().Release(at(school, 6006), escrowID)
	})
	if fault.EscrowAlreadyReleased != err {
		t.Fatalf("error: %s  expected: %s", err, fault.EscrowAlreadyReleased)
	}

	_, err = execute(t, func() (*ledger.Result, error) {
		return escrow.Get().Release(at(payer, 6007), "no-such-escrow")
	})
	if fault.EscrowNotFound != err {
		t.Fatalf("error: %s  expected: %s", err, fault.EscrowNotFound)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package did_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/did"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

const databaseFileName = "did-test.leveldb"

const (
	registrant = "edu1registrant00000000000000000000000001"
	other      = "edu1other0000000000000000000000000000001"
)

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	audit.Initialise(storage.Pool.Transactions)
	did.Initialise(storage.Pool.DIDDocuments, storage.Pool.DIDHashes)
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func at(caller string, seconds int64) ledger.Context {
	return ledger.Context{
		Caller: caller,
		Now:    time.Unix(seconds, 0).UTC(),
	}
}

func execute(t *testing.T, f func() (*ledger.Result, error)) error {
	t.Helper()
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	_, err = f()
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func digestOf(t *testing.T, document did.Document) []byte {
	t.Helper()
	buffer, err := json.Marshal(&document)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	digest := sha3.Sum256(buffer)
	return digest[:]
}

func TestRegisterAndUpdate(t *testing.T) {
	setup(t)
	defer teardown(t)

	document := did.Document{
		Context:   "https://www.w3.org/ns/did/v1",
		ID:        "did:edu:abc123",
		PublicKey: "z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
	}

	err := execute(t, func() (*ledger.Result, error) {
		return did.Get().RegisterDID(at(registrant, 7000), document)
	})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	err = execute(t, func() (*ledger.Result, error) {
		return did.Get().RegisterDID(at(other, 7001), document)
	})
	if fault.DIDAlreadyRegistered != err {
		t.Fatalf("error: %s  expected: %s", err, fault.DIDAlreadyRegistered)
	}

	stored, err := did.Get().GetDID("did:edu:abc123")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if *stored != document {
		t.Errorf("document: %+v  expected: %+v", *stored, document)
	}

	digest, err := did.Get().GetDIDHash("did:edu:abc123")
	if nil != err {
		t.Fatalf("get hash error: %s", err)
	}
	if !bytes.Equal(digestOf(t, document), digest) {
		t.Errorf("digest mismatch: %x", digest)
	}

	// only the registrant may update
	updated := document
	updated.ServiceEndpoint = "https://resolver.example"
	err = execute(t, func() (*ledger.Result, error) {
		return did.Get().UpdateDID(at(other, 7002), updated)
	})
	if !fault.IsErrUnauthorized(err) {
		t.Fatalf("error class: %T %s", err, err)
	}

	err = execute(t, func() (*ledger.Result, error) {
		return did.Get().UpdateDID(at(registrant, 7003), updated)
	})
	if nil != err {
		t.Fatalf("update error: %s", err)
	}

	stored, err = did.Get().GetDID("did:edu:abc123")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if stored.ServiceEndpoint != updated.ServiceEndpoint {
		t.Errorf("unexpected document: %+v", stored)
	}

	// the digest tracks the update
	digest, err = did.Get().GetDIDHash("did:edu:abc123")
	if nil != err {
		t.Fatalf("get hash error: %s", err)
	}
	if !bytes.Equal(digestOf(t, updated), digest) {
		t.Errorf("digest mismatch after update: %x", digest)
	}
}

func TestUnknownDID(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := did.Get().GetDID("did:edu:missing")
	if fault.DIDNotFound != err {
		t.Fatalf("error: %s  expected: %s", err, fault.DIDNotFound)
	}
	_, err = did.Get().GetDIDHash("did:edu:missing")
	if fault.DIDNotFound != err {
		t.Fatalf("error: %s  expected: %s", err, fault.DIDNotFound)
	}

	err = execute(t, func() (*ledger.Result, error) {
		return did.Get().UpdateDID(at(registrant, 7100), did.Document{ID: "did:edu:missing"})
	})
	if fault.DIDNotFound != err {
		t.Fatalf("error: %s  expected: %s", err, fault.DIDNotFound)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package did_test

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/did"
	"github.com/educhain-vn/eduledgerd/fault"
	rpcDID "github.com/educhain-vn/eduledgerd/rpc/did"
	"github.com/educhain-vn/eduledgerd/rpc/fixtures"
	"github.com/educhain-vn/eduledgerd/rpc/mocks"
	"github.com/educhain-vn/eduledgerd/rpc/request"
	"github.com/educhain-vn/eduledgerd/storage"
)

const databaseFileName = "rpc-did-test.leveldb"

func setupStorage(t *testing.T) {
	_ = os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardownStorage() {
	storage.Finalise()
	_ = os.RemoveAll(databaseFileName)
}

// the register transition must anchor both the document envelope and
// the SHA3-256 digest of the document JSON
func TestDIDRegister(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	setupStorage(t)
	defer teardownStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	documents := mocks.NewMockHandle(ctl)
	hashes := mocks.NewMockHandle(ctl)
	transactions := mocks.NewMockHandle(ctl)

	did.Initialise(documents, hashes)
	audit.Initialise(transactions)

	d := rpcDID.New(logger.New(fixtures.LogCategory), did.Get())

	document := did.Document{
		Context:   "https://www.w3.org/ns/did/v1",
		ID:        "did:edu:student1",
		PublicKey: "z6Mk",
	}

	documentJSON, err := json.Marshal(&document)
	assert.Nil(t, err, "wrong document marshal")
	digest := sha3.Sum256(documentJSON)

	key := []byte(document.ID)
	documents.EXPECT().Has(key).Return(false).Times(1)
	documents.EXPECT().Put(key, gomock.Any()).Times(1)
	hashes.EXPECT().Put(key, digest[:]).Times(1)
	transactions.EXPECT().Put(gomock.Any(), gomock.Any()).Times(1)

	arg := rpcDID.DocumentArguments{
		Access:   request.Access{Caller: "edu1student"},
		Document: document,
	}

	var reply request.Reply
	err = d.Register(&arg, &reply)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, "register_did", reply.Attributes[0].Value, "wrong action")
}

// only the registrant may replace a document
func TestDIDUpdateNotRegistrant(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	setupStorage(t)
	defer teardownStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	documents := mocks.NewMockHandle(ctl)
	hashes := mocks.NewMockHandle(ctl)

	did.Initialise(documents, hashes)

	d := rpcDID.New(logger.New(fixtures.LogCategory), did.Get())

	document := did.Document{
		ID:        "did:edu:student1",
		PublicKey: "z6Mk",
	}

	stored, err := json.Marshal(map[string]interface{}{
		"document":      document,
		"registrant":    "edu1alice",
		"registered_at": 1700000000,
	})
	assert.Nil(t, err, "wrong stored marshal")

	documents.EXPECT().Get([]byte(document.ID)).Return(stored).Times(1)

	arg := rpcDID.DocumentArguments{
		Access:   request.Access{Caller: "edu1bob"},
		Document: document,
	}

	var reply request.Reply
	err = d.Update(&arg, &reply)
	assert.Equal(t, fault.NotDIDRegistrant, err, "wrong Update error")
}

// the hash query serves the digest exactly as stored
func TestDIDHash(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	documents := mocks.NewMockHandle(ctl)
	hashes := mocks.NewMockHandle(ctl)

	did.Initialise(documents, hashes)

	d := rpcDID.New(logger.New(fixtures.LogCategory), did.Get())

	digest := sha3.Sum256([]byte("anchored document"))
	hashes.EXPECT().Get([]byte("did:edu:student1")).Return(digest[:]).Times(1)

	var reply rpcDID.HashReply
	err := d.Hash(&rpcDID.GetArguments{Id: "did:edu:student1"}, &reply)
	assert.Nil(t, err, "wrong Hash")
	assert.Equal(t, hex.EncodeToString(digest[:]), reply.Hash, "wrong digest")
}

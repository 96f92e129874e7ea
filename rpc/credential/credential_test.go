// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/credential"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	rpcCredential "github.com/educhain-vn/eduledgerd/rpc/credential"
	"github.com/educhain-vn/eduledgerd/rpc/fixtures"
	"github.com/educhain-vn/eduledgerd/rpc/mocks"
	"github.com/educhain-vn/eduledgerd/rpc/request"
	"github.com/educhain-vn/eduledgerd/storage"
)

const databaseFileName = "rpc-credential-test.leveldb"

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

func TestCredentialIssue(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	setupStorage(t)
	defer teardownStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockCredentialLedger(ctl)

	c := rpcCredential.New(logger.New(fixtures.LogCategory), l)

	arg := rpcCredential.IssueArguments{
		Access:    request.Access{Caller: "edu1issuer"},
		Hash:      "deadbeef",
		Metadata:  "degree credential",
		Issuer:    "edu1issuer",
		Signature: "sig",
	}

	l.EXPECT().
		IssueVC(gomock.Any(), arg.Hash, arg.Metadata, arg.Issuer, arg.Signature).
		Return(ledger.NewResult("issue_vc").Add("issuer", "edu1issuer"), nil).
		Times(1)

	var reply request.Reply
	err := c.Issue(&arg, &reply)
	assert.Nil(t, err, "wrong Issue")
	assert.Equal(t, 2, len(reply.Attributes), "wrong attribute count")
	assert.Equal(t, "issue_vc", reply.Attributes[0].Value, "wrong action")
}

func TestCredentialIssueError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	setupStorage(t)
	defer teardownStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockCredentialLedger(ctl)

	c := rpcCredential.New(logger.New(fixtures.LogCategory), l)

	arg := rpcCredential.IssueArguments{
		Access: request.Access{Caller: "edu1issuer"},
		Hash:   "deadbeef",
	}

	l.EXPECT().
		IssueVC(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fault.CredentialAlreadyExists).
		Times(1)

	var reply request.Reply
	err := c.Issue(&arg, &reply)
	assert.Equal(t, fault.CredentialAlreadyExists, err, "wrong Issue error")
}

func TestCredentialStatus(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockCredentialLedger(ctl)

	c := rpcCredential.New(logger.New(fixtures.LogCategory), l)

	l.EXPECT().IsRevoked("deadbeef").Return(true, nil).Times(1)

	var reply rpcCredential.StatusReply
	err := c.Status(&rpcCredential.GetArguments{Hash: "deadbeef"}, &reply)
	assert.Nil(t, err, "wrong Status")
	assert.True(t, reply.Revoked, "wrong revoked flag")
}

func TestCredentialTokens(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockCredentialLedger(ctl)

	c := rpcCredential.New(logger.New(fixtures.LogCategory), l)

	tokens := []credential.Token{
		{TokenID: "token-1", Owner: "edu1student", Issuer: "edu1issuer"},
	}

	l.EXPECT().NFTsByOwner("edu1student").Return(tokens, nil).Times(1)

	var reply rpcCredential.TokensReply
	err := c.Tokens(&rpcCredential.TokensArguments{Owner: "edu1student"}, &reply)
	assert.Nil(t, err, "wrong Tokens")
	assert.Equal(t, tokens, reply.Tokens, "wrong token list")

	l.EXPECT().NFTsByIssuer("edu1issuer").Return(tokens, nil).Times(1)

	err = c.Tokens(&rpcCredential.TokensArguments{Issuer: "edu1issuer"}, &reply)
	assert.Nil(t, err, "wrong Tokens")
	assert.Equal(t, tokens, reply.Tokens, "wrong token list")
}

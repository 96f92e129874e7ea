// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/counter"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/rpc/certificate"
	"github.com/educhain-vn/eduledgerd/rpc/fixtures"
	"github.com/educhain-vn/eduledgerd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Error("register with error: ", err)
		t.FailNow()
	}

	tlsCertificate, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		fixtures.Key(),
	)
	if err != nil {
		t.Error("get certificate with error: ", err)
		t.FailNow()
	}

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		tlsCertificate,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if err != nil {
		t.Error("dial with error: ", err)
		t.FailNow()
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestNewRPCWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:12345"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		nil,
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong connection limit error")
}

func TestNewRPCWhenListenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		nil,
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong listen error")
}

func TestNewRPCWhenInvalidListenAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"not-an-address:1234"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		nil,
		[32]byte{},
	)
	assert.Equal(t, fault.InvalidIpAddress, err, "wrong address error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/admission"
	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/counter"
	"github.com/educhain-vn/eduledgerd/credential"
	"github.com/educhain-vn/eduledgerd/did"
	"github.com/educhain-vn/eduledgerd/escrow"
	"github.com/educhain-vn/eduledgerd/market"
	"github.com/educhain-vn/eduledgerd/research"
	rpcAdmission "github.com/educhain-vn/eduledgerd/rpc/admission"
	rpcCredential "github.com/educhain-vn/eduledgerd/rpc/credential"
	rpcDID "github.com/educhain-vn/eduledgerd/rpc/did"
	rpcEscrow "github.com/educhain-vn/eduledgerd/rpc/escrow"
	rpcMarket "github.com/educhain-vn/eduledgerd/rpc/market"
	rpcNode "github.com/educhain-vn/eduledgerd/rpc/node"
	rpcResearch "github.com/educhain-vn/eduledgerd/rpc/research"
)

func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(rpcCredential.New(log, credential.Get()))
	_ = server.Register(rpcAdmission.New(log, admission.Get()))
	_ = server.Register(rpcResearch.New(log, research.Get()))
	_ = server.Register(rpcMarket.New(log, market.Get()))
	_ = server.Register(rpcEscrow.New(log, escrow.Get()))
	_ = server.Register(rpcDID.New(log, did.Get()))
	_ = server.Register(rpcNode.New(log, start, version, rpcCount, audit.Get()))

	return server
}

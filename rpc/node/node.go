// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/counter"
	"github.com/educhain-vn/eduledgerd/mode"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Audit   audit.Log
	counter *counter.Counter
}

// limit for history count
const maximumHistory = 100

func New(log *logger.L, start time.Time, version string, counter *counter.Counter, auditLog audit.Log) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Audit:   auditLog,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}

// ---

// HistoryArguments - arguments for the audit trail query
type HistoryArguments struct {
	Count int `json:"count"`
}

// HistoryReply - most recent audit entries, newest first
type HistoryReply struct {
	Entries []audit.Entry `json:"entries"`
}

// History - list the tail of the audit trail
func (node *Node) History(arguments *HistoryArguments, reply *HistoryReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumHistory); nil != err {
		return err
	}

	return request.Query(func() error {
		entries, err := node.Audit.History(arguments.Count)
		if nil != err {
			return err
		}

		reply.Entries = entries
		return nil
	})
}

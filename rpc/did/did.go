// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package did

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/did"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// DID
// ---

// DID - type for the RPC
type DID struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  did.Ledger
}

const (
	rateLimitDID = 200
	rateBurstDID = 100
)

func New(log *logger.L, l did.Ledger) *DID {
	return &DID{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitDID, rateBurstDID),
		Ledger:  l,
	}
}

// DocumentArguments - a full DID document
type DocumentArguments struct {
	request.Access
	Document did.Document `json:"document"`
}

// Register - record a new DID document, caller becomes registrant
func (d *DID) Register(arguments *DocumentArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("DID.Register: %s", arguments.Document.ID)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return d.Ledger.RegisterDID(arguments.Context(), arguments.Document)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Update - replace a DID document, registrant only
func (d *DID) Update(arguments *DocumentArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("DID.Update: %s", arguments.Document.ID)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return d.Ledger.UpdateDID(arguments.Context(), arguments.Document)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// GetArguments - select one DID
type GetArguments struct {
	Id string `json:"id"`
}

// Get - read one DID document
func (d *DID) Get(arguments *GetArguments, reply *did.Document) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		document, err := d.Ledger.GetDID(arguments.Id)
		if nil != err {
			return err
		}

		*reply = *document
		return nil
	})
}

// HashReply - digest of a stored DID document
type HashReply struct {
	Hash string `json:"hash"` // hex
}

// Hash - read the stored digest of a DID document
func (d *DID) Hash(arguments *GetArguments, reply *HashReply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		digest, err := d.Ledger.GetDIDHash(arguments.Id)
		if nil != err {
			return err
		}

		reply.Hash = hex.EncodeToString(digest)
		return nil
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the surface shared by all ledger transitions
//
// The hosting environment executes one transition at a time and
// supplies the validated caller address, the block timestamp and any
// attached funds.  A transition answers with human readable response
// attributes and zero or more pending bank transfers; executing the
// transfers is the host's responsibility.
package ledger

import (
	"time"

	"github.com/educhain-vn/eduledgerd/currency"
)

// Context - trusted per-call inputs from the hosting environment
type Context struct {
	Caller string    // validated sender address
	Now    time.Time // block timestamp
	Funds  []Coin    // funds attached to the request
}

// Coin - an amount of one denomination
type Coin struct {
	Denom  currency.Currency `json:"denom"`
	Amount uint64            `json:"amount"`
}

// Sent - the attached amount of one denomination, zero if absent
func (c Context) Sent(denom currency.Currency) uint64 {
	for _, coin := range c.Funds {
		if coin.Denom == denom {
			return coin.Amount
		}
	}
	return 0
}

// Seconds - the block timestamp at audit granularity
func (c Context) Seconds() uint64 {
	return uint64(c.Now.Unix())
}

// Attribute - one human readable response key/value pair
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Transfer - a pending bank send for the host to execute
type Transfer struct {
	To     string            `json:"to"`
	Amount uint64            `json:"amount"`
	Denom  currency.Currency `json:"denom"`
}

// Result - outcome of a successful transition
type Result struct {
	Attributes []Attribute `json:"attributes"`
	Transfers  []Transfer  `json:"transfers,omitempty"`
}

// NewResult - start a result with the action attribute
func NewResult(action string) *Result {
	return &Result{
		Attributes: []Attribute{{Key: "action", Value: action}},
	}
}

// Add - append an attribute, returns the result for chaining
func (r *Result) Add(key string, value string) *Result {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Send - append a pending transfer, returns the result for chaining
func (r *Result) Send(to string, amount uint64, denom currency.Currency) *Result {
	r.Transfers = append(r.Transfers, Transfer{To: to, Amount: amount, Denom: denom})
	return r
}

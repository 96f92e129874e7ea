// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// append-only transaction audit log
//
// every execute operation of every ledger appends one entry; entries
// are never modified or deleted
//
// the key is: big endian seconds ++ 0x00 ++ actor
// so two transitions by the same actor within the same second
// overwrite one another; this mirrors the established on-disk format
// and changing the key layout is a breaking migration
package audit

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// DefaultHistoryLimit - entries returned when the caller gives no limit
const DefaultHistoryLimit = 100

// Entry - one audit record
type Entry struct {
	TxID      string `json:"tx_id"`
	Action    string `json:"tx_type"`
	Actor     string `json:"initiator"`
	Detail    string `json:"details"`
	Timestamp uint64 `json:"timestamp"`
}

// Log - interface for audit recording and history queries
type Log interface {
	Record(ctx ledger.Context, action string, detail string)
	History(limit int) ([]Entry, error)
}

type auditLog struct {
	pool storage.Handle
}

var data auditLog

// Initialise - attach the audit pool
func Initialise(pool storage.Handle) {
	data = auditLog{
		pool: pool,
	}
}

// Get - return the Log interface
func Get() Log {
	return &data
}

// compose the entry key: seconds ++ 0x00 ++ actor
func entryKey(seconds uint64, actor string) []byte {
	key := make([]byte, 8, 9+len(actor))
	binary.BigEndian.PutUint64(key, seconds)
	key = append(key, storage.KeySeparator)
	return append(key, actor...)
}

// Record - stage one audit entry in the current transaction
func (l *auditLog) Record(ctx ledger.Context, action string, detail string) {
	seconds := ctx.Seconds()
	entry := Entry{
		TxID:      fmt.Sprintf("%d-%s", seconds, ctx.Caller),
		Action:    action,
		Actor:     ctx.Caller,
		Detail:    detail,
		Timestamp: seconds,
	}

	buffer, err := json.Marshal(entry)
	logger.PanicIfError("audit.Record", err)

	l.pool.Put(entryKey(seconds, ctx.Caller), buffer)
}

// History - most recent entries first, bounded by limit
//
// limit <= 0 selects the default; an empty log yields an empty
// sequence, not an error
func (l *auditLog) History(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	elements, err := l.pool.ReverseFetch(limit)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		var entry Entry
		err = json.Unmarshal(e.Value, &entry)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

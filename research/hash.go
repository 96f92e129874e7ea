// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package research

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// RegisterHash - anchor a research fingerprint to the caller
//
// cid, doi and authors are optional metadata
func (d *researchData) RegisterHash(ctx ledger.Context, hash string, cid string, doi string, authors []string) (*ledger.Result, error) {
	if d.poolHashes.Has([]byte(hash)) {
		return nil, fault.HashAlreadyRegistered
	}

	record := HashRecord{
		Hash:      hash,
		Owner:     ctx.Caller,
		Timestamp: ctx.Seconds(),
		CID:       cid,
		DOI:       doi,
		Authors:   authors,
	}
	d.storeHashRecord(&record)

	audit.Get().Record(ctx, "register_hash", hash)

	return ledger.NewResult("register_hash").Add("hash", hash), nil
}

// MintDOINFT - mint a DOI NFT onto an existing hash record
//
// only the registering owner may mint; the NFT id is derived from the
// DOI and the hash
func (d *researchData) MintDOINFT(ctx ledger.Context, hash string, doi string) (*ledger.Result, error) {
	record, err := d.GetHashRecord(hash)
	if nil != err {
		return nil, err
	}
	if record.Owner != ctx.Caller {
		return nil, fault.NotHashOwner
	}

	nftID := fmt.Sprintf("nft:%s:%s", doi, hash)
	record.NFTID = nftID
	record.DOI = doi
	d.storeHashRecord(record)

	audit.Get().Record(ctx, "mint_doi_nft", nftID)

	return ledger.NewResult("mint_doi_nft").
		Add("hash", hash).
		Add("nft_id", nftID), nil
}

// GetHashRecord - point lookup by hash
func (d *researchData) GetHashRecord(hash string) (*HashRecord, error) {
	buffer := d.poolHashes.Get([]byte(hash))
	if nil == buffer {
		return nil, fault.HashNotFound
	}
	var record HashRecord
	err := json.Unmarshal(buffer, &record)
	if nil != err {
		return nil, err
	}
	return &record, nil
}

func (d *researchData) storeHashRecord(record *HashRecord) {
	buffer, err := json.Marshal(record)
	logger.PanicIfError("research.storeHashRecord", err)
	d.poolHashes.Put([]byte(record.Hash), buffer)
}

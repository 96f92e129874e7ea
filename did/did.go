// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package did - decentralised identifier registry
//
// Stores DID documents together with a SHA3-256 digest of the
// document JSON, so a verifier can compare a presented document
// against the anchored digest without fetching the whole record.
// Updates are restricted to the registering identity.
package did

import (
	"encoding/json"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// Document - a DID document, schema validation is external
type Document struct {
	Context         string `json:"context"`
	ID              string `json:"id"`
	PublicKey       string `json:"public_key"`
	ServiceEndpoint string `json:"service_endpoint,omitempty"`
}

// envelope persisted per DID; the registrant gates later updates
type record struct {
	Document     Document `json:"document"`
	Registrant   string   `json:"registrant"`
	RegisteredAt uint64   `json:"registered_at"`
}

// Ledger - DID transitions and queries
type Ledger interface {
	RegisterDID(ctx ledger.Context, document Document) (*ledger.Result, error)
	UpdateDID(ctx ledger.Context, document Document) (*ledger.Result, error)

	GetDID(didID string) (*Document, error)
	GetDIDHash(didID string) ([]byte, error)
}

type didData struct {
	poolDocuments storage.Handle
	poolHashes    storage.Handle
}

var data didData

// Initialise - attach the DID pools
func Initialise(documents, hashes storage.Handle) {
	data = didData{
		poolDocuments: documents,
		poolHashes:    hashes,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}

// RegisterDID - anchor a new DID document for the caller
func (d *didData) RegisterDID(ctx ledger.Context, document Document) (*ledger.Result, error) {
	didID := document.ID
	if d.poolDocuments.Has([]byte(didID)) {
		return nil, fault.DIDAlreadyRegistered
	}

	d.store(&record{
		Document:     document,
		Registrant:   ctx.Caller,
		RegisteredAt: ctx.Seconds(),
	})

	audit.Get().Record(ctx, "register_did", didID)

	return ledger.NewResult("register_did").Add("did", didID), nil
}

// UpdateDID - replace the document of a registered DID
//
// only the registrant may update; the digest is recomputed
func (d *didData) UpdateDID(ctx ledger.Context, document Document) (*ledger.Result, error) {
	didID := document.ID
	existing, err := d.load(didID)
	if nil != err {
		return nil, err
	}
	if existing.Registrant != ctx.Caller {
		return nil, fault.NotDIDRegistrant
	}

	existing.Document = document
	d.store(existing)

	audit.Get().Record(ctx, "update_did", didID)

	return ledger.NewResult("update_did").Add("did", didID), nil
}

// GetDID - the current document for a DID
func (d *didData) GetDID(didID string) (*Document, error) {
	rec, err := d.load(didID)
	if nil != err {
		return nil, err
	}
	return &rec.Document, nil
}

// GetDIDHash - the anchored SHA3-256 digest of the document JSON
func (d *didData) GetDIDHash(didID string) ([]byte, error) {
	digest := d.poolHashes.Get([]byte(didID))
	if nil == digest {
		return nil, fault.DIDNotFound
	}
	return digest, nil
}

func (d *didData) load(didID string) (*record, error) {
	buffer := d.poolDocuments.Get([]byte(didID))
	if nil == buffer {
		return nil, fault.DIDNotFound
	}
	var rec record
	err := json.Unmarshal(buffer, &rec)
	if nil != err {
		return nil, err
	}
	return &rec, nil
}

// persist the envelope and the digest of the document JSON
func (d *didData) store(rec *record) {
	buffer, err := json.Marshal(rec)
	logger.PanicIfError("did.store", err)
	d.poolDocuments.Put([]byte(rec.Document.ID), buffer)

	documentJSON, err := json.Marshal(&rec.Document)
	logger.PanicIfError("did.store", err)
	digest := sha3.Sum256(documentJSON)
	d.poolHashes.Put([]byte(rec.Document.ID), digest[:])
}

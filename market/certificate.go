// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// IssueCertificate - attest course completion for a student
//
// the caller becomes the issuer; an existing progression record for
// the student and course is back-linked to the certificate
func (d *marketData) IssueCertificate(ctx ledger.Context, certificateID string, courseID string, student string, metadataURI string) (*ledger.Result, error) {
	if d.poolCertificates.Has([]byte(certificateID)) {
		return nil, fault.CertificateAlreadyExists
	}

	certificate := Certificate{
		CertificateID: certificateID,
		CourseID:      courseID,
		Student:       student,
		Issuer:        ctx.Caller,
		IssueDate:     ctx.Seconds(),
		MetadataURI:   metadataURI,
		Revoked:       false,
	}
	d.storeCertificate(&certificate)

	progression, err := d.loadProgression(student, courseID)
	if nil == err {
		progression.CertificateID = certificateID
		d.storeProgression(progression)
	}

	audit.Get().Record(ctx, "issue_certificate", fmt.Sprintf("certificate_id: %s, course: %s", certificateID, courseID))

	return ledger.NewResult("issue_certificate").
		Add("certificate_id", certificateID).
		Add("student", student), nil
}

// RevokeCertificate - permanently revoke an issued certificate
func (d *marketData) RevokeCertificate(ctx ledger.Context, certificateID string) (*ledger.Result, error) {
	certificate, err := d.GetCertificate(certificateID)
	if nil != err {
		return nil, err
	}
	if certificate.Issuer != ctx.Caller {
		return nil, fault.NotCertificateIssuer
	}
	if certificate.Revoked {
		return nil, fault.CertificateAlreadyRevoked
	}

	certificate.Revoked = true
	d.storeCertificate(certificate)

	audit.Get().Record(ctx, "revoke_certificate", certificateID)

	return ledger.NewResult("revoke_certificate").Add("certificate_id", certificateID), nil
}

// GetCertificate - point lookup by certificate id
func (d *marketData) GetCertificate(certificateID string) (*Certificate, error) {
	buffer := d.poolCertificates.Get([]byte(certificateID))
	if nil == buffer {
		return nil, fault.CertificateNotFound
	}
	var certificate Certificate
	err := json.Unmarshal(buffer, &certificate)
	if nil != err {
		return nil, err
	}
	return &certificate, nil
}

// StudentCertificates - all certificates issued to one student
func (d *marketData) StudentCertificates(student string) ([]Certificate, error) {
	certificates := []Certificate{}
	err := d.poolCertificates.Map(func(key []byte, value []byte) error {
		var certificate Certificate
		err := json.Unmarshal(value, &certificate)
		if nil != err {
			return err
		}
		if certificate.Student == student {
			certificates = append(certificates, certificate)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return certificates, nil
}

func (d *marketData) storeCertificate(certificate *Certificate) {
	buffer, err := json.Marshal(certificate)
	logger.PanicIfError("market.storeCertificate", err)
	d.poolCertificates.Put([]byte(certificate.CertificateID), buffer)
}

// compose the progression key: student ++ 0x00 ++ course id
func progressionKey(student string, courseID string) []byte {
	key := make([]byte, 0, len(student)+1+len(courseID))
	key = append(key, student...)
	key = append(key, storage.KeySeparator)
	return append(key, courseID...)
}

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
)

// check one certificate can back a degree for the student
func (d *marketData) verifyCertificate(certificateID string, student string) (*Certificate, error) {
	certificate, err := d.GetCertificate(certificateID)
	if nil != err {
		return nil, err
	}
	if certificate.Revoked {
		return nil, fault.CertificateRevoked
	}
	if certificate.Student != student {
		return nil, fault.CertificateNotOwnedBy
	}
	return certificate, nil
}

// IssueDegree - bundle existing certificates into a degree
//
// every listed certificate must exist, be unrevoked and belong to the
// student; the caller becomes the issuer
func (d *marketData) IssueDegree(ctx ledger.Context, degreeID string, student string, certificateIDs []string, degreeType string, metadataURI string) (*ledger.Result, error) {
	if d.poolDegrees.Has([]byte(degreeID)) {
		return nil, fault.DegreeAlreadyExists
	}

	for _, certificateID := range certificateIDs {
		_, err := d.verifyCertificate(certificateID, student)
		if nil != err {
			return nil, err
		}
	}

	degree := Degree{
		DegreeID:       degreeID,
		Student:        student,
		Issuer:         ctx.Caller,
		CertificateIDs: certificateIDs,
		DegreeType:     degreeType,
		IssueDate:      ctx.Seconds(),
		MetadataURI:    metadataURI,
		Revoked:        false,
	}
	d.storeDegree(&degree)

	audit.Get().Record(ctx, "issue_degree", fmt.Sprintf("degree_id: %s, student: %s", degreeID, student))

	return ledger.NewResult("issue_degree").
		Add("degree_id", degreeID).
		Add("student", student), nil
}

// RevokeDegree - permanently revoke an issued degree
func (d *marketData) RevokeDegree(ctx ledger.Context, degreeID string) (*ledger.Result, error) {
	degree, err := d.GetDegree(degreeID)
	if nil != err {
		return nil, err
	}
	if degree.Issuer != ctx.Caller {
		return nil, fault.NotDegreeIssuer
	}
	if degree.Revoked {
		return nil, fault.DegreeAlreadyRevoked
	}

	degree.Revoked = true
	d.storeDegree(degree)

	audit.Get().Record(ctx, "revoke_degree", degreeID)

	return ledger.NewResult("revoke_degree").Add("degree_id", degreeID), nil
}

// AddCertificateToDegree - extend an unrevoked degree with a further
// certificate of the same student
func (d *marketData) AddCertificateToDegree(ctx ledger.Context, degreeID string, certificateID string) (*ledger.Result, error) {
	degree, err := d.GetDegree(degreeID)
	if nil != err {
		return nil, err
	}
	if degree.Issuer != ctx.Caller {
		return nil, fault.NotDegreeIssuer
	}
	if degree.Revoked {
		return nil, fault.DegreeAlreadyRevoked
	}
	for _, existing := range degree.CertificateIDs {
		if existing == certificateID {
			return nil, fault.CertificateAlreadyAttached
		}
	}
	_, err = d.verifyCertificate(certificateID, degree.Student)
	if nil != err {
		return nil, err
	}

	degree.CertificateIDs = append(degree.CertificateIDs, certificateID)
	d.storeDegree(degree)

	audit.Get().Record(ctx, "add_certificate_to_degree", fmt.Sprintf("degree_id: %s, certificate_id: %s", degreeID, certificateID))

	return ledger.NewResult("add_certificate_to_degree").
		Add("degree_id", degreeID).
		Add("certificate_id", certificateID), nil
}

// SetDegreeRequirements - upsert the course list one degree type demands
func (d *marketData) SetDegreeRequirements(ctx ledger.Context, degreeType string, requiredCourses []string, requiredCredits uint32) (*ledger.Result, error) {
	requirements := Requirements{
		DegreeType:      degreeType,
		RequiredCourses: requiredCourses,
		RequiredCredits: requiredCredits,
	}
	buffer, err := json.Marshal(&requirements)
	logger.PanicIfError("market.SetDegreeRequirements", err)
	d.poolRequirements.Put([]byte(degreeType), buffer)

	audit.Get().Record(ctx, "set_degree_requirements", degreeType)

	return ledger.NewResult("set_degree_requirements").Add("degree_type", degreeType), nil
}

// GetDegree - point lookup by degree id
func (d *marketData) GetDegree(degreeID string) (*Degree, error) {
	buffer := d.poolDegrees.Get([]byte(degreeID))
	if nil == buffer {
		return nil, fault.DegreeNotFound
	}
	var degree Degree
	err := json.Unmarshal(buffer, &degree)
	if nil != err {
		return nil, err
	}
	return &degree, nil
}

// StudentDegrees - all degrees issued to one student
func (d *marketData) StudentDegrees(student string) ([]Degree, error) {
	degrees := []Degree{}
	err := d.poolDegrees.Map(func(key []byte, value []byte) error {
		var degree Degree
		err := json.Unmarshal(value, &degree)
		if nil != err {
			return err
		}
		if degree.Student == student {
			degrees = append(degrees, degree)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return degrees, nil
}

// CheckDegreeEligibility - compare a student's unrevoked certificates
// against the course list required for a degree type
func (d *marketData) CheckDegreeEligibility(student string, degreeType string) (*Eligibility, error) {
	buffer := d.poolRequirements.Get([]byte(degreeType))
	if nil == buffer {
		return nil, fault.RequirementsNotFound
	}
	var requirements Requirements
	err := json.Unmarshal(buffer, &requirements)
	if nil != err {
		return nil, err
	}

	certificates, err := d.StudentCertificates(student)
	if nil != err {
		return nil, err
	}
	certified := make(map[string]bool)
	for _, certificate := range certificates {
		if !certificate.Revoked {
			certified[certificate.CourseID] = true
		}
	}

	eligibility := Eligibility{
		MissingCourses:   []string{},
		CompletedCourses: []string{},
	}
	for _, courseID := range requirements.RequiredCourses {
		if certified[courseID] {
			eligibility.CompletedCourses = append(eligibility.CompletedCourses, courseID)
		} else {
			eligibility.MissingCourses = append(eligibility.MissingCourses, courseID)
		}
	}
	eligibility.Eligible = 0 == len(eligibility.MissingCourses)

	return &eligibility, nil
}

func (d *marketData) storeDegree(degree *Degree) {
	buffer, err := json.Marshal(degree)
	logger.PanicIfError("market.storeDegree", err)
	d.poolDegrees.Put([]byte(degree.DegreeID), buffer)
}

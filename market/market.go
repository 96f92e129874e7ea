// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - course NFTs, completion certificates and degrees
//
// Courses are sold for eVND with a scholarship fund fee taken from
// each sale.  Certificates attest course completion per student;
// degrees bundle certificates and can be checked against per-type
// requirements.
package market

import (
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// ScholarshipFund - recipient of the sale fee
const ScholarshipFund = "scholarship_fund"

// FeePercent - share of each course sale sent to the scholarship fund
const FeePercent = 2

// Course - a sellable course NFT
type Course struct {
	ID       string `json:"id"`
	Creator  string `json:"creator"`
	Owner    string `json:"owner"`
	Metadata string `json:"metadata"`
	Price    uint64 `json:"price"`
	Sold     bool   `json:"sold"`
}

// Certificate - course completion attestation for one student
type Certificate struct {
	CertificateID string `json:"certificate_id"`
	CourseID      string `json:"course_id"`
	Student       string `json:"student"`
	Issuer        string `json:"issuer"`
	IssueDate     uint64 `json:"issue_date"`
	MetadataURI   string `json:"metadata_uri"`
	Revoked       bool   `json:"revoked"`
}

// Degree - a degree NFT composed of certificates
type Degree struct {
	DegreeID       string   `json:"degree_id"`
	Student        string   `json:"student"`
	Issuer         string   `json:"issuer"`
	CertificateIDs []string `json:"certificate_ids"`
	DegreeType     string   `json:"degree_type"`
	IssueDate      uint64   `json:"issue_date"`
	MetadataURI    string   `json:"metadata_uri"`
	Revoked        bool     `json:"revoked"`
}

// Progression - per student per course progress tracking
type Progression struct {
	Student        string `json:"student"`
	CourseID       string `json:"course_id"`
	Progress       uint8  `json:"progress"`
	Completed      bool   `json:"completed"`
	CompletionDate uint64 `json:"completion_date,omitempty"`
	CertificateID  string `json:"certificate_id,omitempty"`
}

// Requirements - course list one degree type demands
type Requirements struct {
	DegreeType      string   `json:"degree_type"`
	RequiredCourses []string `json:"required_courses"`
	RequiredCredits uint32   `json:"required_credits"`
}

// Eligibility - result of a degree eligibility check
type Eligibility struct {
	Eligible         bool     `json:"eligible"`
	MissingCourses   []string `json:"missing_courses"`
	CompletedCourses []string `json:"completed_courses"`
}

// Ledger - market transitions and queries
type Ledger interface {
	MintCourse(ctx ledger.Context, id string, metadata string, price uint64) (*ledger.Result, error)
	BuyCourse(ctx ledger.Context, id string) (*ledger.Result, error)
	IssueCertificate(ctx ledger.Context, certificateID string, courseID string, student string, metadataURI string) (*ledger.Result, error)
	RevokeCertificate(ctx ledger.Context, certificateID string) (*ledger.Result, error)
	UpdateCourseProgress(ctx ledger.Context, student string, courseID string, progress uint8) (*ledger.Result, error)
	CompleteCourse(ctx ledger.Context, student string, courseID string) (*ledger.Result, error)
	IssueDegree(ctx ledger.Context, degreeID string, student string, certificateIDs []string, degreeType string, metadataURI string) (*ledger.Result, error)
	RevokeDegree(ctx ledger.Context, degreeID string) (*ledger.Result, error)
	AddCertificateToDegree(ctx ledger.Context, degreeID string, certificateID string) (*ledger.Result, error)
	SetDegreeRequirements(ctx ledger.Context, degreeType string, requiredCourses []string, requiredCredits uint32) (*ledger.Result, error)

	GetCourse(id string) (*Course, error)
	ListCourses() ([]Course, error)
	GetCertificate(certificateID string) (*Certificate, error)
	StudentCertificates(student string) ([]Certificate, error)
	GetCourseProgress(student string, courseID string) (*Progression, error)
	GetDegree(degreeID string) (*Degree, error)
	StudentDegrees(student string) ([]Degree, error)
	CheckDegreeEligibility(student string, degreeType string) (*Eligibility, error)
}

type marketData struct {
	poolCourses      storage.Handle
	poolCertificates storage.Handle
	poolDegrees      storage.Handle
	poolProgressions storage.Handle
	poolRequirements storage.Handle
}

var data marketData

// Initialise - attach the market pools
func Initialise(courses, certificates, degrees, progressions, requirements storage.Handle) {
	data = marketData{
		poolCourses:      courses,
		poolCertificates: certificates,
		poolDegrees:      degrees,
		poolProgressions: progressions,
		poolRequirements: requirements,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}

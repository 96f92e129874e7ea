// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/market"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// Market
// ------

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  market.Ledger
}

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

func New(log *logger.L, l market.Ledger) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Ledger:  l,
	}
}

// Courses
// -------

// MintCourseArguments - arguments for listing a course for sale
type MintCourseArguments struct {
	request.Access
	Id       string `json:"id"`
	Metadata string `json:"metadata"`
	Price    uint64 `json:"price"`
}

// MintCourse - list a new course, caller becomes creator and owner
func (m *Market) MintCourse(arguments *MintCourseArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.MintCourse: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.MintCourse(arguments.Context(), arguments.Id, arguments.Metadata, arguments.Price)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// BuyCourseArguments - arguments for buying a course
//
// the attached funds must cover the course price
type BuyCourseArguments struct {
	request.Access
	Id string `json:"id"`
}

// BuyCourse - buy a listed course, paying creator and scholarship fund
func (m *Market) BuyCourse(arguments *BuyCourseArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.BuyCourse: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.BuyCourse(arguments.Context(), arguments.Id)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Certificates
// ------------

// IssueCertificateArguments - arguments for issuing a course certificate
type IssueCertificateArguments struct {
	request.Access
	CertificateId string `json:"certificate_id"`
	CourseId      string `json:"course_id"`
	Student       string `json:"student"`
	MetadataURI   string `json:"metadata_uri"`
}

// IssueCertificate - certify a student for a course
func (m *Market) IssueCertificate(arguments *IssueCertificateArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.IssueCertificate: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.IssueCertificate(arguments.Context(), arguments.CertificateId, arguments.CourseId, arguments.Student, arguments.MetadataURI)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// RevokeCertificateArguments - select one certificate
type RevokeCertificateArguments struct {
	request.Access
	CertificateId string `json:"certificate_id"`
}

// RevokeCertificate - mark a certificate revoked, issuer only
func (m *Market) RevokeCertificate(arguments *RevokeCertificateArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.RevokeCertificate: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.RevokeCertificate(arguments.Context(), arguments.CertificateId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Progressions
// ------------

// ProgressArguments - arguments for recording course progress
type ProgressArguments struct {
	request.Access
	Student  string `json:"student"`
	CourseId string `json:"course_id"`
	Progress uint8  `json:"progress"`
}

// UpdateProgress - record a student's progress in a course, 0 to 100
func (m *Market) UpdateProgress(arguments *ProgressArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.UpdateProgress: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.UpdateCourseProgress(arguments.Context(), arguments.Student, arguments.CourseId, arguments.Progress)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// CompleteArguments - arguments for marking a course complete
type CompleteArguments struct {
	request.Access
	Student  string `json:"student"`
	CourseId string `json:"course_id"`
}

// CompleteCourse - mark a fully progressed course complete
func (m *Market) CompleteCourse(arguments *CompleteArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.CompleteCourse: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.CompleteCourse(arguments.Context(), arguments.Student, arguments.CourseId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Degrees
// -------

// IssueDegreeArguments - arguments for issuing a degree
type IssueDegreeArguments struct {
	request.Access
	DegreeId       string   `json:"degree_id"`
	Student        string   `json:"student"`
	CertificateIds []string `json:"certificate_ids"`
	DegreeType     string   `json:"degree_type"`
	MetadataURI    string   `json:"metadata_uri"`
}

// IssueDegree - issue a degree backed by valid certificates
func (m *Market) IssueDegree(arguments *IssueDegreeArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.IssueDegree: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.IssueDegree(arguments.Context(), arguments.DegreeId, arguments.Student, arguments.CertificateIds, arguments.DegreeType, arguments.MetadataURI)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// RevokeDegreeArguments - select one degree
type RevokeDegreeArguments struct {
	request.Access
	DegreeId string `json:"degree_id"`
}

// RevokeDegree - mark a degree revoked, issuer only
func (m *Market) RevokeDegree(arguments *RevokeDegreeArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.RevokeDegree: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.RevokeDegree(arguments.Context(), arguments.DegreeId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// ExtendDegreeArguments - arguments for attaching a certificate
type ExtendDegreeArguments struct {
	request.Access
	DegreeId      string `json:"degree_id"`
	CertificateId string `json:"certificate_id"`
}

// ExtendDegree - attach another certificate to a degree, issuer only
func (m *Market) ExtendDegree(arguments *ExtendDegreeArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.ExtendDegree: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.AddCertificateToDegree(arguments.Context(), arguments.DegreeId, arguments.CertificateId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// RequirementsArguments - arguments for setting degree requirements
type RequirementsArguments struct {
	request.Access
	DegreeType      string   `json:"degree_type"`
	RequiredCourses []string `json:"required_courses"`
	RequiredCredits uint32   `json:"required_credits"`
}

// SetRequirements - define the course list of a degree type
func (m *Market) SetRequirements(arguments *RequirementsArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	m.Log.Infof("Market.SetRequirements: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return m.Ledger.SetDegreeRequirements(arguments.Context(), arguments.DegreeType, arguments.RequiredCourses, arguments.RequiredCredits)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Queries
// -------

// GetCourseArguments - select one course
type GetCourseArguments struct {
	Id string `json:"id"`
}

// GetCourse - read one course
func (m *Market) GetCourse(arguments *GetCourseArguments, reply *market.Course) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		course, err := m.Ledger.GetCourse(arguments.Id)
		if nil != err {
			return err
		}

		*reply = *course
		return nil
	})
}

// CoursesArguments - no parameters
type CoursesArguments struct {
}

// CoursesReply - result of the course list query
type CoursesReply struct {
	Courses []market.Course `json:"courses"`
}

// Courses - list all courses
func (m *Market) Courses(arguments *CoursesArguments, reply *CoursesReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		courses, err := m.Ledger.ListCourses()
		if nil != err {
			return err
		}

		reply.Courses = courses
		return nil
	})
}

// GetCertificateArguments - select one certificate
type GetCertificateArguments struct {
	CertificateId string `json:"certificate_id"`
}

// GetCertificate - read one certificate
func (m *Market) GetCertificate(arguments *GetCertificateArguments, reply *market.Certificate) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		certificate, err := m.Ledger.GetCertificate(arguments.CertificateId)
		if nil != err {
			return err
		}

		*reply = *certificate
		return nil
	})
}

// StudentArguments - select records of one student
type StudentArguments struct {
	Student string `json:"student"`
}

// CertificatesReply - result of a certificate list query
type CertificatesReply struct {
	Certificates []market.Certificate `json:"certificates"`
}

// Certificates - list certificates held by a student
func (m *Market) Certificates(arguments *StudentArguments, reply *CertificatesReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		certificates, err := m.Ledger.StudentCertificates(arguments.Student)
		if nil != err {
			return err
		}

		reply.Certificates = certificates
		return nil
	})
}

// GetProgressArguments - select one student/course progression
type GetProgressArguments struct {
	Student  string `json:"student"`
	CourseId string `json:"course_id"`
}

// GetProgress - read a progression, zero for unknown pairs
func (m *Market) GetProgress(arguments *GetProgressArguments, reply *market.Progression) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		progression, err := m.Ledger.GetCourseProgress(arguments.Student, arguments.CourseId)
		if nil != err {
			return err
		}

		*reply = *progression
		return nil
	})
}

// GetDegreeArguments - select one degree
type GetDegreeArguments struct {
	DegreeId string `json:"degree_id"`
}

// GetDegree - read one degree
func (m *Market) GetDegree(arguments *GetDegreeArguments, reply *market.Degree) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		degree, err := m.Ledger.GetDegree(arguments.DegreeId)
		if nil != err {
			return err
		}

		*reply = *degree
		return nil
	})
}

// DegreesReply - result of a degree list query
type DegreesReply struct {
	Degrees []market.Degree `json:"degrees"`
}

// Degrees - list degrees held by a student
func (m *Market) Degrees(arguments *StudentArguments, reply *DegreesReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		degrees, err := m.Ledger.StudentDegrees(arguments.Student)
		if nil != err {
			return err
		}

		reply.Degrees = degrees
		return nil
	})
}

// EligibilityArguments - student and degree type to check
type EligibilityArguments struct {
	Student    string `json:"student"`
	DegreeType string `json:"degree_type"`
}

// Eligibility - check a student against the degree requirements
func (m *Market) Eligibility(arguments *EligibilityArguments, reply *market.Eligibility) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		eligibility, err := m.Ledger.CheckDegreeEligibility(arguments.Student, arguments.DegreeType)
		if nil != err {
			return err
		}

		*reply = *eligibility
		return nil
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - creation collision, the record is already present
	ExistsError GenericError

	// InvalidError - out-of-range or malformed argument
	InvalidError GenericError

	// NotFoundError - referenced record is absent
	NotFoundError GenericError

	// StateError - redundant lifecycle flag flip
	StateError GenericError

	// UnauthorizedError - caller fails an ownership or issuer check
	UnauthorizedError GenericError

	// FundsError - attached funds do not cover the required amount
	FundsError GenericError

	// ProcessError - internal operation failure
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised = ProcessError("already initialised")
	InvalidCount       = InvalidError("invalid count")
	InvalidCurrency    = InvalidError("invalid currency")
	InvalidCursor      = InvalidError("invalid cursor")
	InvalidIpAddress   = InvalidError("invalid ip Address")
	MissingParameters  = InvalidError("missing parameters")
	NotInitialised     = ProcessError("not initialised")
	RateLimiting       = ProcessError("rate limiting")
	WrongNetworkName   = InvalidError("wrong network name")
)

// existence errors - keep in alphabetic order
var (
	BountyClaimAlreadyExists     = ExistsError("bounty claim already exists")
	CertificateAlreadyAttached   = ExistsError("certificate already attached to degree")
	CertificateAlreadyExists     = ExistsError("certificate already exists")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CourseAlreadyExists          = ExistsError("course already exists")
	CredentialAlreadyExists      = ExistsError("credential already exists")
	DIDAlreadyRegistered         = ExistsError("DID already registered")
	DegreeAlreadyExists          = ExistsError("degree already exists")
	EscrowAlreadyExists          = ExistsError("escrow already exists")
	HashAlreadyRegistered        = ExistsError("hash already registered")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	SchoolAlreadyRegistered      = ExistsError("school node already registered")
	SeatAlreadyExists            = ExistsError("seat already exists")
	TokenAlreadyExists           = ExistsError("token already exists")
)

// not found errors - keep in alphabetic order
var (
	BountyClaimNotFound  = NotFoundError("bounty claim not found")
	CertificateNotFound  = NotFoundError("certificate not found")
	CourseNotFound       = NotFoundError("course not found")
	CredentialNotFound   = NotFoundError("credential not found")
	DIDNotFound          = NotFoundError("DID not found")
	DegreeNotFound       = NotFoundError("degree not found")
	EscrowNotFound       = NotFoundError("escrow not found")
	HashNotFound         = NotFoundError("hash record not found")
	ProgressionNotFound  = NotFoundError("progression not found")
	RequirementsNotFound = NotFoundError("degree requirements not found")
	ResultNotFound       = NotFoundError("admission result not found")
	SchoolNotFound       = NotFoundError("school node not found")
	ScoreNotFound        = NotFoundError("candidate score not found")
	SeatNotFound         = NotFoundError("seat not found")
	TokenNotFound        = NotFoundError("token not found")
)

// redundant state transition errors - keep in alphabetic order
var (
	BountyAlreadyRewarded     = StateError("bounty already rewarded")
	CertificateAlreadyRevoked = StateError("certificate already revoked")
	CourseAlreadyCompleted    = StateError("course already completed")
	CourseAlreadySold         = StateError("course already sold")
	CredentialAlreadyRevoked  = StateError("credential already revoked")
	DegreeAlreadyRevoked      = StateError("degree already revoked")
	EscrowAlreadyReleased     = StateError("escrow already released")
	SchoolAlreadyDeactivated  = StateError("school node already deactivated")
	SeatAlreadyRetired        = StateError("seat already retired")
)

// authorization errors - keep in alphabetic order
var (
	NotCertificateIssuer  = UnauthorizedError("not the certificate issuer")
	NotCredentialIssuer   = UnauthorizedError("not the credential issuer")
	NotDIDRegistrant      = UnauthorizedError("not the DID registrant")
	NotDegreeIssuer       = UnauthorizedError("not the degree issuer")
	NotEscrowParticipant  = UnauthorizedError("not the escrow payer or school")
	NotEscrowSchool       = UnauthorizedError("not the escrow school")
	NotHashOwner          = UnauthorizedError("not the hash record owner")
	NotSchoolOwner        = UnauthorizedError("not the school node owner")
	NotTokenOwner         = UnauthorizedError("not the token owner")
	NotTokenOwnerOrIssuer = UnauthorizedError("not the token owner or issuer")
)

// argument errors - keep in alphabetic order
var (
	CertificateNotOwnedBy    = InvalidError("certificate does not belong to the student")
	CertificateRevoked       = InvalidError("certificate is revoked")
	ProgressNotComplete      = InvalidError("course progress is not complete")
	ProgressOutOfRange       = InvalidError("progress must be 0 to 100")
	ProofOfEnrollmentMissing = InvalidError("proof of enrollment not set")
)

// funds errors - keep in alphabetic order
var (
	InsufficientFunds   = FundsError("insufficient funds sent")
	InsufficientPayment = FundsError("insufficient payment")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e StateError) Error() string        { return string(e) }
func (e UnauthorizedError) Error() string { return string(e) }
func (e FundsError) Error() string        { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// IsErrExists - determine if creation collision class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if invalid argument class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrState - determine if redundant flag flip class
func IsErrState(e error) bool { _, ok := e.(StateError); return ok }

// IsErrUnauthorized - determine if authorization class
func IsErrUnauthorized(e error) bool { _, ok := e.(UnauthorizedError); return ok }

// IsErrFunds - determine if funds class
func IsErrFunds(e error) bool { _, ok := e.(FundsError); return ok }

// IsErrProcess - determine if process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

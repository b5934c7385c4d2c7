// Package apierrors provides the error envelope entities and the error
// taxonomy shared by the Recurly client packages.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingSubdomain is returned when no site subdomain is provided.
	ErrMissingSubdomain = errors.New("subdomain is required")

	// ErrValidation is matched by validation failures (422, 412 and local checks).
	ErrValidation = errors.New("the information being saved is not valid")

	// ErrInvalidCredentials is matched when the API key is rejected (401, 403).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTemporarilyUnavailable is matched when the service is down (503).
	ErrTemporarilyUnavailable = errors.New("service temporarily unavailable")

	// ErrServerError is matched by internal server errors (500).
	ErrServerError = errors.New("server error")

	// ErrUnhandledStatus is matched by any status outside the known set.
	ErrUnhandledStatus = errors.New("unhandled response status code")

	// ErrParse is matched when a successful response body cannot be decoded.
	ErrParse = errors.New("unable to parse response")
)

// Outcome is the class a response status code falls into.
type Outcome int

const (
	// OutcomeUnhandled covers every status not listed below.
	OutcomeUnhandled Outcome = iota
	// OutcomeSuccess means the body holds the requested entity.
	OutcomeSuccess
	// OutcomeNotFound means the resource does not exist.
	OutcomeNotFound
	// OutcomeValidation means the submitted entity was rejected.
	OutcomeValidation
	// OutcomeInvalidCredentials means the API key was rejected.
	OutcomeInvalidCredentials
	// OutcomeTemporarilyUnavailable means the service is down; the body is ignored.
	OutcomeTemporarilyUnavailable
	// OutcomeServerError means the service failed internally.
	OutcomeServerError
)

// outcomes is the complete status table. Anything absent is OutcomeUnhandled.
var outcomes = map[int]Outcome{
	http.StatusOK:                  OutcomeSuccess,
	http.StatusNotFound:            OutcomeNotFound,
	http.StatusUnprocessableEntity: OutcomeValidation,
	http.StatusPreconditionFailed:  OutcomeValidation,
	http.StatusUnauthorized:        OutcomeInvalidCredentials,
	http.StatusForbidden:           OutcomeInvalidCredentials,
	http.StatusServiceUnavailable:  OutcomeTemporarilyUnavailable,
	http.StatusInternalServerError: OutcomeServerError,
}

// Classify maps a status code to its outcome.
func Classify(statusCode int) Outcome {
	return outcomes[statusCode]
}

// HasErrorBody reports whether responses of this outcome carry an error
// envelope worth parsing.
func (o Outcome) HasErrorBody() bool {
	switch o {
	case OutcomeValidation, OutcomeInvalidCredentials, OutcomeServerError, OutcomeUnhandled:
		return true
	}
	return false
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not found"
	case OutcomeValidation:
		return "validation"
	case OutcomeInvalidCredentials:
		return "invalid credentials"
	case OutcomeTemporarilyUnavailable:
		return "temporarily unavailable"
	case OutcomeServerError:
		return "server error"
	default:
		return "unhandled"
	}
}

// FromStatus builds the error for a response with the given status and
// parsed envelope. It returns nil for OutcomeSuccess and OutcomeNotFound.
func FromStatus(statusCode int, errs *Errors) error {
	switch Classify(statusCode) {
	case OutcomeSuccess, OutcomeNotFound:
		return nil
	case OutcomeValidation:
		return &ValidationError{StatusCode: statusCode, Errors: errs}
	case OutcomeInvalidCredentials:
		return &InvalidCredentialsError{StatusCode: statusCode, Errors: errs}
	case OutcomeTemporarilyUnavailable:
		return &TemporarilyUnavailableError{StatusCode: statusCode}
	case OutcomeServerError:
		return &ServerError{StatusCode: statusCode, Errors: errs}
	default:
		return &UnhandledStatusError{StatusCode: statusCode, Errors: errs}
	}
}

// ValidationError is returned when the information being saved is not
// valid. StatusCode is zero when the check failed before any request was
// sent.
type ValidationError struct {
	StatusCode int
	Errors     *Errors
}

func (e *ValidationError) Error() string {
	return describe(ErrValidation.Error(), e.Errors)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RecurlyError implements the RecurlyError interface.
func (e *ValidationError) RecurlyError() {}

// InvalidCredentialsError is returned when the API key is rejected.
type InvalidCredentialsError struct {
	StatusCode int
	Errors     *Errors
}

func (e *InvalidCredentialsError) Error() string {
	return describe(ErrInvalidCredentials.Error(), e.Errors)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// RecurlyError implements the RecurlyError interface.
func (e *InvalidCredentialsError) RecurlyError() {}

// TemporarilyUnavailableError is returned when the service answers 503.
// Such responses carry no envelope.
type TemporarilyUnavailableError struct {
	StatusCode int
}

func (e *TemporarilyUnavailableError) Error() string {
	return ErrTemporarilyUnavailable.Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *TemporarilyUnavailableError) Is(target error) bool {
	return target == ErrTemporarilyUnavailable
}

// RecurlyError implements the RecurlyError interface.
func (e *TemporarilyUnavailableError) RecurlyError() {}

// ServerError is returned when the service fails internally.
type ServerError struct {
	StatusCode int
	Errors     *Errors
}

func (e *ServerError) Error() string {
	return describe(ErrServerError.Error(), e.Errors)
}

// Is implements errors.Is for sentinel error matching.
func (e *ServerError) Is(target error) bool {
	return target == ErrServerError
}

// RecurlyError implements the RecurlyError interface.
func (e *ServerError) RecurlyError() {}

// UnhandledStatusError is returned for any status outside the known set.
type UnhandledStatusError struct {
	StatusCode int
	Errors     *Errors
}

func (e *UnhandledStatusError) Error() string {
	return describe(fmt.Sprintf("%s %d", ErrUnhandledStatus.Error(), e.StatusCode), e.Errors)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnhandledStatusError) Is(target error) bool {
	return target == ErrUnhandledStatus
}

// RecurlyError implements the RecurlyError interface.
func (e *UnhandledStatusError) RecurlyError() {}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RecurlyError implements the RecurlyError interface.
func (e *NetworkError) RecurlyError() {}

// ParseError wraps a failure to decode the body of a successful response.
type ParseError struct {
	Entity string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// RecurlyError implements the RecurlyError interface.
func (e *ParseError) RecurlyError() {}

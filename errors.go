package recurly

import (
	"github.com/recurly/recurly-client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingSubdomain is returned when no site subdomain is provided.
	ErrMissingSubdomain = apierrors.ErrMissingSubdomain

	// ErrValidation is matched by *ValidationError, returned for 422 and 412
	// responses and for accounts that fail local checks.
	ErrValidation = apierrors.ErrValidation

	// ErrInvalidCredentials is matched by *InvalidCredentialsError (401, 403).
	ErrInvalidCredentials = apierrors.ErrInvalidCredentials

	// ErrTemporarilyUnavailable is matched by *TemporarilyUnavailableError (503).
	ErrTemporarilyUnavailable = apierrors.ErrTemporarilyUnavailable

	// ErrServerError is matched by *ServerError (500).
	ErrServerError = apierrors.ErrServerError

	// ErrUnhandledStatus is matched by *UnhandledStatusError.
	ErrUnhandledStatus = apierrors.ErrUnhandledStatus

	// ErrParse is matched by *ParseError.
	ErrParse = apierrors.ErrParse
)

// RecurlyError is implemented by all errors produced by this package.
type RecurlyError interface {
	error
	RecurlyError() // marker method
}

// Error is a single error reported by the API. Errors read from a list
// carry Field, Code and Symbol; a standalone error carries Symbol, Message
// and Details.
type Error = apierrors.Error

// TransactionError describes a failed financial transaction.
type TransactionError = apierrors.TransactionError

// Errors is the error envelope parsed from a failed response.
type Errors = apierrors.Errors

// ValidationError is returned when the information being saved is not valid.
type ValidationError = apierrors.ValidationError

// InvalidCredentialsError is returned when the API key is rejected.
type InvalidCredentialsError = apierrors.InvalidCredentialsError

// TemporarilyUnavailableError is returned when the service answers 503.
type TemporarilyUnavailableError = apierrors.TemporarilyUnavailableError

// ServerError is returned when the service fails internally.
type ServerError = apierrors.ServerError

// UnhandledStatusError is returned for any other status code.
type UnhandledStatusError = apierrors.UnhandledStatusError

// NetworkError represents a network-level failure.
type NetworkError = apierrors.NetworkError

// ParseError is returned when a successful response cannot be decoded.
type ParseError = apierrors.ParseError

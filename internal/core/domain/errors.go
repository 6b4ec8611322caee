package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyResponse indicates the collaborator returned no body where one
	// was expected. For list-shaped endpoints this is "no data", not a failure.
	ErrEmptyResponse = errors.New("empty response")

	// Authentication Errors.

	// ErrUnauthenticated indicates no credential is present when one is
	// required. The gateway fails fast with this before any network call.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrLoginFailed indicates the collaborator rejected the supplied
	// username/password pair.
	ErrLoginFailed = errors.New("login failed")

	// ErrWalletNotRegistered indicates the wallet address is not registered
	// as a doctor in the external registry.
	ErrWalletNotRegistered = errors.New("wallet not registered")

	// ErrNoPatientSelected indicates a patient-scoped operation was invoked
	// with no patient selected.
	ErrNoPatientSelected = errors.New("no patient selected")
)

// RequestError indicates the REST collaborator returned a non-2xx response or
// the transport itself failed. Status is zero for transport failures.
type RequestError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Message)
}

// IsRequestError reports whether err wraps a RequestError and returns it.
func IsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

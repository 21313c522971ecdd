package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingCredential indicates no API token is configured.
	// Detected before any network call is attempted.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrRequestFailed indicates a transport-level failure or timeout.
	ErrRequestFailed = errors.New("request failed")

	// ErrBadStatus indicates the API returned a non-success HTTP status.
	ErrBadStatus = errors.New("unexpected API status")

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed API response")

	// ErrNoResults indicates a well-formed response with zero articles or
	// clusters. Distinct from the failures above: the remote call succeeded
	// but nothing matched.
	ErrNoResults = errors.New("no results matched")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

package domain

import "errors"

// Gateway error kinds. Every vendor or transport failure is collapsed into one
// of these before it reaches the HTTP layer; raw vendor error bodies stay
// server-side.
var (
	// ErrTokenIssuanceFailed covers any failure while obtaining an
	// integration token from the vendor (unreachable, non-success status,
	// malformed response).
	ErrTokenIssuanceFailed = errors.New("token issuance failed")

	// ErrMissingConnection is returned when a CRM operation is attempted
	// without a connection identifier. This is a client error and is raised
	// before any outbound call is made.
	ErrMissingConnection = errors.New("connection identifier is required")

	// ErrContactOperationFailed covers any vendor-side failure of a contact
	// read or write.
	ErrContactOperationFailed = errors.New("contact operation failed")
)

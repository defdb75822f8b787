package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for every authentication failure.
	// Unknown user, wrong password and inactive account are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("service.auth: invalid credentials")

	// ErrInternal wraps storage and hashing failures.
	ErrInternal = errors.New("service.auth: internal error")
)

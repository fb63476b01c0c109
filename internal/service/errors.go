package service

import "errors"

var (
	// Auth errors. Unknown email and wrong password collapse into one error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Note errors
	ErrNoteQuotaExceeded = errors.New("note limit reached for Free Plan")

	// Tenant errors
	ErrTenantMismatch = errors.New("tenant does not match authenticated tenant")
)

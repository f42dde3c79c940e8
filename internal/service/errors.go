package service

import "errors"

var (
	// ErrValidation marks a submitted draft missing a mandatory field. It is
	// surfaced synchronously and nothing reaches the store.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks an operation the caller's role does not permit.
	ErrForbidden = errors.New("operation not permitted for role")

	// ErrInvalidState marks a lifecycle operation against a post whose
	// current status does not allow it. Approve on a non-pending post fails
	// with this rather than silently succeeding.
	ErrInvalidState = errors.New("post status does not allow this operation")
)

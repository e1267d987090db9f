package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist — or when the caller has no role on the trip that
// owns it, so its existence must be concealed.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when a caller with some role on a trip attempts an
// operation that requires a higher role (e.g. a member deleting the trip).
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates the order is already taken or the offer expired (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrGeocode indicates the geocoding provider returned no usable result.
// Surfaced as a user-visible 400, never retried.
var ErrGeocode = errors.New("geocode failed")

// ErrUpstream indicates a routing/messaging provider failure with no fallback.
var ErrUpstream = errors.New("upstream provider error")

package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument is returned by service functions when input fails
// validation or a business rule (past trip, duplicate Pesel, duplicate
// registration). Handlers should map this to HTTP 400.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrConflict is returned when an action is refused because dependent state
// exists, e.g. deleting a client that still has trips.
// This API maps it to HTTP 400, not 409.
var ErrConflict = errors.New("conflict")

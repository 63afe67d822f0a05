package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resort does not exist in the database.
// Handlers map this to a redirect with a user-visible notice, never a 5xx.
var ErrNotFound = errors.New("not found")

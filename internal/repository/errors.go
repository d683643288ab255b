// Package repository provides data access over *sql.DB.  Sentinel errors
// defined here let handlers distinguish expected outcomes (a missing row, a
// duplicate email) from genuine database failures, which are returned as-is
// and surface as HTTP 500.
package repository

import "errors"

// ErrEmailExists is returned by Create when the email is already registered.
// It is derived from the unique constraint on users.email, not a pre-check,
// so concurrent signups for the same address cannot both succeed.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

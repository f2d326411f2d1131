package repository

import "errors"

// ErrNotFound is returned by exact lookups that match zero rows.
var ErrNotFound = errors.New("record not found")

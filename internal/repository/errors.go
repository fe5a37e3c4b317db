package repository

import "errors"

// ErrNotFound is returned when a requested view does not exist or has expired.
var ErrNotFound = errors.New("not found")

package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("repository: document not found")

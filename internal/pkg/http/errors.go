package http

import "errors"

// ErrNotFound is returned when a downstream service answers 404
var ErrNotFound = errors.New("resource not found")

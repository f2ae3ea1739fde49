// Package internal contains code shared by every other package in the
// module.
package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is returned when the requested content object does
	// not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNoViewer is returned when a request arrives without a viewer having
	// been added to its context by the host application.
	ErrNoViewer = errors.New("no viewer in context")
)

// ErrMissingParameter is returned when a required request parameter is
// absent.
type ErrMissingParameter struct {
	Parameter string
}

func (e *ErrMissingParameter) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Parameter)
}

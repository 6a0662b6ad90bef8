package runtime

import "errors"

var (
	// ErrDuplicateID is returned when mounting an id that already exists.
	ErrDuplicateID = errors.New("component id already mounted")

	// ErrParentNotMounted is returned when mounting under an unknown parent.
	ErrParentNotMounted = errors.New("parent component not mounted")

	// ErrNotMounted is returned when an operation references an unknown id.
	ErrNotMounted = errors.New("component not mounted")

	// ErrNilComponent is returned when mounting a nil component.
	ErrNilComponent = errors.New("component is nil")

	// ErrNilClause is returned when subscribing with a nil clause.
	ErrNilClause = errors.New("subscription clause is nil")

	// ErrBackendClosed is returned by Run when the backend's event stream
	// terminates before the host asked to quit.
	ErrBackendClosed = errors.New("backend event stream closed")
)

// Package store holds every query the dashboard runs. Timestamps are written
// by the application as formatted strings so the same SQL runs against MySQL
// in production and sqlite in tests.
package store

import "errors"

var (
	// ErrNotFound means the referenced candidate (or admin) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means an attendance entry for the (candidate, day) pair
	// already exists.
	ErrDuplicate = errors.New("duplicate entry")
)

const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

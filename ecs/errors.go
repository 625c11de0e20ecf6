package ecs

import "github.com/rotisserie/eris"

// Every error below describes a programming mistake. The storage reports
// them by panicking with a wrapped sentinel, so callers that do recover can
// still match them with errors.Is.
var (
	ErrRegistryLocked     = eris.New("component registered after entities were created")
	ErrDuplicateComponent = eris.New("component already registered")
	ErrInvalidComponent   = eris.New("invalid component kind")
	ErrUnknownComponent   = eris.New("component not registered")
	ErrBorrowConflict     = eris.New("conflicting component borrow")
	ErrMissingComponent   = eris.New("entity is missing component")
	ErrInvalidFetch       = eris.New("invalid fetch request")
)

func wrapf(err error, format string, args ...any) error {
	return eris.Wrapf(err, format, args...)
}

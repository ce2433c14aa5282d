package pgmq

import (
	"errors"
	"fmt"

	// Packages
	pgx "github.com/jackc/pgx/v5"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is a sentinel error which can be annotated with detail using
// With and Withf. Use errors.Is to test for a sentinel.
type Err uint

// errdetail wraps a sentinel with additional detail
type errdetail struct {
	err    Err
	detail string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrNotFound
	ErrNotImplemented
	ErrUnexpectedResponse
	ErrInternal
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotFound:
		return "not found"
	case ErrNotImplemented:
		return "not implemented"
	case ErrUnexpectedResponse:
		return "unexpected response"
	case ErrInternal:
		return "internal error"
	}
	return fmt.Sprintf("error code %d", uint(e))
}

// With returns the error annotated with the arguments
func (e Err) With(args ...any) error {
	return &errdetail{e, fmt.Sprint(args...)}
}

// Withf returns the error annotated with a formatted message
func (e Err) Withf(format string, args ...any) error {
	return &errdetail{e, fmt.Sprintf(format, args...)}
}

func (e *errdetail) Error() string {
	return e.err.Error() + ": " + e.detail
}

func (e *errdetail) Unwrap() error {
	return e.err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// pgerror maps driver errors onto package errors. Other errors from the
// driver or the server are passed through unmodified.
func pgerror(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

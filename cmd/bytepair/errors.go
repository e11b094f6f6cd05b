package main

import (
	"errors"

	"github.com/bytepair/internal/codec"
)

// exitError pins a process exit code to an error so main can report it
// without RunE handlers threading an int back through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func argError(err error) error { return &exitError{code: 2, err: err} }
func ioError(err error) error  { return &exitError{code: 3, err: err} }

// exitCodeFor maps a RunE error to a process exit code: 2 for invalid
// arguments, 3 for artifact I/O failures, 4 for an unknown token
// surfacing from decode, 1 for anything else.
func exitCodeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var unknown *codec.UnknownTokenError
	if errors.As(err, &unknown) {
		return 4
	}
	return 1
}

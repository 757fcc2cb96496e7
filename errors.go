package fpmatch

import (
	"errors"
	"fmt"
)

// ErrNilArgument is the sentinel for all argument validation failures: a required
// pattern, function or key has not been supplied.
var ErrNilArgument = errors.New("required argument is nil")

// ArgumentError is raised (as a panic) at the call which violates the calling
// contract of a constructor or combinator. It is a programmer error and never
// deferred into a lazy evaluation.
type ArgumentError struct {
	Op  string // operation called, e.g. "pattern.Select"
	Arg string // name of the offending argument
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument '%s': %s", e.Op, e.Arg, ErrNilArgument.Error())
}

// Unwrap makes ArgumentError match ErrNilArgument with errors.Is.
func (e *ArgumentError) Unwrap() error {
	return ErrNilArgument
}

// AssertArgument panics with an *ArgumentError if ok is false.
//
//     fpmatch.AssertArgument(mapper != nil, "pattern.Select", "mapper")
//
func AssertArgument(ok bool, op, arg string) {
	if !ok {
		panic(&ArgumentError{Op: op, Arg: arg})
	}
}

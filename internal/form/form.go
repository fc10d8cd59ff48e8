// Released under an MIT license. See LICENSE.

// Package form provides purisp's value type and its structural operations.
//
// The set of types implementing I is closed: Atom, the constants T and Nil,
// *Pair, *List and *Lambda. Operations that are applied to a form of the
// wrong type panic with an *Error. The engine recovers these at its boundary.
package form

import (
	"errors"
	"fmt"
)

// I (form) is the basic unit of data in purisp.
type I interface {
	Equal(c I) bool
	Literal() string
	Name() string
	String() string

	form()
}

// ErrMismatch is wrapped by every *Error.
var ErrMismatch = errors.New("type mismatch")

// Error reports an operation applied to a form it is not defined for.
type Error struct {
	Op  string
	Msg string
}

// Error returns the text of the error e.
func (e *Error) Error() string {
	return e.Op + ": " + e.Msg
}

// Unwrap returns ErrMismatch.
func (e *Error) Unwrap() error {
	return ErrMismatch
}

func mismatch(op, format string, a ...interface{}) *Error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, a...)}
}

// Bool returns T if b is true and Nil otherwise.
func Bool(b bool) I {
	if b {
		return T
	}

	return Nil
}

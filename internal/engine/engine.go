// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for purisp forms.
package engine

import (
	"github.com/purisp/purisp/internal/form"
	"github.com/purisp/purisp/internal/reader"
)

// T (engine) evaluates forms. It holds no state beyond its configuration
// and is safe to share.
type T struct {
	derived bool
}

type engine = T

// Option configures a T.
type Option func(*T)

// Derived enables dispatch on and, not, null, pair and assoc in addition
// to the primitives.
func Derived() Option {
	return func(e *T) {
		e.derived = true
	}
}

// New creates a new T.
func New(options ...Option) *T {
	e := &T{}

	for _, o := range options {
		o(e)
	}

	return e
}

//nolint:gochecknoglobals
var core = New()

// Eval evaluates c with only the primitives.
func Eval(c form.I) (form.I, error) {
	return core.Eval(c)
}

// Eval evaluates c. Operations applied to forms they are not defined for
// are returned as a *form.Error.
func (e *engine) Eval(c form.I) (result form.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		ferr, ok := r.(*form.Error)
		if !ok {
			panic(r)
		}

		result, err = nil, ferr
	}()

	return e.eval(c), nil
}

// Run reads and evaluates the text s.
func (e *engine) Run(s string) (form.I, error) {
	return e.Eval(reader.Read(s))
}

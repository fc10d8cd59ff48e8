// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/purisp/purisp/internal/form"
	"github.com/purisp/purisp/internal/symbol"
)

// Each operation is passed exactly as many evaluated arguments as its arity.
//
//nolint:gochecknoglobals
var operations = map[symbol.T]func([]form.I) form.I{
	symbol.Atom:  atom,
	symbol.Eq:    eq,
	symbol.Car:   car,
	symbol.Cdr:   cdr,
	symbol.Cons:  cons,
	symbol.And:   and,
	symbol.Not:   not,
	symbol.Null:  null,
	symbol.Pair:  pair,
	symbol.Assoc: assoc,
}

func atom(v []form.I) form.I {
	return form.IsAtom(v[0])
}

func eq(v []form.I) form.I {
	return form.Eq(v[0], v[1])
}

func car(v []form.I) form.I {
	return form.Car(v[0])
}

func cdr(v []form.I) form.I {
	return form.Cdr(v[0])
}

func cons(v []form.I) form.I {
	return form.Cons(v[0], v[1])
}

func and(v []form.I) form.I {
	return form.And(v[0], v[1])
}

func not(v []form.I) form.I {
	return form.Not(v[0])
}

func null(v []form.I) form.I {
	return form.Null(v[0])
}

func pair(v []form.I) form.I {
	return form.Zip(v[0], v[1])
}

func assoc(v []form.I) form.I {
	if c, ok := form.Assoc(v[0], v[1]); ok {
		return c
	}

	return form.Nil
}

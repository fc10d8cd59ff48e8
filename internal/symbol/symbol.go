// Released under an MIT license. See LICENSE.

// Package symbol names the operations the engine can dispatch on.
package symbol

import (
	"github.com/purisp/purisp/internal/form"
)

// T (symbol) identifies a primitive or derived operation.
type T int

type symbol = T

// Primitives come first; everything after Cons is derived.
const (
	Quote T = iota
	Atom
	Eq
	Car
	Cdr
	Cons
	And
	Not
	Null
	Pair
	Assoc
)

//nolint:gochecknoglobals
var (
	names = [...]string{
		Quote: "quote",
		Atom:  "atom",
		Eq:    "eq",
		Car:   "car",
		Cdr:   "cdr",
		Cons:  "cons",
		And:   "and",
		Not:   "not",
		Null:  "null",
		Pair:  "pair",
		Assoc: "assoc",
	}

	arity = [...]int{
		Quote: 1,
		Atom:  1,
		Eq:    2,
		Car:   1,
		Cdr:   1,
		Cons:  2,
		And:   2,
		Not:   1,
		Null:  1,
		Pair:  2,
		Assoc: 2,
	}

	lookup = map[string]symbol{}
)

// Lookup returns the symbol named by the atom c. The boolean is false if c
// is not an atom or does not name an operation.
func Lookup(c form.I) (T, bool) {
	a, ok := c.(form.Atom)
	if !ok {
		return 0, false
	}

	s, ok := lookup[string(a)]

	return s, ok
}

// Names returns the names of the primitives and, if derived is true,
// the derived operations.
func Names(derived bool) []string {
	n := Cons + 1
	if derived {
		n = Assoc + 1
	}

	return append([]string(nil), names[:n]...)
}

// Arity returns the number of arguments the operation s takes.
func (s symbol) Arity() int {
	return arity[s]
}

// Form returns the atom that names s. Callers use it to build programs
// that invoke s.
func (s symbol) Form() form.I {
	return form.NewAtom(names[s])
}

// Primitive returns true if s is one of quote, atom, eq, car, cdr or cons.
func (s symbol) Primitive() bool {
	return s <= Cons
}

// String returns the name of s.
func (s symbol) String() string {
	return names[s]
}

func init() { //nolint:gochecknoinits
	for s, name := range names {
		lookup[name] = symbol(s)
	}
}

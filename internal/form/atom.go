// Released under an MIT license. See LICENSE.

package form

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
)

// Atom is a symbolic name. Atoms with the same text are equal.
type Atom string

// NewAtom creates an atom from the string s.
func NewAtom(s string) I {
	return Atom(s)
}

// Equal returns true if c is an atom with the same text as a.
func (a Atom) Equal(c I) bool {
	b, ok := c.(Atom)

	return ok && a == b
}

// Literal returns the literal representation of the atom a. Atoms that
// would not survive a trip through the reader are written in meta form.
func (a Atom) Literal() string {
	s := string(a)
	q := adapted.CanonicalString(s)

	if s == "" || strings.ContainsAny(s, " ()\t\n") || q[2:len(q)-1] != s {
		return "(|atom " + q + "|)"
	}

	return s
}

// Name returns the type name for the atom a.
func (a Atom) Name() string {
	return "atom"
}

// String returns the atom's text, quoted.
func (a Atom) String() string {
	return strconv.Quote(string(a))
}

func (a Atom) form() {}

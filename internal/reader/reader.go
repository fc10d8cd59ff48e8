// Released under an MIT license. See LICENSE.

// Package reader turns text into forms.
//
// The reader is flat. Parentheses are treated as whitespace, so
// "(cons 1 2)" and "((cons) 1 2)" both read as the list of atoms
// cons, 1 and 2.
package reader

import (
	"strings"

	"github.com/purisp/purisp/internal/form"
)

//nolint:gochecknoglobals
var parens = strings.NewReplacer("(", " ", ")", " ")

// Read returns a list with one atom for each whitespace separated token in s.
func Read(s string) form.I {
	return form.Atoms(strings.Fields(parens.Replace(s))...)
}

// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/purisp/purisp/internal/common/validate"
	"github.com/purisp/purisp/internal/form"
	"github.com/purisp/purisp/internal/symbol"
)

// eval dispatches on the head of c. Forms without a head evaluate to
// themselves and a head that names no operation evaluates to Nil.
func (e *engine) eval(c form.I) form.I {
	if _, ok := c.(*form.List); !ok {
		return c
	}

	head, rest, ok := form.Split(c)
	if !ok {
		return c
	}

	s, ok := symbol.Lookup(head)
	if !ok || !(s.Primitive() || e.derived) {
		return form.Nil
	}

	n := s.Arity()
	v, _ := validate.Variadic(s.String(), rest.(*form.List).Elements(), n, n)

	if s == symbol.Quote {
		return v[0]
	}

	for i := range v {
		v[i] = e.eval(v[i])
	}

	return operations[s](v)
}

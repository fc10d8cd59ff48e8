// Released under an MIT license. See LICENSE.

package form

import (
	"strings"
)

// List is an ordered sequence of forms.
type List struct {
	elements []I
}

// NewList creates a new list composed of copies of the elements in elements.
func NewList(elements ...I) I {
	return &List{elements: cloneAll(elements)}
}

// Atoms creates a new list of atoms, one for each string in names.
func Atoms(names ...string) I {
	l := &List{elements: make([]I, 0, len(names))}

	for _, s := range names {
		l.elements = append(l.elements, Atom(s))
	}

	return l
}

// Elements returns copies of the elements of the list l.
func (l *List) Elements() []I {
	return cloneAll(l.elements)
}

// Equal returns true if c is a list of the same length as l
// with elements that are equal to l's.
func (l *List) Equal(c I) bool {
	m, ok := c.(*List)
	if !ok || len(l.elements) != len(m.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(m.elements[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in the list l.
func (l *List) Len() int {
	return len(l.elements)
}

// Literal returns the literal representation of the list l.
func (l *List) Literal() string {
	return "(" + l.join(" ", I.Literal) + ")"
}

// Name returns the type name for a list.
func (l *List) Name() string {
	return "list"
}

// String returns the text representation of the list l.
func (l *List) String() string {
	return "List[" + l.join(", ", I.String) + "]"
}

func (l *List) form() {}

func (l *List) join(sep string, f func(I) string) string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = f(e)
	}

	return strings.Join(s, sep)
}

// clone returns a copy of c that shares no lists or pairs with c.
// Atoms, constants and lambdas are never modified and are not copied.
func clone(c I) I {
	switch c := c.(type) {
	case *Pair:
		return &Pair{car: clone(c.car), cdr: clone(c.cdr)}
	case *List:
		return &List{elements: cloneAll(c.elements)}
	}

	return c
}

func cloneAll(elements []I) []I {
	if elements == nil {
		return nil
	}

	copied := make([]I, len(elements))
	for i, e := range elements {
		copied[i] = clone(e)
	}

	return copied
}

// Released under an MIT license. See LICENSE.

package form

type constant string

// The canonical truth values. Nil is also the empty list.
const (
	T   constant = "T"
	Nil constant = "NIL"
)

// Equal returns true if c is the same constant as k.
func (k constant) Equal(c I) bool {
	return c == I(k)
}

// Literal returns the literal representation of the constant k.
func (k constant) Literal() string {
	return string(k)
}

// Name returns the type name for the constant k.
func (k constant) Name() string {
	return string(k)
}

// String returns the text representation of the constant k.
func (k constant) String() string {
	return string(k)
}

func (k constant) form() {}

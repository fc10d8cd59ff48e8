// Released under an MIT license. See LICENSE.

package form

// Lambda is an opaque callable. It is only invoked through Apply.
type Lambda struct {
	fn func(I) I
}

// NewLambda wraps fn. The argument passed to fn is nil when there is none.
func NewLambda(fn func(I) I) I {
	return &Lambda{fn: fn}
}

// Equal returns true if c is the same lambda as l.
func (l *Lambda) Equal(c I) bool {
	return c == I(l)
}

// Literal returns the literal representation of the lambda l.
func (l *Lambda) Literal() string {
	return "(|lambda|)"
}

// Name returns the type name for a lambda.
func (l *Lambda) Name() string {
	return "lambda"
}

// String returns the text representation of the lambda l.
func (l *Lambda) String() string {
	return "Lambda"
}

func (l *Lambda) form() {}

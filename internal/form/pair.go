// Released under an MIT license. See LICENSE.

package form

// Pair is a cons cell.
type Pair struct {
	car I
	cdr I
}

// NewPair creates a new pair with copies of h and t as its car and cdr.
func NewPair(h, t I) I {
	return &Pair{car: clone(h), cdr: clone(t)}
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *Pair) Equal(c I) bool {
	q, ok := c.(*Pair)

	return ok && p.car.Equal(q.car) && p.cdr.Equal(q.cdr)
}

// Literal returns the literal representation of the pair p.
func (p *Pair) Literal() string {
	return "(" + p.car.Literal() + " . " + p.cdr.Literal() + ")"
}

// Name returns the type name for a pair.
func (p *Pair) Name() string {
	return "pair"
}

// String returns the text representation of the pair p.
func (p *Pair) String() string {
	return "Pair(" + p.car.String() + ", " + p.cdr.String() + ")"
}

func (p *Pair) form() {}

// Released under an MIT license. See LICENSE.

package form

// IsAtom returns T if c is an atom, T, Nil or the empty list, and Nil otherwise.
func IsAtom(c I) I {
	switch c := c.(type) {
	case Atom, constant:
		return T
	case *List:
		return Bool(len(c.elements) == 0)
	case *Pair, *Lambda:
		return Nil
	}

	panic(mismatch("atom", "unknown form %T", c))
}

// Null returns T if c is Nil or the empty list, and Nil otherwise.
func Null(c I) I {
	switch c := c.(type) {
	case constant:
		return Bool(c == Nil)
	case *List:
		return Bool(len(c.elements) == 0)
	}

	return Nil
}

// And returns T only when both a and b are exactly T.
func And(a, b I) I {
	return Bool(a == I(T) && b == I(T))
}

// Not returns T only when c is exactly Nil.
func Not(c I) I {
	return Bool(c == I(Nil))
}

// Eq compares a and b, which must be the same kind of form.
// Pairs and lists are compared element by element.
// Comparing forms of different kinds will cause a panic.
func Eq(a, b I) I {
	switch x := a.(type) {
	case Atom:
		if y, ok := b.(Atom); ok {
			return Bool(x == y)
		}
	case constant:
		if b == a {
			return T
		}
	case *Pair:
		if y, ok := b.(*Pair); ok {
			return Bool(x.Equal(y))
		}
	case *List:
		if y, ok := b.(*List); ok {
			return Bool(x.Equal(y))
		}
	case *Lambda:
		if y, ok := b.(*Lambda); ok {
			return Bool(x == y)
		}
	}

	panic(mismatch("eq", "cannot compare %s with %s", a.Name(), b.Name()))
}

// Cons conses value onto c.
//
// The kind of c selects the result. If c is a list, the result is a new list
// with value as its first element followed by the elements of c. For any
// other form the result is a new pair with car c and cdr value.
// The result shares no lists or pairs with c or value.
func Cons(c, value I) I {
	l, ok := c.(*List)
	if !ok {
		return NewPair(c, value)
	}

	elements := make([]I, 0, len(l.elements)+1)
	elements = append(elements, clone(value))

	return &List{elements: append(elements, cloneAll(l.elements)...)}
}

// Car returns a copy of the car of the pair c or of the first element of
// the list c. If c has no car, this function will panic.
func Car(c I) I {
	switch c := c.(type) {
	case *Pair:
		return clone(c.car)
	case *List:
		if len(c.elements) != 0 {
			return clone(c.elements[0])
		}

		panic(mismatch("car", "empty list has no car"))
	}

	panic(mismatch("car", "%s has no car", c.Name()))
}

// Cdr returns a copy of the cdr of the pair c or a list of copies of all
// but the first element of the list c. If c has no cdr, this function will
// panic.
func Cdr(c I) I {
	switch c := c.(type) {
	case *Pair:
		return clone(c.cdr)
	case *List:
		if len(c.elements) != 0 {
			return &List{elements: cloneAll(c.elements[1:])}
		}

		panic(mismatch("cdr", "empty list has no cdr"))
	}

	panic(mismatch("cdr", "%s has no cdr", c.Name()))
}

// Cadr returns the car of the cdr of c. It is not used by the engine and is
// provided for Go callers that build and take apart forms directly.
func Cadr(c I) I {
	return Car(Cdr(c))
}

// Cddr returns the cdr of the cdr of c. Like Cadr, it is for Go callers.
func Cddr(c I) I {
	return Cdr(Cdr(c))
}

// Split returns copies of the car and cdr of c. The boolean is false,
// and the forms are nil, if c has no car.
func Split(c I) (I, I, bool) {
	switch c := c.(type) {
	case *Pair:
		return Car(c), Cdr(c), true
	case *List:
		if len(c.elements) != 0 {
			return Car(c), Cdr(c), true
		}
	}

	return nil, nil, false
}

// Apply calls the lambda c with arg, which may be nil.
// If c is not a lambda, or wraps no function, this function will panic.
func Apply(c, arg I) I {
	l, ok := c.(*Lambda)
	if !ok {
		panic(mismatch("apply", "%s is not a lambda", c.Name()))
	}

	if l.fn == nil {
		panic(mismatch("apply", "lambda has no function"))
	}

	return l.fn(arg)
}

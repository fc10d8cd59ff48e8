// Released under an MIT license. See LICENSE.

package form

// Zip pairs each element of the list a with the element of the list b in the
// same position and returns a new list of pairs. The lists must be the same
// length. Anything else will cause a panic.
func Zip(a, b I) I {
	x, ok := a.(*List)
	if !ok {
		panic(mismatch("pair", "%s is not a list", a.Name()))
	}

	y, ok := b.(*List)
	if !ok {
		panic(mismatch("pair", "%s is not a list", b.Name()))
	}

	if len(x.elements) != len(y.elements) {
		panic(mismatch("pair", "lengths differ: %d and %d",
			len(x.elements), len(y.elements)))
	}

	pairs := make([]I, len(x.elements))
	for i, e := range x.elements {
		pairs[i] = NewPair(e, y.elements[i])
	}

	return &List{elements: pairs}
}

// Assoc scans the association list plist, in order, for the first pair whose
// car is eq to key and returns a copy of that pair's cdr. The boolean is
// false if no key matches. A plist that is not a list of pairs will cause a
// panic, as will keys that cannot be compared.
func Assoc(key, plist I) (I, bool) {
	l, ok := plist.(*List)
	if !ok {
		panic(mismatch("assoc", "%s is not a list", plist.Name()))
	}

	for _, e := range l.elements {
		p, ok := e.(*Pair)
		if !ok {
			panic(mismatch("assoc", "entry is a %s, not a pair", e.Name()))
		}

		if Eq(key, p.car) == I(T) {
			return clone(p.cdr), true
		}
	}

	return nil, false
}

// Append extends the list c with the elements of the list other, in place.
// The elements move: other is left empty. Both must be distinct lists.
func Append(c, other I) {
	l, ok := c.(*List)
	if !ok {
		panic(mismatch("append", "%s is not a list", c.Name()))
	}

	o, ok := other.(*List)
	if !ok {
		panic(mismatch("append", "%s is not a list", other.Name()))
	}

	if l == o {
		panic(mismatch("append", "cannot append a list to itself"))
	}

	l.elements = append(l.elements, o.elements...)
	o.elements = nil
}

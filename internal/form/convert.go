// Released under an MIT license. See LICENSE.

package form

// Text returns the text of the atom c.
// If c is not an atom, this function will panic.
func Text(c I) string {
	a, ok := c.(Atom)
	if !ok {
		panic(mismatch("text", "%s is not an atom", c.Name()))
	}

	return string(a)
}

// Texts returns the text of each atom in the list c. It is for Go callers
// that read results back out of the engine.
func Texts(c I) []string {
	l, ok := c.(*List)
	if !ok {
		panic(mismatch("text", "%s is not a list", c.Name()))
	}

	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = Text(e)
	}

	return s
}

// Tuple returns the text of the atoms in the pair c.
func Tuple(c I) (string, string) {
	p, ok := c.(*Pair)
	if !ok {
		panic(mismatch("text", "%s is not a pair", c.Name()))
	}

	return Text(p.car), Text(p.cdr)
}

// Tuples returns the text of the atoms in each pair in the list c, as
// produced by pair. It is for Go callers.
func Tuples(c I) [][2]string {
	l, ok := c.(*List)
	if !ok {
		panic(mismatch("text", "%s is not a list", c.Name()))
	}

	t := make([][2]string, len(l.elements))
	for i, e := range l.elements {
		t[i][0], t[i][1] = Tuple(e)
	}

	return t
}

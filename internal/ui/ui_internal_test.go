package ui

import (
	"reflect"
	"testing"
)

func TestComplete(t *testing.T) {
	complete := completer([]string{"car", "cdr", "cons", "quote"})

	for _, c := range []struct {
		line        string
		pos         int
		head        string
		completions []string
		tail        string
	}{
		{"(c", 2, "(", []string{"car", "cdr", "cons"}, ""},
		{"(co 1 2)", 3, "(", []string{"cons"}, " 1 2)"},
		{"(cons (q", 8, "(cons (", []string{"quote"}, ""},
		{"(x", 2, "(", []string{}, ""},
		{"", 0, "", []string{"car", "cdr", "cons", "quote"}, ""},
		{"(atom é c", 9, "(atom é ", []string{"car", "cdr", "cons"}, ""},
	} {
		h, cs, tl := complete(c.line, c.pos)

		if h != c.head || tl != c.tail || !reflect.DeepEqual(cs, c.completions) {
			t.Fatalf("Expected (%q, %v, %q); got (%q, %v, %q)",
				c.head, c.completions, c.tail, h, cs, tl)
		}
	}
}

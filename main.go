/*
Purisp evaluates a pure subset of Lisp: atoms, T, NIL, pairs and lists,
with the primitives quote, atom, eq, car, cdr and cons.

	$ purisp -c '(cons 1 2)'
	Pair("1", "2")

The reader is flat. Parentheses only separate tokens.

Purisp is released under an MIT license.
*/
package main

import (
	"fmt"
	"os"

	"github.com/purisp/purisp/internal/engine"
	"github.com/purisp/purisp/internal/symbol"
	"github.com/purisp/purisp/internal/system/options"
	"github.com/purisp/purisp/internal/ui"
)

func main() {
	if err := options.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var opts []engine.Option
	if options.Derived() {
		opts = append(opts, engine.Derived())
	}

	s := newSession(engine.New(opts...), options.Literal(), os.Stdout, os.Stderr)

	switch {
	case options.Command() != "":
		s.Evaluate(options.Command())

	case options.Script() != "":
		f, err := os.Open(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, "purisp: "+err.Error())
			os.Exit(1)
		}

		err = s.batch(f)
		f.Close()

		if err != nil {
			fmt.Fprintln(os.Stderr, "purisp: "+err.Error())
			os.Exit(1)
		}

	case options.Interactive():
		if err := ui.Run(s, symbol.Names(options.Derived())); err != nil {
			fmt.Fprintln(os.Stderr, "purisp: "+err.Error())
			os.Exit(1)
		}

		return

	default:
		if err := s.batch(os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, "purisp: "+err.Error())
			os.Exit(1)
		}
	}

	os.Exit(s.status())
}

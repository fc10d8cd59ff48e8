// Released under an MIT license. See LICENSE.

// Package options parses purisp's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "purisp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	derived     bool
	interactive bool
	literal     bool
	script      string
	usage       = `purisp

Usage:
  purisp [-dl] -c EXPRESSION
  purisp [-dl] SCRIPT
  purisp [-dil] [-s]
  purisp -h
  purisp -v

Arguments:
  SCRIPT  Path to a file with one expression per line.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION and print the result.
  -d, --derived             Also evaluate and, not, null, pair and assoc.
  -i, --interactive         Invert interactive mode.
  -l, --literal             Print results as literals.
  -s, --stdin               Read expressions from stdin.
  -h, --help                Display this help.
  -v, --version             Print purisp version.

If purisp's stdin is a TTY, and purisp was invoked with no script or
command, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Derived returns true if the derived operations should be evaluated.
func Derived() bool {
	return derived
}

// Interactive returns true if expressions should be read with a prompt.
func Interactive() bool {
	return interactive
}

// Literal returns true if results should be printed as literals.
func Literal() bool {
	return literal
}

// Parse parses argv, which should not include the program name.
// Help, version and usage errors are handled by docopt, which exits.
func Parse(argv []string) error {
	return parse(docopt.DefaultParser, argv, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to evaluate, if any.
func Script() string {
	return script
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	derived, _ = opts.Bool("--derived")
	literal, _ = opts.Bool("--literal")

	interactive = command == "" && script == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}

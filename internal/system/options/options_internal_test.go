package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func setup(t *testing.T, terminal bool, argv ...string) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	// A nil argv makes docopt fall back to os.Args.
	if argv == nil {
		argv = []string{}
	}

	if err := parse(p, argv, terminal); err != nil {
		t.Fatalf("Expected %v to parse; got %v", argv, err)
	}
}

func TestCommand(t *testing.T) {
	setup(t, true, "-d", "-c", "(cons 1 2)")

	switch {
	case Command() != "(cons 1 2)":
		t.Fatalf("Expected (cons 1 2); got %q", Command())
	case !Derived():
		t.Fatal("Expected derived operations")
	case Literal():
		t.Fatal("Expected display form")
	case Interactive():
		t.Fatal("Expected non-interactive mode")
	case Script() != "":
		t.Fatalf("Expected no script; got %q", Script())
	}
}

func TestScript(t *testing.T) {
	setup(t, true, "-l", "forms.lisp")

	switch {
	case Script() != "forms.lisp":
		t.Fatalf("Expected forms.lisp; got %q", Script())
	case !Literal():
		t.Fatal("Expected literal form")
	case Interactive():
		t.Fatal("Expected non-interactive mode")
	}
}

func TestStdin(t *testing.T) {
	setup(t, true)

	if !Interactive() {
		t.Fatal("Expected interactive mode on a terminal")
	}

	setup(t, false, "-s")

	if Interactive() {
		t.Fatal("Expected non-interactive mode without a terminal")
	}

	setup(t, true, "-i")

	if Interactive() {
		t.Fatal("Expected -i to disable interactive mode")
	}

	setup(t, false, "-i")

	if !Interactive() {
		t.Fatal("Expected -i to enable interactive mode")
	}
}

func TestUsageError(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, []string{"-c"}, false); err == nil {
		t.Fatal("Expected -c without an expression to fail")
	}
}

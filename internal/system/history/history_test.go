package history

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	called := false

	err := Load(func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil {
		t.Fatalf("Expected no error; got %v", err)
	}

	if called {
		t.Fatal("Expected no read without a history file")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := "(cons 1 2)\n(quote a)\n"

	err := Save(func(w io.Writer) (int, error) {
		n, err := io.Copy(w, strings.NewReader(saved))

		return int(n), err
	})
	if err != nil {
		t.Fatalf("Expected no error; got %v", err)
	}

	var loaded bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := loaded.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("Expected no error; got %v", err)
	}

	if loaded.String() != saved {
		t.Fatalf("Expected %q; got %q", saved, loaded.String())
	}
}

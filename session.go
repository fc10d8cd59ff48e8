// Released under an MIT license. See LICENSE.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/purisp/purisp/internal/engine"
	"github.com/purisp/purisp/internal/form"
)

// session reads, evaluates and prints. It remembers whether anything failed.
type session struct {
	engine *engine.T
	failed bool
	out    io.Writer
	errs   io.Writer
	render func(form.I) string
}

func newSession(e *engine.T, literal bool, out, errs io.Writer) *session {
	render := form.I.String
	if literal {
		render = form.I.Literal
	}

	return &session{
		engine: e,
		out:    out,
		errs:   errs,
		render: render,
	}
}

// Evaluate reads and evaluates line, printing the result or the error.
func (s *session) Evaluate(line string) {
	c, err := s.engine.Run(line)
	if err != nil {
		s.failed = true

		fmt.Fprintln(s.errs, "purisp: "+err.Error())

		return
	}

	fmt.Fprintln(s.out, s.render(c))
}

// batch evaluates each non-blank line read from r.
func (s *session) batch(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		s.Evaluate(line)
	}

	return scanner.Err()
}

func (s *session) status() int {
	if s.failed {
		return 1
	}

	return 0
}

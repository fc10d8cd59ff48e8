// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to an operation.
package validate

import (
	"fmt"

	"github.com/purisp/purisp/internal/form"
)

// Variadic returns the first max forms in actual and whatever remains.
// Fewer than min forms is a contract violation and will cause a panic
// with a *form.Error for op.
func Variadic(op string, actual []form.I, min, max int) ([]form.I, []form.I) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		panic(&form.Error{Op: op, Msg: fmt.Sprintf("expected %s, passed %d", s, len(actual))})
	}

	if len(actual) > max {
		return actual[:max], actual[max:]
	}

	return actual, nil
}

// Count returns n and label, pluralized with p if n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

package binary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTimeout marks an invocation that was killed because it exceeded
// the configured execution timeout. Callers distinguish it from other
// failures with errors.Is.
var ErrTimeout = errors.New("tdz invocation timed out")

// invokeError is a single candidate's failure. The captured output is
// whatever the process wrote before exiting; for tdz that is where the
// human-readable error message lives, so Error surfaces it.
type invokeError struct {
	candidate string
	output    string
	err       error
}

func (e *invokeError) Error() string {
	out := strings.TrimSpace(e.output)
	if out != "" {
		return out
	}
	return fmt.Sprintf("%s: %v", e.candidate, e.err)
}

func (e *invokeError) Unwrap() error { return e.err }

// ExecError reports that no candidate produced a successful invocation.
// Attempted lists every path that was probed, in order.
type ExecError struct {
	Attempted []string
	Last      error
}

func (e *ExecError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("tdz execution failed (tried %s): %v",
			strings.Join(e.Attempted, ", "), e.Last)
	}
	return fmt.Sprintf("tdz execution failed (tried %s)", strings.Join(e.Attempted, ", "))
}

func (e *ExecError) Unwrap() error { return e.Last }

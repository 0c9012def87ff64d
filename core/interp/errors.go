package interp

import (
	"errors"
	"fmt"
)

// ErrEmptyStack reports a stack operation with too few operands.
var ErrEmptyStack = errors.New("stack is empty")

// UnboundVariableError reports a variable read before any write to that
// name. There is no implicit Nil default.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %q is not bound", e.Name)
}

// RecursionError reports that nested calls exceeded the engine's limit.
type RecursionError struct {
	Limit int
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion limit exceeded (%d nested calls)", e.Limit)
}

// ExitError aborts the run immediately; the caller maps Code onto the
// process exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit with status %d", e.Code)
}

package parser

import (
	"fmt"

	"github.com/proj-sh/proj/core/lexer"
)

// Error is a parse failure. Loc is the zero value when no position is
// available (for example a directive redefinition, which is reported against
// the name rather than a token).
type Error struct {
	Loc lexer.Loc
	Msg string
}

func (e *Error) Error() string {
	if e.Loc.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

func errorf(loc lexer.Loc, format string, args ...interface{}) error {
	return &Error{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

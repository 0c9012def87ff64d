// Package host defines the capability surface the engine performs side
// effects through: shell execution, a filesystem, and the standard streams.
// The engine never touches the real OS directly, which keeps runs
// deterministic under test.
package host

import (
	"io"

	"github.com/spf13/afero"
)

// ShellResult is the outcome of a shell command that actually ran,
// regardless of its exit status.
type ShellResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Ok reports whether the command completed successfully.
func (r *ShellResult) Ok() bool {
	return r.ExitCode == 0
}

// Host is the set of capabilities a script run needs. RunShell returns an
// error only when the shell could not be launched at all; a command that ran
// and failed is a ShellResult with a non-zero ExitCode.
type Host interface {
	RunShell(command string) (*ShellResult, error)
	Fs() afero.Fs
	Stdout() io.Writer
	Stderr() io.Writer
}

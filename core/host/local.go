package host

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// DefaultShell is used when no shell program is configured.
const DefaultShell = "sh"

// Local runs scripts against the real machine: commands go to `<shell> -c`
// and file operations hit the OS filesystem.
type Local struct {
	shell  string
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

func NewLocal(shell string) *Local {
	if shell == "" {
		shell = DefaultShell
	}
	return &Local{
		shell:  shell,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// RunShell blocks until the subprocess exits. No timeout is enforced.
func (l *Local) RunShell(command string) (*ShellResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(l.shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The shell never started.
			return nil, err
		}
	}

	return &ShellResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

func (l *Local) Fs() afero.Fs {
	return l.fs
}

func (l *Local) Stdout() io.Writer {
	return l.stdout
}

func (l *Local) Stderr() io.Writer {
	return l.stderr
}

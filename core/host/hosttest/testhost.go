// Package hosttest provides a deterministic Host for tests: an in-memory
// filesystem, buffered stdio, and scripted shell responses.
package hosttest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/proj-sh/proj/core/host"
)

// Host implements host.Host against fakes. Shell commands resolve through
// Responses; a command with no scripted response fails to launch, which
// surfaces as a runtime error in the engine.
type Host struct {
	FS        afero.Fs
	Out       bytes.Buffer
	Err       bytes.Buffer
	Responses map[string]*host.ShellResult
	// Commands records every shell invocation in order.
	Commands []string
}

func New() *Host {
	return &Host{
		FS:        afero.NewMemMapFs(),
		Responses: make(map[string]*host.ShellResult),
	}
}

// Respond scripts the result of one shell command.
func (h *Host) Respond(command string, result *host.ShellResult) *Host {
	h.Responses[command] = result
	return h
}

func (h *Host) RunShell(command string) (*host.ShellResult, error) {
	h.Commands = append(h.Commands, command)
	res, ok := h.Responses[command]
	if !ok {
		return nil, fmt.Errorf("no scripted response for command %q", command)
	}
	return res, nil
}

func (h *Host) Fs() afero.Fs {
	return h.FS
}

func (h *Host) Stdout() io.Writer {
	return &h.Out
}

func (h *Host) Stderr() io.Writer {
	return &h.Err
}

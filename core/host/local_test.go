package host

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
}

func TestLocal_defaults(t *testing.T) {
	l := NewLocal("")

	assert.NotNil(t, l.Fs())
	assert.Equal(t, os.Stdout, l.Stdout())
	assert.Equal(t, os.Stderr, l.Stderr())
}

func TestLocal_runShellSuccess(t *testing.T) {
	requireShell(t)

	res, err := NewLocal("").RunShell("echo hello")

	require.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestLocal_runShellFailure(t *testing.T) {
	requireShell(t)

	res, err := NewLocal("").RunShell("echo oops >&2; exit 3")

	require.NoError(t, err, "a non-zero exit is not a launch failure")
	assert.False(t, res.Ok())
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "oops\n", res.Stderr)
}

func TestLocal_launchFailure(t *testing.T) {
	_, err := NewLocal("/definitely/not/a/shell").RunShell("true")
	assert.Error(t, err)
}

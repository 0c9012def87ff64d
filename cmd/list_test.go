package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withScript(t *testing.T, source string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".proj")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	old := scriptPath
	scriptPath = path
	t.Cleanup(func() { scriptPath = old })
}

func TestList(t *testing.T) {
	withScript(t, `
		deploy { call build }
		build { "make" shell pop pop }
	`)

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	require.NoError(t, listCmd.RunE(listCmd, nil))
	assert.Equal(t, "build\ndeploy\n", buf.String())
}

func TestList_missingFile(t *testing.T) {
	old := scriptPath
	scriptPath = filepath.Join(t.TempDir(), "no-such-file")
	t.Cleanup(func() { scriptPath = old })

	assert.Error(t, listCmd.RunE(listCmd, nil))
}

func TestList_parseErrorSurfaces(t *testing.T) {
	withScript(t, `broken {`)

	assert.Error(t, listCmd.RunE(listCmd, nil))
}

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proj-sh/proj/core/parser"
)

func parse(t *testing.T, source string) map[string]*parser.Block {
	t.Helper()

	blocks, err := parser.Parse(source)
	require.NoError(t, err)
	return blocks
}

func TestCheck_linearChain(t *testing.T) {
	blocks := parse(t, `
		a { call b }
		b { call c }
		c { }
	`)

	assert.NoError(t, Check(blocks, "a"))
}

func TestCheck_diamondIsFine(t *testing.T) {
	// Reaching the same directive twice along different paths is not a
	// cycle as long as it is never revisited while still in progress.
	blocks := parse(t, `
		base { }
		left { call base }
		right { call base }
		top { call left call right call base }
	`)

	assert.NoError(t, Check(blocks, "top"))
}

func TestCheck_entryNotFound(t *testing.T) {
	blocks := parse(t, `a { }`)

	err := Check(blocks, "missing")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Directive)
}

func TestCheck_callTargetNotFound(t *testing.T) {
	blocks := parse(t, `main { call missing }`)

	err := Check(blocks, "main")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Directive)
}

func TestCheck_selfCycle(t *testing.T) {
	blocks := parse(t, `a { call a }`)

	err := Check(blocks, "a")
	require.Error(t, err)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "a", cycle.Directive)
}

func TestCheck_mutualCycle(t *testing.T) {
	blocks := parse(t, `
		a { call b }
		b { call a }
	`)

	err := Check(blocks, "a")
	require.Error(t, err)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Contains(t, []string{"a", "b"}, cycle.Directive,
		"the error names a directive on the cycle")
}

func TestCheck_cycleThroughNestedBlock(t *testing.T) {
	// Calls inside if/while bodies bubble into the block's dependency
	// list, so the resolver sees them too.
	blocks := parse(t, `
		a { if { call b } }
		b { while { call a } }
	`)

	err := Check(blocks, "a")
	require.Error(t, err)
	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
}

func TestCheck_unreachableCycleIgnored(t *testing.T) {
	// Only the graph reachable from the entry is validated.
	blocks := parse(t, `
		main { }
		x { call y }
		y { call x }
	`)

	assert.NoError(t, Check(blocks, "main"))
}

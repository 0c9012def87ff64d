package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) map[string]*Block {
	t.Helper()

	blocks, err := Parse(source)
	require.NoError(t, err)
	return blocks
}

func diffBlocks(t *testing.T, want, got map[string]*Block) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_empty(t *testing.T) {
	blocks := mustParse(t, "")
	assert.Empty(t, blocks)

	blocks = mustParse(t, "// nothing but a comment")
	assert.Empty(t, blocks)
}

func TestParse_simpleDirective(t *testing.T) {
	blocks := mustParse(t, `greet { "hello" echo }`)

	diffBlocks(t, map[string]*Block{
		"greet": {
			Commands: []Command{PushString{Value: "hello"}, Echo{}},
		},
	}, blocks)
}

func TestParse_zeroArgCommands(t *testing.T) {
	blocks := mustParse(t, `all {
		echo shell readfile writefile concat not dup pop swap exit debug
	}`)

	diffBlocks(t, map[string]*Block{
		"all": {
			Commands: []Command{
				Echo{}, Shell{}, ReadFile{}, WriteFile{}, Concat{}, Not{},
				Dup{}, Pop{}, Swap{}, Exit{}, Debug{},
			},
		},
	}, blocks)
}

func TestParse_integerLiterals(t *testing.T) {
	blocks := mustParse(t, `nums { 0 42 }`)

	diffBlocks(t, map[string]*Block{
		"nums": {Commands: []Command{PushInt{Value: 0}, PushInt{Value: 42}}},
	}, blocks)
}

func TestParse_integerOverflow(t *testing.T) {
	_, err := Parse(`n { 99999999999999999999 }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed integer literal")
}

func TestParse_suffixedIntegerRejected(t *testing.T) {
	// Width-suffixed literals lex fine but are not valid commands.
	_, err := Parse(`n { 1i64 }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestParse_letAndLoad(t *testing.T) {
	blocks := mustParse(t, `vars { "x" let name name echo }`)

	diffBlocks(t, map[string]*Block{
		"vars": {
			Commands: []Command{
				PushString{Value: "x"},
				Store{Name: "name"},
				Load{Name: "name"},
				Echo{},
			},
		},
	}, blocks)
}

// Any bare word that matches no command is a variable load, never a parse
// error — even one that could only fail at run time.
func TestParse_unknownWordIsLoad(t *testing.T) {
	blocks := mustParse(t, `b { never_bound }`)

	diffBlocks(t, map[string]*Block{
		"b": {Commands: []Command{Load{Name: "never_bound"}}},
	}, blocks)
}

func TestParse_callRecordsDependency(t *testing.T) {
	blocks := mustParse(t, `
		a { call b call c call b }
		b { }
		c { }
	`)

	assert.Equal(t, []string{"b", "c", "b"}, blocks["a"].Dependencies,
		"dependencies keep order and duplicates")
	diffBlocks(t, map[string]*Block{
		"a": {
			Dependencies: []string{"b", "c", "b"},
			Commands: []Command{
				Call{Directive: "b"}, Call{Directive: "c"}, Call{Directive: "b"},
			},
		},
		"b": {},
		"c": {},
	}, blocks)
}

func TestParse_nestedBlocks(t *testing.T) {
	blocks := mustParse(t, `
		loop {
			while {
				"tick" echo
				if { call inner }
			}
		}
		inner { }
	`)

	want := map[string]*Block{
		"loop": {
			// Dependencies bubble out of nested if/while bodies.
			Dependencies: []string{"inner"},
			Commands: []Command{
				While{Body: []Command{
					PushString{Value: "tick"},
					Echo{},
					If{Body: []Command{Call{Directive: "inner"}}},
				}},
			},
		},
		"inner": {},
	}
	diffBlocks(t, want, blocks)
}

func TestParse_macroSplice(t *testing.T) {
	blocks := mustParse(t, `
		log_shell { dup echo shell }
		build { "make" @log_shell pop }
	`)

	diffBlocks(t, map[string]*Block{
		"log_shell": {Commands: []Command{Dup{}, Echo{}, Shell{}}},
		"build": {
			Commands: []Command{
				PushString{Value: "make"},
				Dup{}, Echo{}, Shell{},
				Pop{},
			},
		},
	}, blocks)
}

func TestParse_macroSpliceCarriesDependencies(t *testing.T) {
	blocks := mustParse(t, `
		helper { call tool }
		tool { }
		top { @helper }
	`)

	assert.Equal(t, []string{"tool"}, blocks["top"].Dependencies,
		"spliced calls must stay visible to the resolver")
}

func TestParse_macroSpliceClonesNestedBodies(t *testing.T) {
	blocks := mustParse(t, `
		cond { if { "yes" echo } }
		user { @cond }
	`)

	src := blocks["cond"].Commands[0].(If)
	dst := blocks["user"].Commands[0].(If)
	assert.Equal(t, src, dst)
	// The nested body is a copy, not a shared slice.
	if len(src.Body) > 0 && len(dst.Body) > 0 {
		assert.NotSame(t, &src.Body[0], &dst.Body[0])
	}
}

func TestParse_macroWithArgsTextDiscarded(t *testing.T) {
	// Argument text is captured by the lexer but carries no meaning yet.
	blocks := mustParse(t, `
		helper { pop }
		top { "x" @helper(anything, even(nested)) }
	`)

	diffBlocks(t, map[string]*Block{
		"helper": {Commands: []Command{Pop{}}},
		"top":    {Commands: []Command{PushString{Value: "x"}, Pop{}}},
	}, blocks)
}

// Macros resolve against directives parsed earlier in the file only;
// forward references fail at parse time.
func TestParse_macroForwardReferenceFails(t *testing.T) {
	_, err := Parse(`
		top { @helper }
		helper { pop }
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected macro "helper"`)
}

func TestParse_redefinition(t *testing.T) {
	_, err := Parse(`a { } a { }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redefinition of directive")
}

func TestParse_topLevelJunk(t *testing.T) {
	_, err := Parse(`42 { }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level")

	// Lexical keywords are not directive names either.
	_, err = Parse(`while { }`)
	require.Error(t, err)
}

func TestParse_missingBrace(t *testing.T) {
	_, err := Parse(`a "oops"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected OpenBrace")
}

func TestParse_unterminatedBlock(t *testing.T) {
	_, err := Parse(`a { echo`)
	require.Error(t, err)
}

func TestParse_callNeedsIdentifier(t *testing.T) {
	_, err := Parse(`a { call 42 }`)
	require.Error(t, err)

	_, err = Parse(`a { let "x" }`)
	require.Error(t, err)
}

func TestParse_strayTokenInBody(t *testing.T) {
	_, err := Parse(`a { -> }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in block body")
}

func TestParse_lexErrorPropagates(t *testing.T) {
	_, err := Parse(`a { "unterminated }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestListDirectives(t *testing.T) {
	blocks := mustParse(t, `c { } a { } b { }`)
	assert.Equal(t, []string{"a", "b", "c"}, ListDirectives(blocks))
}

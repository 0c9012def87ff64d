// Package parser builds the directive-name to Block mapping from source
// text. It performs macro inlining and records per-block call dependencies
// but never executes anything.
package parser

import (
	"sort"
	"strconv"

	"github.com/proj-sh/proj/core/lexer"
)

// Parse reads every top-level directive in source. Each top-level token must
// be an identifier naming a new block; redefining a name is an error.
func Parse(source string) (map[string]*Block, error) {
	lex := lexer.NewPeekable(source)
	blocks := make(map[string]*Block)

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			return blocks, nil
		}

		if tok.Kind != lexer.Identifier {
			return nil, errorf(tok.Loc, "unexpected %s %q at top level, expected a directive name", tok.Kind, tok.Text)
		}
		if _, ok := blocks[tok.Text]; ok {
			return nil, errorf(tok.Loc, "redefinition of directive %q", tok.Text)
		}

		block, err := parseBlock(lex, blocks)
		if err != nil {
			return nil, err
		}
		blocks[tok.Text] = block
	}
}

// ListDirectives returns every directive name in sorted order.
func ListDirectives(blocks map[string]*Block) []string {
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expect(lex *lexer.Peekable, kind lexer.Kind) (lexer.Token, error) {
	tok, err := lex.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok.Kind != kind {
		return lexer.Token{}, errorf(tok.Loc, "unexpected %s %q, expected %s", tok.Kind, tok.Text, kind)
	}
	return tok, nil
}

// parseBlock consumes one brace-delimited command list. Nested if/while
// blocks are parsed recursively and their dependencies bubble into the
// returned block. Macros resolve against blocks parsed earlier in the file
// only; forward references fail here rather than at run time.
func parseBlock(lex *lexer.Peekable, blocks map[string]*Block) (*Block, error) {
	block := &Block{}

	if _, err := expect(lex, lexer.OpenBrace); err != nil {
		return nil, err
	}

	for {
		p, err := lex.Peek()
		if err != nil {
			return nil, err
		}
		if p.Kind == lexer.CloseBrace {
			lex.Next()
			return block, nil
		}

		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Kind == lexer.String:
			block.Commands = append(block.Commands, PushString{Value: tok.Text})

		case tok.Kind == lexer.Integer:
			n, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				return nil, errorf(tok.Loc, "malformed integer literal %q: %v", tok.Text, err)
			}
			block.Commands = append(block.Commands, PushInt{Value: n})

		case tok.IsWord():
			cmd, err := parseWord(lex, blocks, block, tok)
			if err != nil {
				return nil, err
			}
			block.Commands = append(block.Commands, cmd)

		case tok.IsMacro():
			// Macro splicing: inline a copy of an already parsed block.
			// The spliced commands may contain calls, so the source
			// block's dependencies come along too.
			src, ok := blocks[tok.Text]
			if !ok {
				return nil, errorf(tok.Loc, "unexpected macro %q: no directive with that name parsed yet", tok.Text)
			}
			block.Commands = append(block.Commands, cloneCommands(src.Commands)...)
			block.Dependencies = append(block.Dependencies, src.Dependencies...)

		default:
			return nil, errorf(tok.Loc, "unexpected %s %q in block body", tok.Kind, tok.Text)
		}
	}
}

// parseWord maps a bare word to a command. Control words are recognized by
// their literal text whether the lexer tagged them Identifier or Keyword.
// A word that matches nothing is a variable load; that fallback is
// intentional and scripts rely on it.
func parseWord(lex *lexer.Peekable, blocks map[string]*Block, block *Block, tok lexer.Token) (Command, error) {
	switch tok.Text {
	case "echo":
		return Echo{}, nil
	case "shell":
		return Shell{}, nil
	case "readfile":
		return ReadFile{}, nil
	case "writefile":
		return WriteFile{}, nil
	case "concat":
		return Concat{}, nil
	case "not":
		return Not{}, nil
	case "dup":
		return Dup{}, nil
	case "pop":
		return Pop{}, nil
	case "swap":
		return Swap{}, nil
	case "exit":
		return Exit{}, nil
	case "debug":
		return Debug{}, nil

	case "if":
		inner, err := parseBlock(lex, blocks)
		if err != nil {
			return nil, err
		}
		block.Dependencies = append(block.Dependencies, inner.Dependencies...)
		return If{Body: inner.Commands}, nil

	case "while":
		inner, err := parseBlock(lex, blocks)
		if err != nil {
			return nil, err
		}
		block.Dependencies = append(block.Dependencies, inner.Dependencies...)
		return While{Body: inner.Commands}, nil

	case "call":
		target, err := expect(lex, lexer.Identifier)
		if err != nil {
			return nil, err
		}
		block.Dependencies = append(block.Dependencies, target.Text)
		return Call{Directive: target.Text}, nil

	case "let":
		name, err := expect(lex, lexer.Identifier)
		if err != nil {
			return nil, err
		}
		return Store{Name: name.Text}, nil

	default:
		return Load{Name: tok.Text}, nil
	}
}

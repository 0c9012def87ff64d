// Package lexer turns directive-file source text into a stream of classified
// tokens with line/column positions. It knows nothing about blocks or
// command semantics.
package lexer

import "fmt"

// Error is a lexical failure. It always carries the source location at which
// the offending construct began.
type Error struct {
	Loc Loc
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

func errorf(loc Loc, format string, args ...interface{}) error {
	return &Error{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// Lexer produces tokens one at a time and keeps no token history. Once EOF
// has been returned, every further Next call returns EOF again.
type Lexer struct {
	data []byte
	pos  int
	loc  Loc
}

func New(source string) *Lexer {
	return &Lexer{
		data: []byte(source),
		loc:  Loc{Line: 1, Col: 1},
	}
}

// read returns the byte at the current position, or 0 at end of input.
func (l *Lexer) read() byte {
	if l.pos >= len(l.data) {
		return 0
	}
	return l.data[l.pos]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.data)
}

// advance consumes one byte, updating the location.
func (l *Lexer) advance() byte {
	ch := l.read()
	l.pos++
	l.loc.advance(ch)
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) token(kind Kind, loc Loc, begin int) Token {
	return Token{Kind: kind, Text: string(l.data[begin:l.pos]), Loc: loc}
}

// Next returns the next token or a lexical error. Whitespace and `//` line
// comments are skipped; a comment cut short by end of input is fine.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.atEOF() {
			return Token{Kind: EOF, Loc: l.loc}, nil
		}

		begin := l.pos
		loc := l.loc
		ch := l.advance()

		switch {
		case ch == '/' && l.read() == '/':
			for !l.atEOF() && l.advance() != '\n' {
			}
			continue

		case isSpace(ch):
			continue

		// Two-character operators are matched greedily before their
		// single-character prefixes.
		case ch == '-' && l.read() == '>':
			l.advance()
			return l.token(Arrow, loc, begin), nil
		case ch == '=' && l.read() == '=':
			l.advance()
			return l.token(Eq, loc, begin), nil
		case ch == '!' && l.read() == '=':
			l.advance()
			return l.token(NotEq, loc, begin), nil
		case ch == '&' && l.read() == '&':
			l.advance()
			return l.token(DoubleAmpersand, loc, begin), nil
		case ch == '|' && l.read() == '|':
			l.advance()
			return l.token(DoublePipe, loc, begin), nil
		case ch == ':' && l.read() == ':':
			l.advance()
			return l.token(DoubleColon, loc, begin), nil
		case ch == '.' && l.pos+1 < len(l.data) && l.data[l.pos] == '.' && l.data[l.pos+1] == '.':
			l.advanceN(2)
			return l.token(Splat, loc, begin), nil

		case isWordStart(ch):
			return l.lexWord(loc, begin), nil
		case ch >= '0' && ch <= '9':
			return l.lexNumber(loc, begin)
		case ch == '"':
			return l.lexString(loc)
		case ch == '@':
			return l.lexMacro(loc)

		case ch == '(':
			return l.token(OpenParen, loc, begin), nil
		case ch == ')':
			return l.token(CloseParen, loc, begin), nil
		case ch == '[':
			return l.token(OpenSquare, loc, begin), nil
		case ch == ']':
			return l.token(CloseSquare, loc, begin), nil
		case ch == '{':
			return l.token(OpenBrace, loc, begin), nil
		case ch == '}':
			return l.token(CloseBrace, loc, begin), nil
		case ch == '.':
			return l.token(Dot, loc, begin), nil
		case ch == ',':
			return l.token(Comma, loc, begin), nil
		case ch == ':':
			return l.token(Colon, loc, begin), nil
		case ch == ';':
			return l.token(SemiColon, loc, begin), nil
		case ch == '=':
			return l.token(Assign, loc, begin), nil
		case ch == '!':
			return l.token(Bang, loc, begin), nil
		case ch == '+':
			return l.token(Plus, loc, begin), nil
		case ch == '-':
			return l.token(Minus, loc, begin), nil
		case ch == '*':
			return l.token(Asterisk, loc, begin), nil
		case ch == '/':
			return l.token(Slash, loc, begin), nil
		case ch == '%':
			return l.token(Percent, loc, begin), nil
		case ch == '$':
			return l.token(Dollar, loc, begin), nil
		case ch == '&':
			return l.token(Ampersand, loc, begin), nil
		case ch == '|':
			return l.token(Pipe, loc, begin), nil
		case ch == '<':
			return l.token(Lt, loc, begin), nil
		case ch == '>':
			return l.token(Gt, loc, begin), nil

		default:
			return Token{Kind: Invalid, Text: string(ch), Loc: loc},
				errorf(loc, "unexpected character %q", ch)
		}
	}
}

func (l *Lexer) lexWord(loc Loc, begin int) Token {
	for isWordPart(l.read()) {
		l.advance()
	}
	text := string(l.data[begin:l.pos])
	kind := Identifier
	if keywords[text] {
		kind = Keyword
	}
	return Token{Kind: kind, Text: text, Loc: loc}
}

// peekSuffix collects the run of alphanumeric bytes immediately following a
// number, looking at most 4 bytes ahead.
func (l *Lexer) peekSuffix() string {
	var buf []byte
	for i := l.pos; i < len(l.data) && isAlnum(l.data[i]); i++ {
		buf = append(buf, l.data[i])
		if len(buf) > 3 {
			break
		}
	}
	return string(buf)
}

func (l *Lexer) lexNumber(loc Loc, begin int) (Token, error) {
	for ch := l.read(); ch >= '0' && ch <= '9'; ch = l.read() {
		l.advance()
	}

	digitsEnd := l.pos
	kind := Integer

	switch suffix := l.peekSuffix(); suffix {
	case "":
	case "i32":
		kind = IntegerI32
		l.advanceN(3)
	case "u32":
		kind = IntegerU32
		l.advanceN(3)
	case "i64":
		kind = IntegerI64
		l.advanceN(3)
	case "u64":
		kind = IntegerU64
		l.advanceN(3)
	default:
		return Token{Kind: Invalid, Loc: loc},
			errorf(loc, "unknown integer literal suffix %q", suffix)
	}

	// Text carries the digits only, without the width suffix.
	return Token{Kind: kind, Text: string(l.data[begin:digitsEnd]), Loc: loc}, nil
}

func (l *Lexer) lexString(loc Loc) (Token, error) {
	var buf []byte
	for {
		if l.atEOF() {
			return Token{Kind: Invalid, Loc: loc}, errorf(loc, "unterminated string literal")
		}
		switch ch := l.advance(); ch {
		case '"':
			return Token{Kind: String, Text: string(buf), Loc: loc}, nil
		case '\\':
			if l.atEOF() {
				return Token{Kind: Invalid, Loc: loc}, errorf(loc, "unterminated string literal")
			}
			esc := l.advance()
			switch esc {
			case 'r':
				buf = append(buf, '\r')
			case 'n':
				buf = append(buf, '\n')
			case '"':
				buf = append(buf, '"')
			case '\'':
				buf = append(buf, '\'')
			case '\\':
				buf = append(buf, '\\')
			case '0':
				buf = append(buf, 0)
			default:
				return Token{Kind: Invalid, Loc: loc},
					errorf(loc, "unknown escape sequence \\%c in string literal", esc)
			}
		default:
			buf = append(buf, ch)
		}
	}
}

// lexMacro reads `@name` or `@name(args)`. The name runs until whitespace or
// an opening paren; argument text is captured verbatim, tracking nested
// parenthesis depth. Reaching end of input inside either part is an error.
func (l *Lexer) lexMacro(loc Loc) (Token, error) {
	var name []byte
	for {
		if l.atEOF() {
			return Token{Kind: Invalid, Loc: loc}, errorf(loc, "unterminated macro call")
		}
		ch := l.read()
		if isSpace(ch) {
			l.advance()
			return Token{Kind: Macro, Text: string(name), Loc: loc}, nil
		}
		if ch == '(' {
			break
		}
		name = append(name, ch)
		l.advance()
	}

	l.advance() // consume '('
	depth := 1
	var args []byte
	for {
		if l.atEOF() {
			return Token{Kind: Invalid, Loc: loc}, errorf(loc, "unterminated macro argument list")
		}
		ch := l.advance()
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return Token{Kind: MacroWithArgs, Text: string(name), Args: string(args), Loc: loc}, nil
			}
		}
		args = append(args, ch)
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isWordStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWordPart(ch byte) bool {
	return isWordStart(ch) || (ch >= '0' && ch <= '9')
}

func isAlnum(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

package lexer

import "fmt"

// Kind classifies a token. The set is closed; the parser switches over it
// exhaustively.
type Kind int

const (
	EOF Kind = iota
	Invalid

	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	OpenBrace
	CloseBrace

	// Macro is a bare `@name` reference; MacroWithArgs additionally carries
	// the verbatim parenthesized argument text in Token.Args.
	Macro
	MacroWithArgs

	Identifier
	Keyword

	Integer
	IntegerI32
	IntegerU32
	IntegerI64
	IntegerU64
	String

	Dot
	Splat
	Comma
	Colon
	DoubleColon
	SemiColon
	Arrow

	Assign
	Bang
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Dollar
	Ampersand
	Pipe
	DoubleAmpersand
	DoublePipe
	Eq
	NotEq
	Lt
	Gt
)

var kindNames = map[Kind]string{
	EOF:             "EOF",
	Invalid:         "Invalid",
	OpenParen:       "OpenParen",
	CloseParen:      "CloseParen",
	OpenSquare:      "OpenSquare",
	CloseSquare:     "CloseSquare",
	OpenBrace:       "OpenBrace",
	CloseBrace:      "CloseBrace",
	Macro:           "Macro",
	MacroWithArgs:   "MacroWithArgs",
	Identifier:      "Identifier",
	Keyword:         "Keyword",
	Integer:         "Integer",
	IntegerI32:      "IntegerI32",
	IntegerU32:      "IntegerU32",
	IntegerI64:      "IntegerI64",
	IntegerU64:      "IntegerU64",
	String:          "String",
	Dot:             "Dot",
	Splat:           "Splat",
	Comma:           "Comma",
	Colon:           "Colon",
	DoubleColon:     "DoubleColon",
	SemiColon:       "SemiColon",
	Arrow:           "Arrow",
	Assign:          "Assign",
	Bang:            "Bang",
	Plus:            "Plus",
	Minus:           "Minus",
	Asterisk:        "Asterisk",
	Slash:           "Slash",
	Percent:         "Percent",
	Dollar:          "Dollar",
	Ampersand:       "Ampersand",
	Pipe:            "Pipe",
	DoubleAmpersand: "DoubleAmpersand",
	DoublePipe:      "DoublePipe",
	Eq:              "Eq",
	NotEq:           "NotEq",
	Lt:              "Lt",
	Gt:              "Gt",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords is the fixed lexical keyword set. The tag is informational only:
// the parser recognizes its control words (`if`, `while`, `call`, `let`, ...)
// by literal text on Identifier and Keyword tokens alike, not by this
// classification. That layering looseness is intentional.
var keywords = map[string]bool{
	"let":    true,
	"fn":     true,
	"if":     true,
	"else":   true,
	"return": true,
	"while":  true,
	"for":    true,
}

// Token is an immutable value produced by the lexer. Text holds the source
// text for most kinds; for String it holds the decoded literal, and for
// macros it holds the macro name with the argument text (if any) in Args.
type Token struct {
	Kind Kind
	Text string
	Args string
	Loc  Loc
}

func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) IsMacro() bool {
	return t.Kind == Macro || t.Kind == MacroWithArgs
}

// IsWord reports whether the token is an identifier or a lexical keyword.
func (t Token) IsWord() bool {
	return t.Kind == Identifier || t.Kind == Keyword
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Loc)
}

// Loc is a line/column source position, 1-based. It exists purely for
// diagnostics.
type Loc struct {
	Line int
	Col  int
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// advance moves the location past one consumed byte. Tabs snap to 8-column
// stops; other control bytes don't move the column.
func (l *Loc) advance(c byte) {
	const tabStop = 8

	switch {
	case c == '\n':
		l.Line++
		l.Col = 1
	case c == '\t':
		l.Col = (l.Col/tabStop)*tabStop + tabStop
	case c < 0x20 || c == 0x7f:
		// control byte, no width
	default:
		l.Col++
	}
}

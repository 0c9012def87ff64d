package lexer

// Peekable buffers at most one token of lookahead over a Lexer so callers
// can inspect the next token before deciding to consume it.
type Peekable struct {
	lex    *Lexer
	tok    Token
	err    error
	peeked bool
}

func NewPeekable(source string) *Peekable {
	return &Peekable{lex: New(source)}
}

// Next returns the buffered token if one is present, otherwise pulls a fresh
// token from the lexer.
func (p *Peekable) Next() (Token, error) {
	if p.peeked {
		p.peeked = false
		return p.tok, p.err
	}
	return p.lex.Next()
}

// Peek returns the next token without consuming it.
func (p *Peekable) Peek() (Token, error) {
	if !p.peeked {
		p.tok, p.err = p.lex.Next()
		p.peeked = true
	}
	return p.tok, p.err
}

package svgpath

import (
	"fmt"
	"iter"

	"github.com/tdewolff/parse/v2/strconv"
)

// TokenKind tells the parser what a Token holds.
type TokenKind int

// These are the token kinds produced by the Lexer.
const (
	CommandToken TokenKind = iota
	NumberToken
	FlagToken
)

func (k TokenKind) String() string {
	switch k {
	case CommandToken:
		return "command"
	case NumberToken:
		return "number"
	case FlagToken:
		return "flag"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical element of path data.
type Token struct {
	Kind    TokenKind
	Command byte    // CommandToken: the letter as written
	Value   float64 // NumberToken, FlagToken: the value; a flag is one digit
	Offset  int     // byte offset in the source
}

// LexError reports a character that cannot start a token, or a number
// literal without digits.
type LexError struct {
	Offset int
	Char   byte
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("bad path: %s '%c' at position %d", e.Msg, e.Char, e.Offset)
}

// Lexer splits path data into tokens. It tracks the operand position
// inside arc commands so the two flag operands can be read as single
// digits: "A10 5 0 0020 0" has flags 0 and 0 followed by x=20.
type Lexer struct {
	src []byte
	pos int

	arc     bool // last command letter was A or a
	operand int  // operands lexed since the last command letter
}

// NewLexer returns a Lexer positioned at the start of d.
func NewLexer(d string) *Lexer {
	return &Lexer{src: []byte(d)}
}

// Tokens lexes d lazily. Every range over the result starts again from
// the beginning of d. Iteration stops after the first error.
func Tokens(d string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l := NewLexer(d)
		for {
			tok, ok, err := l.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !ok || !yield(tok, nil) {
				return
			}
		}
	}
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (l *Lexer) skipSeparators() {
	for l.pos < len(l.src) && isSeparator(l.src[l.pos]) {
		l.pos++
	}
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	l.skipSeparators()
	if l.pos >= len(l.src) {
		return Token{}, false, nil
	}

	start := l.pos
	c := l.src[start]
	switch {
	case isLetter(c):
		l.pos++
		l.arc = c == 'A' || c == 'a'
		l.operand = 0
		return Token{Kind: CommandToken, Command: c, Offset: start}, true, nil

	case l.arc && l.atFlag() && c >= '0' && c <= '9':
		l.pos++
		l.operand++
		return Token{Kind: FlagToken, Value: float64(c - '0'), Offset: start}, true, nil

	case isNumberStart(c):
		f, n := strconv.ParseFloat(l.src[start:])
		if n == 0 || !finite(f) {
			return Token{}, false, &LexError{Offset: start, Char: c, Msg: "malformed number"}
		}
		l.pos += n
		l.operand++
		return Token{Kind: NumberToken, Value: f, Offset: start}, true, nil
	}
	return Token{}, false, &LexError{Offset: start, Char: c, Msg: "unexpected character"}
}

// atFlag reports whether the next operand of an arc is one of its flags.
func (l *Lexer) atFlag() bool {
	i := l.operand % ArcTo.Arity()
	return i == 3 || i == 4
}

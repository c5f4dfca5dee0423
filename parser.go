package svgpath

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/vasalvit/svgpath/logging"
)

// ParseError reports path data that lexes but does not follow the
// grammar. Offset points at the command the error belongs to, or at the
// offending token when there is no such command.
type ParseError struct {
	Offset int
	Letter byte // command letter as written, 0 if none applies
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Letter == 0 {
		return fmt.Sprintf("bad path: %s at position %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("bad path: %s in command '%c' at position %d", e.Msg, e.Letter, e.Offset)
}

// Kind returns the kind of the command involved. ok is false when the
// letter is missing or not a known command.
func (e *ParseError) Kind() (k CommandKind, ok bool) {
	k, _, ok = commandKind(e.Letter)
	return k, ok
}

// Path is parsed path data: the commands in drawing order, each kept
// absolute or relative as written.
type Path struct {
	Commands []Command
}

// All returns the commands in order.
func (p *Path) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, c := range p.Commands {
			if !yield(c) {
				return
			}
		}
	}
}

func (p *Path) String() string {
	parts := make([]string, len(p.Commands))
	for i, c := range p.Commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Split returns one Path per subpath. A subpath runs from a move up to,
// not including, the next move.
func (p *Path) Split() []*Path {
	var paths []*Path
	for _, c := range p.Commands {
		if c.Kind == MoveTo || len(paths) == 0 {
			paths = append(paths, &Path{})
		}
		last := paths[len(paths)-1]
		last.Commands = append(last.Commands, c)
	}
	return paths
}

// pathDescriptionParser pulls tokens with one token of lookahead.
type pathDescriptionParser struct {
	lex      *Lexer
	peeked   Token
	hasPeek  bool
	commands []Command
}

// Parse parses SVG path data. Empty input, or input holding only
// separators, is an error. On error no Path is returned.
func Parse(d string) (*Path, error) {
	pdp := &pathDescriptionParser{lex: NewLexer(d)}
	if err := pdp.parse(); err != nil {
		logging.Logger().Debug("path parse failed", slog.String("error", err.Error()))
		return nil, err
	}
	return &Path{Commands: pdp.commands}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(d string) *Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

func (pdp *pathDescriptionParser) peek() (Token, bool, error) {
	if pdp.hasPeek {
		return pdp.peeked, true, nil
	}
	tok, ok, err := pdp.lex.Next()
	if err != nil || !ok {
		return Token{}, false, err
	}
	pdp.peeked, pdp.hasPeek = tok, true
	return tok, true, nil
}

func (pdp *pathDescriptionParser) next() (Token, bool, error) {
	tok, ok, err := pdp.peek()
	pdp.hasPeek = false
	return tok, ok, err
}

// operandFollows reports whether the next token is a number or a flag.
func (pdp *pathDescriptionParser) operandFollows() (bool, error) {
	tok, ok, err := pdp.peek()
	if err != nil || !ok {
		return false, err
	}
	return tok.Kind != CommandToken, nil
}

func (pdp *pathDescriptionParser) parse() error {
	first := true
	for {
		tok, ok, err := pdp.next()
		if err != nil {
			return err
		}
		if !ok {
			if first {
				return &ParseError{Offset: 0, Msg: "empty path"}
			}
			return nil
		}
		if tok.Kind != CommandToken {
			if first {
				return &ParseError{Offset: tok.Offset, Msg: "path should start with a command"}
			}
			return &ParseError{Offset: tok.Offset, Msg: "unexpected number"}
		}

		kind, rel, known := commandKind(tok.Command)
		if !known {
			return &ParseError{Offset: tok.Offset, Letter: tok.Command, Msg: "unknown command"}
		}
		if first && kind != MoveTo {
			return &ParseError{Offset: tok.Offset, Letter: tok.Command, Msg: "path should start with a move"}
		}
		first = false

		if err := pdp.parseCommand(kind, rel, tok); err != nil {
			return err
		}
	}
}

// parseCommand reads the operand groups following a command letter. A
// group that is followed by more operands repeats the command, and a
// repeated move is a line.
func (pdp *pathDescriptionParser) parseCommand(kind CommandKind, rel bool, cmd Token) error {
	if kind == ClosePath {
		pdp.commands = append(pdp.commands, Command{Kind: ClosePath, Rel: rel, Offset: cmd.Offset})
		more, err := pdp.operandFollows()
		if err != nil {
			return err
		}
		if more {
			tok, _, _ := pdp.peek()
			return &ParseError{Offset: tok.Offset, Letter: cmd.Command, Msg: "no numbers should follow"}
		}
		return nil
	}

	letter, offset := cmd.Command, cmd.Offset
	for {
		c, err := pdp.parseGroup(kind, rel, letter, offset)
		if err != nil {
			return err
		}
		pdp.commands = append(pdp.commands, c)

		more, err := pdp.operandFollows()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if kind == MoveTo {
			kind = LineTo
			letter = Command{Kind: LineTo, Rel: rel}.Letter()
		}
		tok, _, _ := pdp.peek()
		offset = tok.Offset
	}
}

func (pdp *pathDescriptionParser) parseGroup(kind CommandKind, rel bool, letter byte, offset int) (Command, error) {
	c := Command{Kind: kind, Rel: rel, Offset: offset}
	n := kind.Arity()
	for i := 0; i < n; i++ {
		tok, ok, err := pdp.peek()
		if err != nil {
			return c, err
		}
		if !ok || tok.Kind == CommandToken {
			return c, &ParseError{
				Offset: offset,
				Letter: letter,
				Msg:    fmt.Sprintf("sets of %d numbers should follow, got %d", n, i),
			}
		}
		pdp.hasPeek = false

		if kind == ArcTo && (i == 3 || i == 4) {
			if tok.Kind != FlagToken || tok.Value > 1 {
				return c, &ParseError{Offset: tok.Offset, Letter: letter, Msg: "largeArc and sweep flags should be 0 or 1"}
			}
		}
		c.Args[i] = tok.Value
	}
	return c, nil
}

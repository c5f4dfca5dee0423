package svgpath

import (
	"fmt"
	"strings"
)

// CommandKind identifies one of the path data commands.
type CommandKind int

// These are the commands of the path data grammar.
const (
	MoveTo CommandKind = iota
	LineTo
	HLineTo
	VLineTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
	ClosePath
)

var commandLetters = [...]byte{
	MoveTo:        'M',
	LineTo:        'L',
	HLineTo:       'H',
	VLineTo:       'V',
	CurveTo:       'C',
	SmoothCurveTo: 'S',
	QuadTo:        'Q',
	SmoothQuadTo:  'T',
	ArcTo:         'A',
	ClosePath:     'Z',
}

var commandArity = [...]int{
	MoveTo:        2,
	LineTo:        2,
	HLineTo:       1,
	VLineTo:       1,
	CurveTo:       6,
	SmoothCurveTo: 4,
	QuadTo:        4,
	SmoothQuadTo:  2,
	ArcTo:         7,
	ClosePath:     0,
}

// Letter returns the upper case command letter.
func (k CommandKind) Letter() byte {
	if k < 0 || int(k) >= len(commandLetters) {
		return '?'
	}
	return commandLetters[k]
}

// Arity returns the number of operands one group of the command takes.
func (k CommandKind) Arity() int {
	if k < 0 || int(k) >= len(commandArity) {
		return 0
	}
	return commandArity[k]
}

func (k CommandKind) String() string {
	return string(k.Letter())
}

// commandKind maps a command letter of either case to its kind.
func commandKind(c byte) (CommandKind, bool, bool) {
	rel := c >= 'a' && c <= 'z'
	if rel {
		c -= 'a' - 'A'
	}
	for k, l := range commandLetters {
		if l == c {
			return CommandKind(k), rel, true
		}
	}
	return 0, false, false
}

// Command is one instruction of a parsed path, exactly as written: it
// keeps the command kind and whether its operands are relative to the
// current point.
//
// Args holds Kind.Arity() operands in source order:
//
//	M, L, T  x y
//	H        x
//	V        y
//	C        x1 y1 x2 y2 x y
//	S        x2 y2 x y
//	Q        x1 y1 x y
//	A        rx ry rotation large-arc sweep x y
//	Z        (none)
//
// The arc flags are stored as 0 or 1.
type Command struct {
	Kind   CommandKind
	Rel    bool
	Args   [7]float64
	Offset int // byte offset of the command in the source
}

// Letter returns the command letter, lower case for relative commands.
func (c Command) Letter() byte {
	l := c.Kind.Letter()
	if c.Rel && c.Kind != ClosePath {
		l += 'a' - 'A'
	}
	return l
}

// ArcFlags returns the large-arc and sweep flags of an arc command.
func (c Command) ArcFlags() (large, sweep bool) {
	return c.Args[3] != 0, c.Args[4] != 0
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(c.Letter())
	for _, a := range c.Args[:c.Kind.Arity()] {
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(a))
	}
	return sb.String()
}

// formatNumber prints n with at most two decimals and no trailing zeros.
func formatNumber(n float64) string {
	s := fmt.Sprintf("%.2f", n)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

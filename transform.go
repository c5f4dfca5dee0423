package svgpath

import (
	"fmt"
	"strings"

	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"
)

type transformDescriptionParser struct {
	lex    *gl.Lexer
	m      Matrix
	name   strings.Builder
	nums   []float64 // values of the number items still to come
	args   []float64
	inArgs bool
}

// ParseTransform parses the value of an SVG transform attribute, a list
// of matrix, translate, scale, rotate, skewX and skewY functions, into
// a single Matrix. Functions apply right to left, so
// "translate(10) scale(2)" scales first.
func ParseTransform(s string) (Matrix, error) {
	src, nums, err := transformSource(s)
	if err != nil {
		return Identity(), fmt.Errorf("bad transform %q: %w", s, err)
	}

	l, items := gl.Lex("transform", src)
	// the lexer goroutine only exits once every item has been received
	defer func() {
		for range items {
		}
	}()

	tdp := &transformDescriptionParser{lex: l, m: Identity(), nums: nums}
	if err := tdp.parse(); err != nil {
		return Identity(), fmt.Errorf("bad transform %q: %w", s, err)
	}
	return tdp.m, nil
}

// transformSource scans the numbers of s and replaces each with a lone
// 0, leaving only names, parentheses and spaces around them. The
// generic lexer stops at characters it does not know, such as a
// leading '.', so it only ever sees this reduced text.
func transformSource(s string) (string, []float64, error) {
	var sb strings.Builder
	var nums []float64
	b := []byte(s)
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case isNumberStart(c):
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 || !finite(f) {
				return "", nil, fmt.Errorf("malformed number at position %d", i)
			}
			nums = append(nums, f)
			sb.WriteString(" 0 ")
			i += n
			continue
		case isSeparator(c):
			sb.WriteByte(' ')
		case c == '(' || c == ')' || isLetter(c):
			sb.WriteByte(c)
		default:
			return "", nil, fmt.Errorf("unexpected %q at position %d", c, i)
		}
		i++
	}
	return sb.String(), nums, nil
}

func (tdp *transformDescriptionParser) parse() error {
	for {
		i := tdp.lex.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if tdp.inArgs || tdp.name.Len() > 0 {
				return fmt.Errorf("unterminated function %q", tdp.name.String())
			}
			return nil
		case gl.ItemError:
			return fmt.Errorf("%s", i.Value)
		case gl.ItemNumber:
			if err := tdp.number(); err != nil {
				return err
			}
		default:
			for _, r := range i.Value {
				if err := tdp.char(r); err != nil {
					return err
				}
			}
		}
	}
}

func (tdp *transformDescriptionParser) number() error {
	if len(tdp.nums) == 0 {
		return fmt.Errorf("number without a value")
	}
	n := tdp.nums[0]
	tdp.nums = tdp.nums[1:]
	if !tdp.inArgs {
		return fmt.Errorf("number %g outside of a function", n)
	}
	tdp.args = append(tdp.args, n)
	return nil
}

func (tdp *transformDescriptionParser) char(r rune) error {
	switch {
	case r == ' ':
	case r == '(':
		if tdp.inArgs || tdp.name.Len() == 0 {
			return fmt.Errorf("unexpected '('")
		}
		tdp.inArgs = true
	case r == ')':
		if !tdp.inArgs {
			return fmt.Errorf("unexpected ')'")
		}
		if err := tdp.apply(); err != nil {
			return err
		}
		tdp.name.Reset()
		tdp.args = tdp.args[:0]
		tdp.inArgs = false
	case tdp.inArgs:
		return fmt.Errorf("unexpected %q in %s()", r, tdp.name.String())
	default:
		tdp.name.WriteRune(r)
	}
	return nil
}

func (tdp *transformDescriptionParser) apply() error {
	name, a := tdp.name.String(), tdp.args
	arity := func(counts ...int) error {
		for _, c := range counts {
			if len(a) == c {
				return nil
			}
		}
		return fmt.Errorf("%s() takes %v arguments, got %d", name, counts, len(a))
	}

	var step Matrix
	switch name {
	case "matrix":
		if err := arity(6); err != nil {
			return err
		}
		step = NewMatrix(a[0], a[1], a[2], a[3], a[4], a[5])
	case "translate":
		if err := arity(1, 2); err != nil {
			return err
		}
		ty := 0.0
		if len(a) == 2 {
			ty = a[1]
		}
		step = Identity().Translate(a[0], ty)
	case "scale":
		if err := arity(1, 2); err != nil {
			return err
		}
		sy := a[0]
		if len(a) == 2 {
			sy = a[1]
		}
		step = Identity().Scale(a[0], sy)
	case "rotate":
		if err := arity(1, 3); err != nil {
			return err
		}
		if len(a) == 3 {
			step = Identity().RotateAbout(a[0], a[1], a[2])
		} else {
			step = Identity().Rotate(a[0])
		}
	case "skewX":
		if err := arity(1); err != nil {
			return err
		}
		step = Identity().SkewX(a[0])
	case "skewY":
		if err := arity(1); err != nil {
			return err
		}
		step = Identity().SkewY(a[0])
	default:
		return fmt.Errorf("unknown transform function %q", name)
	}
	tdp.m = tdp.m.Multiply(step)
	return nil
}

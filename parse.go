package godice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrMissingFaces    = errors.New("missing die faces")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrMissingModifier = errors.New("operator without modifier")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError reports where in the input a notation failed to parse.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v (%d)", e.Input, e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

var operators = map[rune]Operator{
	'+': Add,
	'-': Subtract,
	'x': Multiply,
	'X': Multiply,
	'*': Multiply,
	'/': Divide,
	'÷': Divide,
}

func (o Operator) String() string {
	switch o {
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "+"
	}
}

// Spec is the parsed form of a die notation such as "2d6+2".
type Spec struct {
	Count    int
	Faces    int
	Operator Operator
	Modifier int
}

// Die returns the canonical faces token, e.g. "d20".
func (s Spec) Die() string {
	return "d" + strconv.Itoa(s.Faces)
}

func (s Spec) String() string {
	out := strconv.Itoa(s.Count) + s.Die()
	if s.Operator == Add && s.Modifier == 0 {
		return out
	}
	return out + s.Operator.String() + strconv.Itoa(s.Modifier)
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(norm.NFKC.Reader(r)),
	}
}

type Parser struct {
	buf  *bufio.Reader
	read []rune
}

// Pos returns the number of runes consumed so far.
func (p *Parser) Pos() int {
	return len(p.read)
}

func (p *Parser) readRune() (rune, error) {
	r, _, err := p.buf.ReadRune()
	if err != nil {
		return 0, err
	}
	p.read = append(p.read, r)
	return r, nil
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.read = p.read[:len(p.read)-1]
	}
	return err
}

func (p *Parser) peekRune() (rune, bool) {
	r, err := p.readRune()
	if err != nil {
		return 0, false
	}
	p.unreadRune()
	return r, true
}

func (p *Parser) newError(pos int, err error) error {
	// Drain the rest so the error can quote the whole input.
	for {
		if _, rerr := p.readRune(); rerr != nil {
			break
		}
	}
	return &ParseError{
		Input: string(p.read),
		Pos:   pos,
		Err:   err,
	}
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

// readDigits consumes a run of ASCII digits. It returns the empty string
// when the next rune is not a digit.
func (p *Parser) readDigits() string {
	var sb strings.Builder
	for {
		r, err := p.readRune()
		if err != nil {
			break
		}
		if r < '0' || r > '9' {
			p.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (p *Parser) parseNumber(digits string, min int) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < min {
		return 0, p.newError(p.Pos()-len(digits), ErrInvalidNumber)
	}
	return n, nil
}

// Parse reads a single notation of the form
//
//	[count](d|D)faces[op modifier]
//
// Whitespace is allowed at either end, after the count and around the
// operator. The count defaults to 1 and a missing operator means +0. An
// operator with no digits after it is rejected.
func (p *Parser) Parse() (Spec, error) {
	spec := Spec{
		Count:    1,
		Operator: Add,
	}

	p.SkipWhite()
	if digits := p.readDigits(); digits != "" {
		n, err := p.parseNumber(digits, 1)
		if err != nil {
			return Spec{}, err
		}
		spec.Count = n
		p.SkipWhite()
	}

	pos := p.Pos()
	r, err := p.readRune()
	if err != nil || (r != 'd' && r != 'D') {
		return Spec{}, p.newError(pos, ErrMissingFaces)
	}
	digits := p.readDigits()
	if digits == "" {
		return Spec{}, p.newError(p.Pos(), ErrMissingFaces)
	}
	spec.Faces, err = p.parseNumber(digits, 1)
	if err != nil {
		return Spec{}, err
	}

	p.SkipWhite()
	r, ok := p.peekRune()
	if !ok {
		return spec, nil
	}
	op, ok := operators[r]
	if !ok {
		return Spec{}, p.newError(p.Pos(), ErrUnexpectedToken)
	}
	p.readRune()
	spec.Operator = op

	p.SkipWhite()
	digits = p.readDigits()
	if digits == "" {
		return Spec{}, p.newError(p.Pos(), ErrMissingModifier)
	}
	spec.Modifier, err = p.parseNumber(digits, 0)
	if err != nil {
		return Spec{}, err
	}

	p.SkipWhite()
	if _, ok := p.peekRune(); ok {
		return Spec{}, p.newError(p.Pos(), ErrUnexpectedToken)
	}
	return spec, nil
}

// Parse parses a die notation string. A *ParseError quotes s as given,
// before normalisation.
func Parse(s string) (Spec, error) {
	spec, err := NewParser(strings.NewReader(s)).Parse()
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Input = s
	}
	return spec, err
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic("godice: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return spec
}

package rate

import (
	"math"
	"strconv"
	"strings"
)

// Expression is a parsed rate: a magnitude, the byte multiplier of its
// unit, and the length in seconds of the period it is expressed over.
type Expression struct {
	Magnitude      float64
	ByteMultiplier float64
	PeriodSeconds  float64
}

// BytesPerSecond collapses the expression into a normalized rate.
func (e Expression) BytesPerSecond() float64 {
	return e.Magnitude * e.ByteMultiplier / e.PeriodSeconds
}

// Parse reads an expression like "1.25 MB / s". Whitespace may surround
// every token; unit and period are matched case-insensitively.
func Parse(input string) (Expression, error) {
	p := &Parser{buf: []byte(input)}
	var e Expression
	var err error
	p.skipWhitespace()
	if e.Magnitude, err = p.parseNumber(); err != nil {
		return Expression{}, err
	}
	p.skipWhitespace()
	if e.ByteMultiplier, err = p.parseUnit(); err != nil {
		return Expression{}, err
	}
	p.skipWhitespace()
	if err = p.expect('/'); err != nil {
		return Expression{}, err
	}
	p.skipWhitespace()
	if e.PeriodSeconds, err = p.parsePeriod(); err != nil {
		return Expression{}, err
	}
	return e, nil
}

// Parser is a cursor over the input buffer. Reading past the end yields
// byte 0 and never advances, so truncated input surfaces as a mismatch
// on whatever the grammar wanted next.
type Parser struct {
	buf []byte
	pos int
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos]
}

func (p *Parser) eof() bool {
	return p.peek() == 0
}

func (p *Parser) advance() byte {
	b := p.peek()
	if b == 0 {
		return b
	}
	p.pos++
	return b
}

func (p *Parser) expect(expected byte) error {
	actual := p.advance()
	if actual != expected {
		return &UnexpectedCharError{Expected: expected, Actual: actual}
	}
	return nil
}

func (p *Parser) skipWhitespace() {
	for !p.eof() && isSpace(p.peek()) {
		p.advance()
	}
}

// parseNumber consumes digit+ ('.' digit+)?. Signs, exponents, a bare
// leading dot and a trailing dot are all rejected; so is anything
// outside ASCII digits.
func (p *Parser) parseNumber() (float64, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return 0, ErrInvalidNumber
	}
	if p.peek() == '.' {
		p.advance()
		decimals := p.pos
		for !p.eof() && isDigit(p.peek()) {
			p.advance()
		}
		if p.pos == decimals {
			return 0, ErrInvalidNumber
		}
	}
	n, err := strconv.ParseFloat(string(p.buf[start:p.pos]), 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// parseUnit consumes an alphabetic run and maps it to its byte
// multiplier ("B" -> 1, "MB" -> 1e6). An absent unit is an error, not
// an implicit byte count.
func (p *Parser) parseUnit() (float64, error) {
	start := p.pos
	for !p.eof() && isAlpha(p.peek()) {
		p.advance()
	}
	unit := strings.ToUpper(string(p.buf[start:p.pos]))
	for i, candidate := range Units {
		if candidate == unit {
			return math.Pow(1000, float64(i)), nil
		}
	}
	return 0, ErrInvalidUnit
}

func (p *Parser) parsePeriod() (float64, error) {
	start := p.pos
	for !p.eof() && isAlpha(p.peek()) {
		p.advance()
	}
	seconds, ok := periodAliases[strings.ToLower(string(p.buf[start:p.pos]))]
	if !ok {
		return 0, ErrInvalidPeriod
	}
	return seconds, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

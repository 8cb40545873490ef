package sut

import "strings"

// temporaryParameter holds one parsed parameter line before sorting and
// before the value-id/parameter-id widths are chosen.
type temporaryParameter struct {
	name   string
	values []string
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isValueChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// cursor is a hand-written recursive-descent scanner over the `.cocoa`
// grammar, replacing the original's nom parser-combinator pipeline with
// direct position-tracking methods.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) skipWhitespace() {
	for c.pos < len(c.text) && isWhitespace(c.text[c.pos]) {
		c.pos++
	}
}

func (c *cursor) errorf(message string) error {
	return &ParseError{Offset: c.pos, Message: message}
}

// readValue consumes optional surrounding whitespace and one token of
// value/parameter-name characters.
func (c *cursor) readValue() (string, error) {
	c.skipWhitespace()
	start := c.pos
	for c.pos < len(c.text) && isValueChar(c.text[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return "", c.errorf("expected a value")
	}
	token := c.text[start:c.pos]
	c.skipWhitespace()
	return token, nil
}

func (c *cursor) matchByte(b byte) bool {
	if c.pos < len(c.text) && c.text[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) matchLiteral(s string) bool {
	if strings.HasPrefix(c.text[c.pos:], s) {
		c.pos += len(s)
		return true
	}
	return false
}

func (c *cursor) parseValues() ([]string, error) {
	first, err := c.readValue()
	if err != nil {
		return nil, err
	}
	values := []string{first}
	for c.matchByte(',') {
		next, err := c.readValue()
		if err != nil {
			return nil, err
		}
		values = append(values, next)
	}
	return values, nil
}

func (c *cursor) parseParameter() (temporaryParameter, error) {
	name, err := c.readValue()
	if err != nil {
		return temporaryParameter{}, err
	}
	if !c.matchByte(':') {
		return temporaryParameter{}, c.errorf("expected ':' after parameter name")
	}
	values, err := c.parseValues()
	if err != nil {
		return temporaryParameter{}, err
	}
	if !c.matchByte(';') {
		return temporaryParameter{}, c.errorf("expected ';' after parameter values")
	}
	return temporaryParameter{name: name, values: values}, nil
}

// parseParameters parses one or more parameter lines starting at the
// cursor's current position, stopping as soon as a line fails to parse
// (the remainder, including `$assert` constraints, is left unconsumed).
func (c *cursor) parseParameters() ([]temporaryParameter, error) {
	var result []temporaryParameter
	for {
		save := c.pos
		p, err := c.parseParameter()
		if err != nil {
			c.pos = save
			break
		}
		result = append(result, p)
	}
	if len(result) == 0 {
		return nil, c.errorf("expected at least one parameter line")
	}
	return result, nil
}

// parseEq parses the "parameter=value" atom.
func (c *cursor) parseEq() (Expr, error) {
	parameter, err := c.readValue()
	if err != nil {
		return nil, err
	}
	if !c.matchByte('=') {
		return nil, c.errorf("expected '=' in equality constraint")
	}
	value, err := c.readValue()
	if err != nil {
		return nil, err
	}
	return &Eq{Parameter: parameter, Value: value}, nil
}

// parseExpr parses one constraint expression, including any chained
// binary connective. && / || / => all have the same (right-associative,
// single-pass) precedence, matching the original grammar exactly.
func (c *cursor) parseExpr() (Expr, error) {
	c.skipWhitespace()

	var left Expr
	var err error
	switch {
	case c.matchByte('!'):
		var sub Expr
		sub, err = c.parseExpr()
		left = &Not{Sub: sub}
	case c.matchByte('('):
		left, err = c.parseExpr()
		if err == nil && !c.matchByte(')') {
			err = c.errorf("expected ')'")
		}
	default:
		left, err = c.parseEq()
	}
	if err != nil {
		return nil, err
	}

	c.skipWhitespace()
	before := c.pos

	var op bop
	switch {
	case c.matchLiteral("&&"):
		op = opAnd
	case c.matchLiteral("||"):
		op = opOr
	case c.matchLiteral("=>"):
		op = opImplies
	default:
		return left, nil
	}

	right, err := c.parseExpr()
	if err != nil {
		c.pos = before
		return left, nil
	}
	return &BinOp{Left: left, Op: op, Right: right}, nil
}

func (c *cursor) parseConstraint() (Expr, bool, error) {
	save := c.pos
	c.skipWhitespace()
	if !c.matchLiteral("$assert ") {
		c.pos = save
		return nil, false, nil
	}
	expr, err := c.parseExpr()
	if err != nil {
		return nil, true, err
	}
	if !c.matchByte(';') {
		return nil, true, c.errorf("expected ';' after constraint")
	}
	return expr, true, nil
}

func (c *cursor) parseConstraints() ([]Expr, error) {
	var result []Expr
	for {
		expr, matched, err := c.parseConstraint()
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		result = append(result, expr)
	}
	c.skipWhitespace()
	if c.pos != len(c.text) {
		return nil, c.errorf("unexpected trailing content")
	}
	return result, nil
}

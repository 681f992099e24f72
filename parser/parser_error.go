package parser

import (
	"fmt"

	"looseeq/render"
	"looseeq/types"
)

// Error is a reader failure at a source position
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("SyntaxError: %s (line %d, column %d)", e.Msg, e.Pos.Line, e.Pos.Column)
}

// Exception is the value thrown by a coercion hook written as
// () => { throw ... }
type Exception struct {
	Value types.Value
}

func (e *Exception) Error() string {
	return "Uncaught " + render.Render(e.Value)
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return &Error{Pos: tok.Position, Msg: fmt.Sprintf(format, args...)}
}

// unexpected reports the current token as out of place
func (p *Parser) unexpected() error {
	tok := p.current
	switch tok.Type {
	case TOKEN_EOF:
		return p.errorf(tok, "unexpected end of input")
	case TOKEN_ERROR:
		return p.errorf(tok, "%s", tok.Literal)
	case TOKEN_STRING:
		return p.errorf(tok, "unexpected string")
	case TOKEN_NUMBER, TOKEN_BIGINT:
		return p.errorf(tok, "unexpected number")
	case TOKEN_IDENTIFIER:
		return p.errorf(tok, "unexpected identifier '%s'", tok.Value)
	default:
		return p.errorf(tok, "unexpected token '%s'", tok.Value)
	}
}

// expect consumes a token of type t or fails
func (p *Parser) expect(t TokenType) error {
	if p.current.Type != t {
		if p.current.Type == TOKEN_EOF || p.current.Type == TOKEN_ERROR {
			return p.unexpected()
		}
		return p.errorf(p.current, "expected %s, got '%s'", t, p.current.Value)
	}
	p.nextToken()
	return nil
}

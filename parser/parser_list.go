package parser

import (
	"looseeq/types"
)

// parseArrayLiteral parses an array literal [expr, expr, ...]
func (p *Parser) parseArrayLiteral() (types.Value, error) {
	// current is '['
	p.nextToken() // skip '['

	elements, err := p.parseList(TOKEN_RBRACKET)
	if err != nil {
		return nil, err
	}
	return types.NewArray(elements), nil
}

// parseArguments parses a call's argument list (expr, expr, ...)
func (p *Parser) parseArguments() ([]types.Value, error) {
	if err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	return p.parseList(TOKEN_RPAREN)
}

// parseList parses comma-separated expressions up to and including the
// closing token. A trailing comma is allowed.
func (p *Parser) parseList(closing TokenType) ([]types.Value, error) {
	elements := []types.Value{}

	// Check for empty list
	if p.current.Type == closing {
		p.nextToken()
		return elements, nil
	}

	// Parse first element
	elem, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	elements = append(elements, elem)

	// Parse remaining elements
	for p.current.Type == TOKEN_COMMA {
		p.nextToken() // skip ','

		// Check for trailing comma
		if p.current.Type == closing {
			break
		}

		elem, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}

	if err := p.expect(closing); err != nil {
		return nil, err
	}
	return elements, nil
}

package parser

import (
	"looseeq/types"
)

// function is a parsed function expression. Its body is evaluated once at
// parse time: a block holds at most one return or throw statement and an
// expression body is the returned value.
type function struct {
	name   string
	result types.Value
	throws bool
}

func (f *function) value() types.Value {
	return types.NewFunction(f.name)
}

// call runs the function body
func (f *function) call() (types.Value, error) {
	if f.throws {
		return nil, &Exception{Value: f.result}
	}
	return f.result, nil
}

// tryFunction parses a function expression if one starts at the current
// token and returns nil otherwise. name is used when the expression has no
// name of its own; hint is bound to the first parameter.
func (p *Parser) tryFunction(name string, hint types.Value) (*function, error) {
	switch {
	case p.current.Type == TOKEN_FUNCTION:
		return p.parseFunction(name, hint)
	case p.current.Type == TOKEN_LPAREN && p.isArrowAhead():
		return p.parseArrow(name, hint)
	case p.current.Type == TOKEN_IDENTIFIER && p.peek.Type == TOKEN_FATARROW:
		return p.parseArrow(name, hint)
	}
	return nil, nil
}

// parseFunction parses function [name](params) { body }
func (p *Parser) parseFunction(name string, hint types.Value) (*function, error) {
	p.nextToken() // skip 'function'

	if p.current.Type == TOKEN_IDENTIFIER {
		name = p.current.Value
		p.nextToken()
	}
	return p.parseMethod(name, hint)
}

// parseMethod parses (params) { body }
func (p *Parser) parseMethod(name string, hint types.Value) (*function, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	defer p.bind(params, hint)()

	fn := &function{name: name}
	if err := p.parseBlock(fn); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseArrow parses x => body or (params) => body
func (p *Parser) parseArrow(name string, hint types.Value) (*function, error) {
	var params []string
	if p.current.Type == TOKEN_IDENTIFIER {
		params = []string{p.current.Value}
		p.nextToken()
	} else {
		var err error
		if params, err = p.parseParams(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(TOKEN_FATARROW); err != nil {
		return nil, err
	}
	defer p.bind(params, hint)()

	fn := &function{name: name}
	if p.current.Type == TOKEN_LBRACE {
		if err := p.parseBlock(fn); err != nil {
			return nil, err
		}
		return fn, nil
	}

	result, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	fn.result = result
	return fn, nil
}

// parseParams parses a parameter list of plain identifiers
func (p *Parser) parseParams() ([]string, error) {
	if err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.current.Type != TOKEN_RPAREN {
		if p.current.Type != TOKEN_IDENTIFIER {
			return nil, p.unexpected()
		}
		params = append(params, p.current.Value)
		p.nextToken()
		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken() // skip ','
	}
	if err := p.expect(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// bind scopes params for the function body being parsed: the first one
// holds hint and the rest are undefined, since the body runs with no other
// arguments. The returned func restores the enclosing scope.
func (p *Parser) bind(params []string, hint types.Value) func() {
	saved := p.scope
	p.scope = make(map[string]types.Value, len(saved)+len(params))
	for k, v := range saved {
		p.scope[k] = v
	}
	for i, name := range params {
		if i == 0 && hint != nil {
			p.scope[name] = hint
		} else {
			p.scope[name] = types.Undefined
		}
	}
	return func() { p.scope = saved }
}

// parseBlock parses { [return expr;] } or { throw expr; }
func (p *Parser) parseBlock(fn *function) error {
	if err := p.expect(TOKEN_LBRACE); err != nil {
		return err
	}
	fn.result = types.Undefined

	p.skipSemicolons()
	switch p.current.Type {
	case TOKEN_RETURN:
		p.nextToken() // skip 'return'
		if p.current.Type != TOKEN_SEMICOLON && p.current.Type != TOKEN_RBRACE {
			result, err := p.ParseExpression()
			if err != nil {
				return err
			}
			fn.result = result
		}
	case TOKEN_THROW:
		p.nextToken() // skip 'throw'
		result, err := p.ParseExpression()
		if err != nil {
			return err
		}
		fn.result = result
		fn.throws = true
	}
	p.skipSemicolons()

	return p.expect(TOKEN_RBRACE)
}

func (p *Parser) skipSemicolons() {
	for p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
}

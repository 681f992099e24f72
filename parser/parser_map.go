package parser

import (
	"looseeq/types"
)

// objectLiteral collects the properties of an object literal along with
// the functions that take part in primitive conversion
type objectLiteral struct {
	props       []types.Property
	index       map[string]int
	toPrimitive *function
	valueOf     *function
	toString    *function
}

func (o *objectLiteral) set(key string, val types.Value) {
	if i, ok := o.index[key]; ok {
		o.props[i].Value = val
		return
	}
	o.index[key] = len(o.props)
	o.props = append(o.props, types.Property{Key: key, Value: val})
}

// hook mirrors ToPrimitive: Symbol.toPrimitive wins, then valueOf and
// toString in that order, then the inherited Object.prototype.toString
func (o *objectLiteral) hook() types.PrimitiveHook {
	if o.toPrimitive != nil {
		return o.toPrimitive.call
	}
	if o.valueOf == nil && o.toString == nil {
		return nil
	}
	valueOf, toString := o.valueOf, o.toString
	return func() (types.Value, error) {
		for _, fn := range []*function{valueOf, toString} {
			if fn == nil {
				continue
			}
			v, err := fn.call()
			if err != nil {
				return nil, err
			}
			if types.IsPrimitive(v) {
				return v, nil
			}
		}
		if toString == nil {
			return types.NewStr("[object Object]"), nil
		}
		return nil, types.ErrNotPrimitive
	}
}

func (o *objectLiteral) value() types.Value {
	if hook := o.hook(); hook != nil {
		return types.NewObjectWithHook(o.props, hook)
	}
	return types.NewObject(o.props)
}

// parseObjectLiteral parses an object literal {key: expr, ...}
func (p *Parser) parseObjectLiteral() (types.Value, error) {
	// current is '{'
	p.nextToken() // skip '{'

	obj := &objectLiteral{index: make(map[string]int)}

	// Check for empty object
	if p.current.Type == TOKEN_RBRACE {
		p.nextToken() // skip '}'
		return obj.value(), nil
	}

	if err := p.parseProperty(obj); err != nil {
		return nil, err
	}

	for p.current.Type == TOKEN_COMMA {
		p.nextToken() // skip ','

		// Check for trailing comma
		if p.current.Type == TOKEN_RBRACE {
			break
		}

		if err := p.parseProperty(obj); err != nil {
			return nil, err
		}
	}

	if err := p.expect(TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return obj.value(), nil
}

// parseProperty parses key: value, a method key() { ... } or the computed
// [Symbol.toPrimitive] key
func (p *Parser) parseProperty(obj *objectLiteral) error {
	tok := p.current

	if tok.Type == TOKEN_LBRACKET {
		return p.parseComputedProperty(obj)
	}

	key, err := p.parsePropertyKey()
	if err != nil {
		return err
	}

	var val types.Value
	var fn *function
	switch p.current.Type {
	case TOKEN_COLON:
		p.nextToken() // skip ':'
		if fn, err = p.tryFunction(key, types.Undefined); err != nil {
			return err
		}
		if fn == nil {
			if val, err = p.ParseExpression(); err != nil {
				return err
			}
		}
	case TOKEN_LPAREN:
		if fn, err = p.parseMethod(key, types.Undefined); err != nil {
			return err
		}
	case TOKEN_COMMA, TOKEN_RBRACE:
		// shorthand {a} refers to a variable, and there are none
		if tok.Type == TOKEN_IDENTIFIER {
			return p.errorf(tok, "ReferenceError: %s is not defined", key)
		}
		return p.errorf(p.current, "expected ':' after property key")
	default:
		return p.errorf(p.current, "expected ':' after property key")
	}

	if fn != nil {
		val = fn.value()
		switch key {
		case "valueOf":
			obj.valueOf = fn
		case "toString":
			obj.toString = fn
		}
	} else {
		switch key {
		case "valueOf":
			obj.valueOf = nil
		case "toString":
			obj.toString = nil
		}
	}
	obj.set(key, val)
	return nil
}

// parsePropertyKey reads an identifier, keyword, string or number key
func (p *Parser) parsePropertyKey() (string, error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_IDENTIFIER, TOKEN_UNDEFINED, TOKEN_NULL, TOKEN_TRUE, TOKEN_FALSE,
		TOKEN_NEW, TOKEN_FUNCTION, TOKEN_RETURN, TOKEN_THROW:
		p.nextToken()
		return tok.Value, nil
	case TOKEN_STRING:
		p.nextToken()
		return tok.Literal, nil
	case TOKEN_NUMBER:
		p.nextToken()
		return types.FormatNumber(types.StringToNumber(tok.Value)), nil
	case TOKEN_BIGINT:
		v, err := p.parsePrimary()
		if err != nil {
			return "", err
		}
		return v.(types.BigIntValue).String(), nil
	}
	return "", p.unexpected()
}

// parseComputedProperty handles [Symbol.toPrimitive] and [expr] keys
func (p *Parser) parseComputedProperty(obj *objectLiteral) error {
	p.nextToken() // skip '['

	if p.current.Type == TOKEN_IDENTIFIER && p.current.Value == "Symbol" && p.peek.Type == TOKEN_DOT {
		p.nextToken() // skip 'Symbol'
		p.nextToken() // skip '.'
		name := p.current
		if name.Type != TOKEN_IDENTIFIER || name.Value != "toPrimitive" {
			return p.errorf(name, "unsupported well-known symbol '%s'", name.Value)
		}
		p.nextToken()
		if err := p.expect(TOKEN_RBRACKET); err != nil {
			return err
		}

		fn, err := p.parseHookFunction()
		if err != nil {
			return err
		}
		obj.toPrimitive = fn
		return nil
	}

	tok := p.current
	keyVal, err := p.ParseExpression()
	if err != nil {
		return err
	}
	if err := p.expect(TOKEN_RBRACKET); err != nil {
		return err
	}
	if _, isSymbol := keyVal.(types.SymbolValue); isSymbol {
		return p.errorf(tok, "symbol-keyed properties are not supported")
	}
	key, err := types.ToString(keyVal)
	if err != nil {
		return p.coercionError(tok, err)
	}
	if err := p.expect(TOKEN_COLON); err != nil {
		return err
	}
	val, err := p.ParseExpression()
	if err != nil {
		return err
	}
	obj.set(key, val)
	return nil
}

// parseHookFunction reads the function after [Symbol.toPrimitive]: either
// ': function-expression' or a method body. Loose equality calls the hook
// with the "default" hint.
func (p *Parser) parseHookFunction() (*function, error) {
	const name = "[Symbol.toPrimitive]"
	hint := types.NewStr("default")
	if p.current.Type == TOKEN_LPAREN {
		return p.parseMethod(name, hint)
	}
	if err := p.expect(TOKEN_COLON); err != nil {
		return nil, err
	}
	fn, err := p.tryFunction(name, hint)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, p.errorf(p.current, "TypeError: Symbol.toPrimitive must be a function")
	}
	return fn, nil
}

package parser

import (
	"math"
	"math/big"
	"time"

	"looseeq/types"
)

// maxDateMillis is the largest distance from the epoch a Date can hold
const maxDateMillis = 8.64e15

var builtins = map[string]bool{
	"Object":  true,
	"String":  true,
	"Number":  true,
	"Boolean": true,
	"Symbol":  true,
	"Date":    true,
}

func isBuiltin(name string) bool {
	return builtins[name]
}

// parseCall parses a call of a global constructor function without new
func (p *Parser) parseCall() (types.Value, error) {
	tok := p.current
	p.nextToken() // skip name
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	switch tok.Value {
	case "Object":
		if len(args) == 0 {
			return types.NewObject(nil), nil
		}
		return types.Wrap(args[0], 1), nil
	case "String":
		return p.stringOf(tok, args)
	case "Number":
		return p.numberOf(tok, args)
	case "Boolean":
		return types.NewBool(len(args) > 0 && args[0].Truthy()), nil
	case "Symbol":
		if len(args) == 0 || args[0].Type() == types.TYPE_UNDEFINED {
			return types.NewAnonymousSymbol(), nil
		}
		desc, err := types.ToString(args[0])
		if err != nil {
			return nil, p.coercionError(tok, err)
		}
		return types.NewSymbol(desc), nil
	case "Date":
		// Date() ignores its arguments and returns a string
		return types.NewStr(types.NewDate(clock()).String()), nil
	}
	return nil, p.errorf(tok, "TypeError: %s is not a function", tok.Value)
}

// parseNew parses new Name or new Name(args)
func (p *Parser) parseNew() (types.Value, error) {
	p.nextToken() // skip 'new'
	tok := p.current
	if tok.Type != TOKEN_IDENTIFIER {
		return nil, p.unexpected()
	}
	if !isBuiltin(tok.Value) {
		return nil, p.errorf(tok, "ReferenceError: %s is not defined", tok.Value)
	}
	p.nextToken() // skip name

	var args []types.Value
	if p.current.Type == TOKEN_LPAREN {
		var err error
		if args, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}

	switch tok.Value {
	case "Object":
		if len(args) == 0 {
			return types.NewObject(nil), nil
		}
		return types.Wrap(args[0], 1), nil
	case "String":
		s, err := p.stringOf(tok, args)
		if err != nil {
			return nil, err
		}
		return types.Wrap(s, 1), nil
	case "Number":
		n, err := p.numberOf(tok, args)
		if err != nil {
			return nil, err
		}
		return types.Wrap(n, 1), nil
	case "Boolean":
		return types.Wrap(types.NewBool(len(args) > 0 && args[0].Truthy()), 1), nil
	case "Date":
		return p.newDate(tok, args)
	}
	return nil, p.errorf(tok, "TypeError: %s is not a constructor", tok.Value)
}

// stringOf is String(x). Unlike implicit conversion it accepts symbols.
func (p *Parser) stringOf(tok Token, args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return types.NewStr(""), nil
	}
	if sym, ok := args[0].(types.SymbolValue); ok {
		return types.NewStr(sym.String()), nil
	}
	s, err := types.ToString(args[0])
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	return types.NewStr(s), nil
}

// numberOf is Number(x). Unlike implicit conversion it accepts bigints.
func (p *Parser) numberOf(tok Token, args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return types.NewNumber(0), nil
	}
	prim, err := types.ToPrimitive(args[0])
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	if b, ok := prim.(types.BigIntValue); ok {
		f, _ := new(big.Float).SetInt(b.Int()).Float64()
		return types.NewNumber(f), nil
	}
	n, err := types.ToNumber(prim)
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	return types.NewNumber(n), nil
}

func (p *Parser) newDate(tok Token, args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return types.NewDate(clock()), nil
	}

	arg := args[0]
	if d, ok := arg.(*types.DateValue); ok {
		return types.NewDate(d.Time()), nil
	}
	prim, err := types.ToPrimitive(arg)
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	if s, ok := prim.(types.StrValue); ok {
		return p.parseDateString(tok, s.Value())
	}

	ms, err := types.ToNumber(prim)
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	if math.IsNaN(ms) || math.Abs(ms) > maxDateMillis {
		return nil, p.errorf(tok, "RangeError: Invalid time value")
	}
	return types.NewDateFromMillis(int64(math.Trunc(ms))), nil
}

var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseDateString accepts the date-time string format the language
// guarantees: ISO 8601 subsets, date-only forms read as UTC
func (p *Parser) parseDateString(tok Token, s string) (types.Value, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return types.NewDate(t), nil
		}
	}
	return nil, p.errorf(tok, "RangeError: Invalid time value")
}

// Package parser reads the literal subset of the language that the tool
// accepts as input: primitives, arrays, object literals with an optional
// primitive-coercion hook and a handful of constructor calls. It never
// executes code; anything outside the subset is a positioned *Error.
package parser

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"looseeq/types"
)

// clock supplies the current time for Date() and new Date()
var clock = time.Now

// maxNesting bounds expression nesting so hostile input cannot exhaust the stack
const maxNesting = types.MaxNesting

// Parser parses literal source text into values
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
	scope   map[string]types.Value // parameters of the enclosing functions
	depth   int
	arrows  map[int]bool // '(' offset -> opens an arrow parameter list
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse reads src as a single expression
func Parse(src string) (types.Value, error) {
	return NewParser(src).ParseProgram()
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// ParseProgram parses one expression followed by an optional semicolon.
// Empty input evaluates to undefined.
func (p *Parser) ParseProgram() (types.Value, error) {
	for p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	if p.current.Type == TOKEN_EOF {
		return types.Undefined, nil
	}

	val, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
	if p.current.Type != TOKEN_EOF {
		return nil, p.unexpected()
	}
	return val, nil
}

// ParseExpression parses a unary expression
func (p *Parser) ParseExpression() (types.Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNesting {
		return nil, p.errorf(p.current, "expression nested too deeply")
	}

	switch p.current.Type {
	case TOKEN_MINUS:
		tok := p.current
		p.nextToken()
		operand, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return p.negate(tok, operand)
	case TOKEN_PLUS:
		tok := p.current
		p.nextToken()
		operand, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		n, err := types.ToNumber(operand)
		if err != nil {
			return nil, p.coercionError(tok, err)
		}
		return types.NewNumber(n), nil
	}
	return p.parsePrimary()
}

func (p *Parser) negate(tok Token, v types.Value) (types.Value, error) {
	prim, err := types.ToPrimitive(v)
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	if b, ok := prim.(types.BigIntValue); ok {
		return types.NewBigInt(new(big.Int).Neg(b.Int())), nil
	}
	n, err := types.ToNumber(prim)
	if err != nil {
		return nil, p.coercionError(tok, err)
	}
	return types.NewNumber(-n), nil
}

// parsePrimary parses literals, groupings, functions and constructor calls
func (p *Parser) parsePrimary() (types.Value, error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_NUMBER:
		p.nextToken()
		return types.NewNumber(types.StringToNumber(tok.Value)), nil
	case TOKEN_BIGINT:
		i, ok := types.StringToBigInt(strings.TrimSuffix(tok.Value, "n"))
		if !ok {
			return nil, p.errorf(tok, "invalid bigint literal")
		}
		p.nextToken()
		return types.NewBigInt(i), nil
	case TOKEN_STRING:
		p.nextToken()
		return types.NewStr(tok.Literal), nil
	case TOKEN_UNDEFINED:
		p.nextToken()
		return types.Undefined, nil
	case TOKEN_NULL:
		p.nextToken()
		return types.Null, nil
	case TOKEN_TRUE:
		p.nextToken()
		return types.True, nil
	case TOKEN_FALSE:
		p.nextToken()
		return types.False, nil
	case TOKEN_LBRACKET:
		return p.parseArrayLiteral()
	case TOKEN_LBRACE:
		return p.parseObjectLiteral()
	case TOKEN_LPAREN:
		if p.isArrowAhead() {
			fn, err := p.parseArrow("", types.Undefined)
			if err != nil {
				return nil, err
			}
			return fn.value(), nil
		}
		p.nextToken() // skip '('
		val, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return val, nil
	case TOKEN_FUNCTION:
		fn, err := p.parseFunction("", types.Undefined)
		if err != nil {
			return nil, err
		}
		return fn.value(), nil
	case TOKEN_NEW:
		return p.parseNew()
	case TOKEN_IDENTIFIER:
		return p.parseIdentifier()
	}
	return nil, p.unexpected()
}

func (p *Parser) parseIdentifier() (types.Value, error) {
	tok := p.current
	switch {
	case p.peek.Type == TOKEN_FATARROW:
		fn, err := p.parseArrow("", types.Undefined)
		if err != nil {
			return nil, err
		}
		return fn.value(), nil
	case p.scope[tok.Value] != nil:
		p.nextToken()
		return p.scope[tok.Value], nil
	case tok.Value == "NaN":
		p.nextToken()
		return types.NaN(), nil
	case tok.Value == "Infinity":
		p.nextToken()
		return types.NewNumber(types.StringToNumber("Infinity")), nil
	case isBuiltin(tok.Value):
		if p.peek.Type == TOKEN_LPAREN {
			return p.parseCall()
		}
		p.nextToken()
		return types.NewFunction(tok.Value), nil
	}
	return nil, p.errorf(tok, "ReferenceError: %s is not defined", tok.Value)
}

// coercionError keeps an exception thrown by a hook as is and positions
// every other conversion failure
func (p *Parser) coercionError(tok Token, err error) error {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc
	}
	return p.errorf(tok, "TypeError: %v", err)
}

// isArrowAhead reports whether the parenthesis at the current token opens
// an arrow function's parameter list. One scan to the matching ')' settles
// every parenthesis inside it too, so nested groups are never rescanned.
func (p *Parser) isArrowAhead() bool {
	start := p.current.Position.Offset
	if arrow, ok := p.arrows[start]; ok {
		return arrow
	}
	if p.arrows == nil {
		p.arrows = make(map[int]bool)
	}

	lexer, current, peek := *p.lexer, p.current, p.peek
	defer func() {
		*p.lexer, p.current, p.peek = lexer, current, peek
	}()

	var open []int
	for {
		switch p.current.Type {
		case TOKEN_LPAREN:
			open = append(open, p.current.Position.Offset)
		case TOKEN_RPAREN:
			if len(open) > 0 {
				p.arrows[open[len(open)-1]] = p.peek.Type == TOKEN_FATARROW
				open = open[:len(open)-1]
			}
			if len(open) == 0 {
				return p.arrows[start]
			}
		case TOKEN_EOF, TOKEN_ERROR:
			for _, off := range open {
				p.arrows[off] = false
			}
			return false
		}
		p.nextToken()
	}
}

package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes literal source text
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.position < len(l.input) && l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips over whitespace characters, including the non-ASCII
// space separators the language treats as whitespace
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.readChar()
			continue
		}
		if l.ch < utf8.RuneSelf {
			return
		}
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if r != '\uFEFF' && !unicode.IsSpace(r) {
			return
		}
		for i := 0; i < size; i++ {
			l.readChar()
		}
	}
}

// skipComment skips a // line comment or a /* block */ comment. It reports
// false for an unterminated block comment.
func (l *Lexer) skipComment() bool {
	if l.ch == '/' && l.peekChar() == '/' {
		for l.ch != '\n' && !l.atEnd() {
			l.readChar()
		}
		return true
	}
	// block comment
	l.readChar()
	l.readChar()
	for !l.atEnd() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
	return false
}

func (l *Lexer) startsComment() bool {
	return l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*')
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()
	for l.startsComment() {
		start := l.pos()
		if !l.skipComment() {
			return Token{Type: TOKEN_ERROR, Literal: "unterminated comment", Position: start}
		}
		l.skipWhitespace()
	}

	tok.Position = l.pos()

	if l.atEnd() {
		tok.Type = TOKEN_EOF
		return tok
	}

	switch l.ch {
	case '(':
		tok = l.single(TOKEN_LPAREN)
	case ')':
		tok = l.single(TOKEN_RPAREN)
	case '{':
		tok = l.single(TOKEN_LBRACE)
	case '}':
		tok = l.single(TOKEN_RBRACE)
	case '[':
		tok = l.single(TOKEN_LBRACKET)
	case ']':
		tok = l.single(TOKEN_RBRACKET)
	case ',':
		tok = l.single(TOKEN_COMMA)
	case ';':
		tok = l.single(TOKEN_SEMICOLON)
	case ':':
		tok = l.single(TOKEN_COLON)
	case '+':
		tok = l.single(TOKEN_PLUS)
	case '-':
		tok = l.single(TOKEN_MINUS)
	case '"', '\'':
		tok = l.readString()
	case '.':
		if isDigit(l.peekChar()) {
			tok = l.readNumber()
		} else {
			tok = l.single(TOKEN_DOT)
		}
	case '=':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			tok.Type = TOKEN_FATARROW
			tok.Value = "=>"
		} else {
			tok = l.single(TOKEN_ILLEGAL)
		}
	default:
		switch {
		case isDigit(l.ch):
			tok = l.readNumber()
		case isIdentStart(l.ch):
			tok = l.readIdentifier()
		default:
			tok = l.readIllegal()
		}
	}

	return tok
}

// single consumes the current character as a one-character token
func (l *Lexer) single(t TokenType) Token {
	tok := Token{Type: t, Value: string(l.ch), Position: l.pos()}
	l.readChar()
	return tok
}

// readIllegal consumes one whole (possibly multi-byte) character
func (l *Lexer) readIllegal() Token {
	tok := Token{Type: TOKEN_ILLEGAL, Position: l.pos()}
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	start := l.position
	for i := 0; i < size; i++ {
		l.readChar()
	}
	tok.Value = l.input[start:l.position]
	return tok
}

func (l *Lexer) readIdentifier() Token {
	tok := Token{Position: l.pos()}
	start := l.position
	for isIdentPart(l.ch) && !l.atEnd() {
		l.readChar()
	}
	tok.Value = l.input[start:l.position]
	tok.Type = LookupKeyword(tok.Value)
	return tok
}

func (l *Lexer) pos() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '$'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

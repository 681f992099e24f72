package parser

// readNumber reads a numeric literal: decimal with optional fraction and
// exponent, a leading-dot fraction, or a 0x/0o/0b integer. A trailing n
// makes an integer literal a bigint.
func (l *Lexer) readNumber() Token {
	tok := Token{Type: TOKEN_NUMBER, Position: l.pos()}
	start := l.position
	integer := true

	if l.ch == '0' && isRadixLetter(l.peekChar()) {
		l.readChar() // skip '0'
		digit := radixDigit(l.ch)
		l.readChar() // skip radix letter
		if !digit(l.ch) || l.atEnd() {
			return l.numberError(tok, "missing digits after radix prefix")
		}
		for digit(l.ch) && !l.atEnd() {
			l.readChar()
		}
	} else {
		l.readDigits()
		if l.ch == '.' {
			integer = false
			l.readChar()
			l.readDigits()
		}
		if l.ch == 'e' || l.ch == 'E' {
			integer = false
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) || l.atEnd() {
				return l.numberError(tok, "missing exponent digits")
			}
			l.readDigits()
		}
	}

	tok.Value = l.input[start:l.position]

	if l.ch == 'n' && !l.atEnd() {
		if !integer {
			return l.numberError(tok, "invalid bigint literal")
		}
		l.readChar()
		tok.Type = TOKEN_BIGINT
	}

	if isIdentStart(l.ch) && !l.atEnd() {
		return l.numberError(tok, "identifier starts immediately after numeric literal")
	}
	return tok
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) && !l.atEnd() {
		l.readChar()
	}
}

func (l *Lexer) numberError(tok Token, msg string) Token {
	tok.Type = TOKEN_ERROR
	tok.Literal = msg
	tok.Value = l.input[tok.Position.Offset:l.position]
	return tok
}

func isRadixLetter(ch byte) bool {
	switch ch {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func radixDigit(letter byte) func(byte) bool {
	switch letter {
	case 'x', 'X':
		return isHexDigit
	case 'o', 'O':
		return func(ch byte) bool { return '0' <= ch && ch <= '7' }
	default:
		return func(ch byte) bool { return ch == '0' || ch == '1' }
	}
}

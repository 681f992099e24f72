package parser

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// readString reads a single- or double-quoted string literal with escape
// sequences. Unterminated strings and malformed escapes yield TOKEN_ERROR.
func (l *Lexer) readString() Token {
	tok := Token{
		Type:     TOKEN_STRING,
		Position: l.pos(),
	}

	quote := l.ch
	start := l.position
	l.readChar() // skip opening quote

	var result []byte
	var pendingHigh rune = -1
	flush := func() {
		if pendingHigh >= 0 {
			result = utf8.AppendRune(result, utf8.RuneError)
			pendingHigh = -1
		}
	}

	for l.ch != quote {
		if l.atEnd() || l.ch == '\n' || l.ch == '\r' {
			return l.stringError(tok, "unterminated string literal")
		}
		if l.ch != '\\' {
			flush()
			result = append(result, l.ch)
			l.readChar()
			continue
		}

		l.readChar() // skip backslash
		switch l.ch {
		case 'n':
			result = append(result, '\n')
		case 't':
			result = append(result, '\t')
		case 'r':
			result = append(result, '\r')
		case 'b':
			result = append(result, '\b')
		case 'f':
			result = append(result, '\f')
		case 'v':
			result = append(result, '\v')
		case '0':
			if isDigit(l.peekChar()) {
				return l.stringError(tok, "octal escape sequences are not allowed")
			}
			result = append(result, 0)
		case '\n':
			// line continuation
		case 'x':
			r, ok := l.readHexEscape(2)
			if !ok {
				return l.stringError(tok, "invalid hexadecimal escape sequence")
			}
			flush()
			result = utf8.AppendRune(result, r)
			continue
		case 'u':
			r, ok := l.readUnicodeEscape()
			if !ok {
				return l.stringError(tok, "invalid Unicode escape sequence")
			}
			switch {
			case utf16.IsSurrogate(r) && r < 0xDC00:
				flush()
				pendingHigh = r
			case utf16.IsSurrogate(r) && pendingHigh >= 0:
				result = utf8.AppendRune(result, utf16.DecodeRune(pendingHigh, r))
				pendingHigh = -1
			default:
				flush()
				result = utf8.AppendRune(result, r)
			}
			continue
		case 0:
			if l.atEnd() {
				return l.stringError(tok, "unterminated string literal")
			}
			result = append(result, 0)
		default:
			// Unknown escape - the character stands for itself
			flush()
			result = append(result, l.ch)
		}
		l.readChar()
	}
	flush()
	l.readChar() // skip closing quote

	tok.Value = l.input[start:l.position] // Store the full quoted string
	tok.Literal = string(result)          // Store the decoded value
	return tok
}

func (l *Lexer) stringError(tok Token, msg string) Token {
	tok.Type = TOKEN_ERROR
	tok.Literal = msg
	tok.Value = l.input[tok.Position.Offset:l.position]
	return tok
}

// readHexEscape reads n hex digits after the escape letter. On return the
// lexer sits on the character after the digits.
func (l *Lexer) readHexEscape(n int) (rune, bool) {
	l.readChar() // skip escape letter
	start := l.position
	for i := 0; i < n; i++ {
		if !isHexDigit(l.ch) || l.atEnd() {
			return 0, false
		}
		l.readChar()
	}
	v, err := strconv.ParseUint(l.input[start:l.position], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// readUnicodeEscape reads \uXXXX or \u{X...}
func (l *Lexer) readUnicodeEscape() (rune, bool) {
	if l.peekChar() != '{' {
		return l.readHexEscape(4)
	}
	l.readChar() // skip 'u'
	l.readChar() // skip '{'
	start := l.position
	for isHexDigit(l.ch) && !l.atEnd() {
		l.readChar()
	}
	digits := l.input[start:l.position]
	if l.ch != '}' || digits == "" {
		return 0, false
	}
	l.readChar() // skip '}'
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, false
	}
	return rune(v), true
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_ILLEGAL

	// Literals
	TOKEN_NUMBER // 42, 0x2a, .5, 1e3
	TOKEN_BIGINT // 42n
	TOKEN_STRING // "hello", 'hello'

	// Keywords
	TOKEN_UNDEFINED
	TOKEN_NULL
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NEW
	TOKEN_FUNCTION
	TOKEN_RETURN
	TOKEN_THROW

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_FATARROW // =>

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
	TOKEN_COLON     // :
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (TOKEN_STRING) or message (TOKEN_ERROR)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ERROR:
		return "ERROR"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_BIGINT:
		return "BIGINT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_UNDEFINED:
		return "UNDEFINED"
	case TOKEN_NULL:
		return "NULL"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_NEW:
		return "NEW"
	case TOKEN_FUNCTION:
		return "FUNCTION"
	case TOKEN_RETURN:
		return "RETURN"
	case TOKEN_THROW:
		return "THROW"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_FATARROW:
		return "FATARROW"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_SEMICOLON:
		return "SEMICOLON"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_COLON:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// Keywords maps keyword strings to their token types. NaN and Infinity are
// plain global identifiers in the language and stay identifiers here.
var keywords = map[string]TokenType{
	"undefined": TOKEN_UNDEFINED,
	"null":      TOKEN_NULL,
	"true":      TOKEN_TRUE,
	"false":     TOKEN_FALSE,
	"new":       TOKEN_NEW,
	"function":  TOKEN_FUNCTION,
	"return":    TOKEN_RETURN,
	"throw":     TOKEN_THROW,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

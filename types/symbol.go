package types

// symbol is the identity behind a SymbolValue; two SymbolValues are the same
// symbol only when they share this pointer.
type symbol struct {
	description string
	hasDesc     bool
}

// SymbolValue represents a unique symbol
type SymbolValue struct {
	sym *symbol
}

// NewSymbol creates a fresh symbol with a description, like Symbol("desc")
func NewSymbol(description string) SymbolValue {
	return SymbolValue{sym: &symbol{description: description, hasDesc: true}}
}

// NewAnonymousSymbol creates a fresh symbol without a description, like Symbol()
func NewAnonymousSymbol() SymbolValue {
	return SymbolValue{sym: &symbol{}}
}

// Type returns the type code for symbols
func (s SymbolValue) Type() TypeCode {
	return TYPE_SYMBOL
}

// TypeOf returns "symbol"
func (s SymbolValue) TypeOf() string {
	return "symbol"
}

// String returns Symbol.prototype.toString(): Symbol(description)
func (s SymbolValue) String() string {
	desc, _ := s.Description()
	return "Symbol(" + desc + ")"
}

// Equal is identity
func (s SymbolValue) Equal(other Value) bool {
	o, ok := other.(SymbolValue)
	return ok && s.sym == o.sym
}

// Truthy returns true; every symbol is truthy
func (s SymbolValue) Truthy() bool {
	return true
}

func (SymbolValue) isValue() {}

// Description returns the description and whether one was given
func (s SymbolValue) Description() (string, bool) {
	if s.sym == nil {
		return "", false
	}
	return s.sym.description, s.sym.hasDesc
}

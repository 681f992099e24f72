package types

import "math/big"

// BigIntValue represents an arbitrary precision integer
type BigIntValue struct {
	val *big.Int
}

// NewBigInt creates a BigIntValue holding a copy of i
func NewBigInt(i *big.Int) BigIntValue {
	return BigIntValue{val: new(big.Int).Set(i)}
}

// NewBigIntFromInt64 creates a BigIntValue from an int64
func NewBigIntFromInt64(i int64) BigIntValue {
	return BigIntValue{val: big.NewInt(i)}
}

// Type returns the type code for bigints
func (b BigIntValue) Type() TypeCode {
	return TYPE_BIGINT
}

// TypeOf returns "bigint"
func (b BigIntValue) TypeOf() string {
	return "bigint"
}

// String returns the decimal digits without the n suffix, like String(10n)
func (b BigIntValue) String() string {
	return b.Int().String()
}

// Equal checks strict equality
func (b BigIntValue) Equal(other Value) bool {
	o, ok := other.(BigIntValue)
	if !ok {
		return false
	}
	return b.Int().Cmp(o.Int()) == 0
}

// Truthy returns false only for 0n
func (b BigIntValue) Truthy() bool {
	return b.Int().Sign() != 0
}

func (BigIntValue) isValue() {}

// Int returns a copy of the underlying integer
func (b BigIntValue) Int() *big.Int {
	if b.val == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.val)
}

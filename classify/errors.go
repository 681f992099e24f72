package classify

import (
	"fmt"

	"looseeq/types"
)

// UnsupportedTypeError is returned for values no rule covers (functions)
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Not implemented for type %s.", e.TypeName)
}

// InvariantViolationError means a value slipped past the special cases it
// belongs to. It signals a broken rule order, never bad input.
type InvariantViolationError struct {
	Value  types.Value
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("classifier invariant violated for %s value: %s", e.Value.TypeOf(), e.Detail)
}

// CoercionError wraps a failed primitive coercion. The object rule recovers
// from it; it only surfaces in diagnostics.
type CoercionError struct {
	TypeName string
	Err      error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("failed to convert %s to a primitive: %v", e.TypeName, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Package helper provides typed assertion over heterogeneous lookups.
package helper

import "fmt"

// ErrNoValue indicates that the lookup produced nothing to assert.
var ErrNoValue = fmt.Errorf("no value")

// GetTypedValueOf asserts the result of a lookup to the expected type T.
// Returns ErrNoValue when the lookup misses, or a type error when the stored
// value has a different shape.
func GetTypedValueOf[T any](getFn func() (any, bool)) (T, error) {
	var zero T

	raw, ok := getFn()
	if !ok {
		return zero, ErrNoValue
	}

	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: got %T, want %T", raw, zero)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when a miss or shape mismatch is a programming error.
func MustGetTypedValue[T any](getFn func() (any, bool)) T {
	val, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return val
}

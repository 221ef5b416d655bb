package helper

import (
	"fmt"
)

// GetTypedValueOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, res, zero)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// MapTyped applies GetTypedValueOf to every element of values, stopping at the first failure.
func MapTyped[T any](values []any) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		typed, err := GetTypedValueOf[T](func() (any, error) { return v, nil })
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = typed
	}
	return out, nil
}

var ErrUnexpectedType = fmt.Errorf("unexpected type")

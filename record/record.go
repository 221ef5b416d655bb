// Package record provides named-field access over records and the
// extend/defaults merge helpers.
//
// A record is anything implementing Fielder. Record is the map-backed form;
// Struct adapts an arbitrary struct value through reflection. Unknown field
// names are reported as ErrUnknownField instead of silently reading a zero
// value.
package record

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/underbar_go/shared/helper"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrNotRecord    = errors.New("not a record")
)

// Fielder reads a field by name.
type Fielder interface {
	Field(name string) (any, error)
}

// Record is a map-backed Fielder.
type Record map[string]any

var _ Fielder = Record{}

func (r Record) Field(name string) (any, error) {
	v, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return v, nil
}

type structRecord struct {
	v reflect.Value
}

// Struct adapts a struct, or a non-nil pointer to one, into a Fielder over its exported fields.
func Struct(v any) (Fielder, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotRecord, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}
	return structRecord{v: rv}, nil
}

// MustStruct is the panic-on-failure variant of Struct.
func MustStruct(v any) Fielder {
	f, err := Struct(v)
	if err != nil {
		panic(err)
	}
	return f
}

func (s structRecord) Field(name string) (any, error) {
	sf, ok := s.v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, fmt.Errorf("%w: %q on %s", ErrUnknownField, name, s.v.Type())
	}
	return s.v.FieldByIndex(sf.Index).Interface(), nil
}

// GetAs reads field name from f and asserts it to T.
func GetAs[T any](f Fielder, name string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return f.Field(name)
	})
}

package pure

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Primitive lists the argument types whose keys are exact.
type Primitive interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Key identifies one argument list in a memo store.
type Key string

// KeyOf serializes args into a Key. Every argument contributes its dynamic
// type and its value, each length-prefixed, so equal tuples always produce
// equal keys and 1, "1" and int64(1) never collide.
func KeyOf(args ...any) Key {
	var b strings.Builder
	for _, arg := range args {
		typeName, payload := keyPart(arg)
		fmt.Fprintf(&b, "%d:%s%d:%s", len(typeName), typeName, len(payload), payload)
	}
	return Key(b.String())
}

func keyPart(arg any) (string, string) {
	if arg == nil {
		return "nil", ""
	}
	rv := reflect.ValueOf(arg)
	typeName := rv.Type().String()
	switch rv.Kind() {
	case reflect.Bool:
		return typeName, strconv.FormatBool(rv.Bool())
	case reflect.String:
		return typeName, rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return typeName, strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return typeName, strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return typeName, strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return typeName, strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return typeName, stringer.String()
	}
	return typeName, fmt.Sprintf("%#v", arg)
}

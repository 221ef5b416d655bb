package record

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrIncomparable = errors.New("incomparable values")

// Compare orders two field values. Numbers of any width compare numerically
// with each other, strings lexically, and booleans with false before true.
// Integers compare exactly whatever their signedness; only pairings with a
// float go through float64.
// Any other pairing yields ErrIncomparable.
func Compare(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := kindOf(va), kindOf(vb)
	switch {
	case ka == kindInt && kb == kindInt:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case ka == kindUint && kb == kindUint:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case ka == kindInt && kb == kindUint:
		return compareIntUint(va.Int(), vb.Uint()), nil
	case ka == kindUint && kb == kindInt:
		return -compareIntUint(vb.Int(), va.Uint()), nil
	case ka.numeric() && kb.numeric():
		return cmp.Compare(toFloat(va), toFloat(vb)), nil
	case ka == kindString && kb == kindString:
		return strings.Compare(va.String(), vb.String()), nil
	case ka == kindBool && kb == kindBool:
		return compareBool(va.Bool(), vb.Bool()), nil
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}

type valueKind int

const (
	kindOther valueKind = iota
	kindInt
	kindUint
	kindFloat
	kindString
	kindBool
)

func (k valueKind) numeric() bool {
	return k == kindInt || k == kindUint || k == kindFloat
}

func kindOf(v reflect.Value) valueKind {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBool
	default:
		return kindOther
	}
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func toFloat(v reflect.Value) float64 {
	switch kindOf(v) {
	case kindInt:
		return float64(v.Int())
	case kindUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

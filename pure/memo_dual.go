package pure

type result[O1, O2 any] struct {
	O1 O1
	O2 O2
}

func MemoizeI1O2[I1 Primitive, O1, O2 any](
	fn func(I1) (O1, O2),
	cfg ...Config,
) func(I1) (O1, O2) {
	m := NewMemo(func(args ...any) result[O1, O2] {
		v1, v2 := fn(args[0].(I1))
		return result[O1, O2]{O1: v1, O2: v2}
	}, cfg...)
	return func(i1 I1) (O1, O2) {
		res := m.Invoke(i1)
		return res.O1, res.O2
	}
}

func MemoizeI2O2[I1, I2 Primitive, O1, O2 any](
	fn func(I1, I2) (O1, O2),
	cfg ...Config,
) func(I1, I2) (O1, O2) {
	m := NewMemo(func(args ...any) result[O1, O2] {
		v1, v2 := fn(args[0].(I1), args[1].(I2))
		return result[O1, O2]{O1: v1, O2: v2}
	}, cfg...)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := m.Invoke(i1, i2)
		return res.O1, res.O2
	}
}

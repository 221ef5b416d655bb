package record

// Extend copies every key of each source onto target, in argument order.
// Later sources overwrite earlier ones and keys already in target.
// target is mutated and returned; a nil target is allocated first.
func Extend[M ~map[K]V, K comparable, V any](target M, sources ...M) M {
	if target == nil {
		target = make(M)
	}
	for _, source := range sources {
		for k, v := range source {
			target[k] = v
		}
	}
	return target
}

// Defaults copies keys from sources onto target but never overwrites a key that
// is already present, including one set by an earlier source in the same call.
// target is mutated and returned; a nil target is allocated first.
func Defaults[M ~map[K]V, K comparable, V any](target M, sources ...M) M {
	if target == nil {
		target = make(M)
	}
	for _, source := range sources {
		for k, v := range source {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}
